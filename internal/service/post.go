package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// PostInput is the admin create/update payload for a blog post.
type PostInput struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

// PostListResult is the service-level DTO for paginated posts.
type PostListResult struct {
	Items []model.Post `json:"data"`
	Total int          `json:"total"`
}

// PostService covers blog post management and public reads.
type PostService interface {
	Create(ctx context.Context, in PostInput) (*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	// GetBySlug serves the public post page; drafts surface as ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) (*PostListResult, error)
	Update(ctx context.Context, id string, in PostInput) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postService struct {
	repo repository.PostRepository
}

// NewPostService constructs a PostService.
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

func validatePost(in *PostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Title == "" {
		return Validationf("title is required")
	}
	if in.Slug == "" {
		return Validationf("slug is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return Validationf("content is required")
	}
	return nil
}

func (s *postService) Create(ctx context.Context, in PostInput) (*model.Post, error) {
	if err := validatePost(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.Post{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Slug:      in.Slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		CoverURL:  in.CoverURL,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if slug == "" {
		return nil, Validationf("slug is required")
	}
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.Published {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *postService) List(ctx context.Context, publishedOnly bool, limit, offset int) (*PostListResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PostListFilter{PublishedOnly: publishedOnly}, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &PostListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *postService) Update(ctx context.Context, id string, in PostInput) (*model.Post, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validatePost(&in); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Title = in.Title
	p.Slug = in.Slug
	p.Excerpt = in.Excerpt
	p.Content = in.Content
	p.CoverURL = in.CoverURL
	p.Published = in.Published
	return s.repo.Update(ctx, p)
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
