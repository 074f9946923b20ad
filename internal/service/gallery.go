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

// GalleryInput is the admin create/update payload for a gallery image.
type GalleryInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Visible  bool   `json:"visible"`
}

// GalleryService covers gallery image management and the public listing.
type GalleryService interface {
	Create(ctx context.Context, in GalleryInput) (*model.GalleryImage, error)
	Get(ctx context.Context, id string) (*model.GalleryImage, error)
	List(ctx context.Context, visibleOnly bool) ([]model.GalleryImage, error)
	Update(ctx context.Context, id string, in GalleryInput) (*model.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryService struct {
	repo repository.GalleryRepository
}

// NewGalleryService constructs a GalleryService.
func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryService{repo: repo}
}

func validateGallery(in *GalleryInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Title == "" {
		return Validationf("title is required")
	}
	if in.ImageURL == "" {
		return Validationf("image url is required")
	}
	return nil
}

func (s *galleryService) Create(ctx context.Context, in GalleryInput) (*model.GalleryImage, error) {
	if err := validateGallery(&in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.GalleryImage{
		ID:        uuid.New().String(),
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		Caption:   in.Caption,
		Visible:   in.Visible,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *galleryService) Get(ctx context.Context, id string) (*model.GalleryImage, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *galleryService) List(ctx context.Context, visibleOnly bool) ([]model.GalleryImage, error) {
	return s.repo.List(ctx, repository.GalleryListFilter{VisibleOnly: visibleOnly})
}

func (s *galleryService) Update(ctx context.Context, id string, in GalleryInput) (*model.GalleryImage, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateGallery(&in); err != nil {
		return nil, err
	}

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	g.Title = in.Title
	g.ImageURL = in.ImageURL
	g.Caption = in.Caption
	g.Visible = in.Visible
	return s.repo.Update(ctx, g)
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
