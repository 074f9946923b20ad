package repository

import (
	"context"

	"printshop/internal/model"
)

// PostListFilter narrows the blog listing. PublishedOnly hides drafts.
type PostListFilter struct {
	PublishedOnly bool
}

// PostRepository defines data access for blog posts.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, f PostListFilter, pq PageQuery) (*PageResult[model.Post], error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}
