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

// ProductInput is the admin create/update payload for a product.
type ProductInput struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"is_active"`
	CategoryID  string   `json:"category_id"`
}

// CategoryInput is the admin create/update payload for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ProductListResult is the service-level DTO for paginated products.
type ProductListResult struct {
	Items []model.Product `json:"data"`
	Total int             `json:"total"`
}

// CatalogService covers product and category management.
type CatalogService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, f repository.ProductListFilter, limit, offset int) (*ProductListResult, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository) CatalogService {
	return &catalogService{products: products, categories: categories}
}

func validateProduct(in *ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" {
		return Validationf("name is required")
	}
	if in.Slug == "" {
		return Validationf("slug is required")
	}
	if in.Price < 0 {
		return Validationf("price must not be negative")
	}
	if in.Stock < 0 {
		return Validationf("stock must not be negative")
	}
	if in.CategoryID == "" {
		return Validationf("category is required")
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, Validationf("unknown category: %s", in.CategoryID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	images := in.Images
	if images == nil {
		images = []string{}
	}
	return s.products.Create(ctx, &model.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Images:      images,
		IsActive:    in.IsActive,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context, f repository.ProductListFilter, limit, offset int) (*ProductListResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.products.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateProduct(&in); err != nil {
		return nil, err
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Name = in.Name
	p.Slug = in.Slug
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	if in.Images != nil {
		p.Images = in.Images
	}
	p.IsActive = in.IsActive
	p.CategoryID = in.CategoryID
	return s.products.Update(ctx, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.products.Delete(ctx, id)
}

func (s *catalogService) CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" {
		return nil, Validationf("name is required")
	}
	if in.Slug == "" {
		return nil, Validationf("slug is required")
	}
	return s.categories.Create(ctx, &model.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *catalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*model.Category, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" {
		return nil, Validationf("name is required")
	}
	if in.Slug == "" {
		return nil, Validationf("slug is required")
	}

	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.Name = in.Name
	c.Slug = in.Slug
	c.Description = in.Description
	return s.categories.Update(ctx, c)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.categories.Delete(ctx, id)
}
