package service

import (
	"context"
	"database/sql"
	"testing"

	"printshop/internal/model"
	"printshop/internal/repository"
	repoMocks "printshop/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	validInput := func() ProductInput {
		return ProductInput{
			Name:       "Benchy",
			Slug:       "benchy",
			Price:      12.5,
			Stock:      3,
			IsActive:   true,
			CategoryID: "cat-1",
		}
	}

	t.Run("happy path", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mCategories := new(repoMocks.MockCategoryRepository)
		mCategories.On("FindByID", ctx, "cat-1").Return(&model.Category{ID: "cat-1"}, nil)
		mProducts.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
			return p.ID != "" && p.Name == "Benchy" && p.Images != nil && p.CategoryID == "cat-1"
		})).Return(&model.Product{ID: "prod-1", Name: "Benchy"}, nil)
		svc := NewCatalogService(mProducts, mCategories)

		p, err := svc.CreateProduct(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, "prod-1", p.ID)
		mProducts.AssertExpectations(t)
		mCategories.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mCategories := new(repoMocks.MockCategoryRepository)
		mCategories.On("FindByID", ctx, "cat-1").Return(nil, sql.ErrNoRows)
		svc := NewCatalogService(mProducts, mCategories)

		_, err := svc.CreateProduct(ctx, validInput())

		assert.True(t, IsValidation(err))
		mProducts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("field validation", func(t *testing.T) {
		svc := NewCatalogService(new(repoMocks.MockProductRepository), new(repoMocks.MockCategoryRepository))

		cases := []struct {
			mutate  func(*ProductInput)
			wantMsg string
		}{
			{func(in *ProductInput) { in.Name = "  " }, "name is required"},
			{func(in *ProductInput) { in.Slug = "" }, "slug is required"},
			{func(in *ProductInput) { in.Price = -1 }, "price must not be negative"},
			{func(in *ProductInput) { in.Stock = -1 }, "stock must not be negative"},
			{func(in *ProductInput) { in.CategoryID = "" }, "category is required"},
		}
		for _, tc := range cases {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateProduct(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())
		}
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mCategories := new(repoMocks.MockCategoryRepository)
		mProducts.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewCatalogService(mProducts, mCategories)

		_, err := svc.UpdateProduct(ctx, "missing", ProductInput{
			Name: "X", Slug: "x", CategoryID: "cat-1",
		})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("applies fields", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mCategories := new(repoMocks.MockCategoryRepository)
		mProducts.On("FindByID", ctx, "prod-1").Return(&model.Product{
			ID: "prod-1", Name: "Old", Slug: "old", CategoryID: "cat-1", Images: []string{"a.png"},
		}, nil)
		mProducts.On("Update", ctx, mock.MatchedBy(func(p *model.Product) bool {
			return p.Name == "New" && p.Slug == "new" && len(p.Images) == 1
		})).Return(&model.Product{ID: "prod-1", Name: "New"}, nil)
		svc := NewCatalogService(mProducts, mCategories)

		p, err := svc.UpdateProduct(ctx, "prod-1", ProductInput{
			Name: "New", Slug: "new", CategoryID: "cat-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "New", p.Name)
		mProducts.AssertExpectations(t)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	active := true

	mProducts := new(repoMocks.MockProductRepository)
	mProducts.On("List", ctx, repository.ProductListFilter{Active: &active}, repository.PageQuery{Limit: 20, Offset: 0}).
		Return(&repository.PageResult[model.Product]{Items: []model.Product{{ID: "prod-1"}}, Total: 1}, nil)
	svc := NewCatalogService(mProducts, new(repoMocks.MockCategoryRepository))

	res, err := svc.ListProducts(ctx, repository.ProductListFilter{Active: &active}, 0, -1)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	mProducts.AssertExpectations(t)
}
