package repository

import (
	"context"

	"printshop/internal/model"
)

// QuoteListFilter narrows the quote listing; zero value lists everything.
type QuoteListFilter struct {
	Status string
}

// QuoteRepository defines data access for quote requests.
type QuoteRepository interface {
	// Create inserts a new quote row and returns the stored record.
	Create(ctx context.Context, q *model.Quote) (*model.Quote, error)

	// FindByID returns a quote by its ID.
	FindByID(ctx context.Context, id string) (*model.Quote, error)

	// List returns quotes newest-first, optionally filtered by status.
	List(ctx context.Context, f QuoteListFilter, pq PageQuery) (*PageResult[model.Quote], error)

	// Update writes status, notes, and quoted price for an existing quote.
	Update(ctx context.Context, q *model.Quote) (*model.Quote, error)
}
