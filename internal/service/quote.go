package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"printshop/internal/config"
	"printshop/internal/mailer"
	"printshop/internal/model"
	"printshop/internal/repository"
	"printshop/internal/storage"
)

// allowedQuoteExts is the extension allow-list for quote uploads: 3D model
// formats plus common archives.
var allowedQuoteExts = map[string]struct{}{
	"stl": {}, "step": {}, "stp": {}, "iges": {}, "igs": {},
	"obj": {}, "zip": {}, "rar": {}, "7z": {},
}

// UploadFile is one incoming multipart file: its original name, declared
// size, and a function opening its content for reading.
type UploadFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// QuoteSubmission is the parsed customer quote form.
type QuoteSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Files   []UploadFile
}

// QuoteReview carries the admin patch for a quote; nil fields are left
// unchanged.
type QuoteReview struct {
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
	QuotedPrice *float64 `json:"quoted_price"`
}

// QuoteListResult is the service-level DTO for paginated quotes.
type QuoteListResult struct {
	Items []model.Quote `json:"data"`
	Total int           `json:"total"`
}

// QuoteService defines the quote intake and review use cases.
type QuoteService interface {
	// Submit validates the form and its files, writes accepted files to the
	// quote file store, persists the quote, and dispatches a best-effort
	// notification. Validation failures are ValidationErrors naming the
	// first failed check; no file is written before the whole batch passes
	// the metadata checks.
	Submit(ctx context.Context, sub QuoteSubmission) (*model.Quote, error)

	// List returns quotes newest-first with an optional status filter.
	List(ctx context.Context, status string, limit, offset int) (*QuoteListResult, error)

	// Get returns a single quote by its ID.
	Get(ctx context.Context, id string) (*model.Quote, error)

	// Review applies an admin update to a quote.
	Review(ctx context.Context, id string, rev QuoteReview) (*model.Quote, error)
}

type quoteService struct {
	repo     repository.QuoteRepository
	files    storage.FileStore
	notifier mailer.Notifier
	cfg      config.UploadConfig
}

// NewQuoteService constructs a QuoteService.
func NewQuoteService(repo repository.QuoteRepository, files storage.FileStore, notifier mailer.Notifier, cfg config.UploadConfig) QuoteService {
	return &quoteService{repo: repo, files: files, notifier: notifier, cfg: cfg}
}

func (s *quoteService) Submit(ctx context.Context, sub QuoteSubmission) (*model.Quote, error) {
	name := strings.TrimSpace(sub.Name)
	email := strings.TrimSpace(sub.Email)
	if name == "" {
		return nil, Validationf("name is required")
	}
	if email == "" {
		return nil, Validationf("email is required")
	}

	if len(sub.Files) == 0 {
		return nil, Validationf("at least one file is required")
	}
	if len(sub.Files) > s.cfg.MaxFiles {
		return nil, Validationf("max %d files allowed", s.cfg.MaxFiles)
	}

	// Metadata pass: extension and size are known without reading content,
	// so the whole batch is checked before anything touches disk.
	for _, f := range sub.Files {
		ext := storage.Ext(f.Name)
		if _, ok := allowedQuoteExts[ext]; !ok {
			return nil, Validationf("file type not allowed: .%s", ext)
		}
		if f.Size > s.cfg.MaxFileBytes {
			return nil, Validationf("file too large: %s (%.2f MB)", f.Name, float64(f.Size)/(1024*1024))
		}
	}

	// Write pass. Files written before a later I/O failure are not removed;
	// orphans are cleaned up out of band.
	stored := make([]model.QuoteFile, 0, len(sub.Files))
	for _, f := range sub.Files {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", f.Name, err)
		}
		url, err := s.files.Save(ctx, storage.GenerateName(f.Name), rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("store upload %s: %w", f.Name, err)
		}
		stored = append(stored, model.QuoteFile{Name: f.Name, URL: url, Size: f.Size})
	}

	now := time.Now().UTC()
	quote := &model.Quote{
		ID:            uuid.New().String(),
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: strings.TrimSpace(sub.Phone),
		Message:       strings.TrimSpace(sub.Message),
		Files:         stored,
		Status:        model.QuoteStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := s.repo.Create(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}

	// Notification is best-effort: a failed send never fails the submission.
	if err := s.notifier.QuoteReceived(ctx, created); err != nil {
		log.Printf("quote notification failed: %v", err)
	}

	return created, nil
}

func (s *quoteService) List(ctx context.Context, status string, limit, offset int) (*QuoteListResult, error) {
	if status != "" && !model.ValidQuoteStatus(status) {
		return nil, Validationf("invalid status")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.QuoteListFilter{Status: status}, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &QuoteListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *quoteService) Get(ctx context.Context, id string) (*model.Quote, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) Review(ctx context.Context, id string, rev QuoteReview) (*model.Quote, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if rev.Status != nil && !model.ValidQuoteStatus(*rev.Status) {
		return nil, Validationf("invalid status")
	}

	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if rev.Status != nil {
		quote.Status = *rev.Status
	}
	if rev.Notes != nil {
		quote.Notes = *rev.Notes
	}
	if rev.QuotedPrice != nil {
		quote.QuotedPrice = rev.QuotedPrice
	}

	return s.repo.Update(ctx, quote)
}
