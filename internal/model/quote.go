package model

import "time"

// Quote statuses accepted by the admin quote editor.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusReviewed  = "reviewed"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusCompleted = "completed"
	QuoteStatusDeclined  = "declined"
)

// QuoteFile describes one accepted upload belonging to a quote request:
// the original client filename, the public URL the stored copy is served
// under, and its size in bytes.
type QuoteFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Quote is a customer quote request for a 3D-printing or film-processing job.
// Files are stored as a JSON column alongside the row.
type Quote struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Message       string      `json:"message,omitempty"`
	Files         []QuoteFile `json:"files"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes,omitempty"`
	QuotedPrice   *float64    `json:"quoted_price,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ValidQuoteStatus reports whether s is one of the accepted quote statuses.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewed, QuoteStatusQuoted,
		QuoteStatusAccepted, QuoteStatusCompleted, QuoteStatusDeclined:
		return true
	}
	return false
}
