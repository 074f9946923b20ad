package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"printshop/internal/config"
	"printshop/internal/model"
)

// Notifier sends operational notifications. Callers treat dispatch as
// best-effort: a failed send must never fail the operation that triggered it.
type Notifier interface {
	// QuoteReceived notifies the shop owner about a new quote request.
	QuoteReceived(ctx context.Context, q *model.Quote) error
}

// SMTPNotifier is a Notifier delivering over plain SMTP with AUTH.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

// NewSMTP creates an SMTPNotifier from config.
func NewSMTP(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

var _ Notifier = (*SMTPNotifier)(nil)

// Configured reports whether all settings needed to send are present.
func (n *SMTPNotifier) Configured() bool {
	c := n.cfg
	return c.Host != "" && c.User != "" && c.Password != "" && c.From != ""
}

// QuoteReceived emails the shop owner a summary of the new quote request.
// When SMTP is not configured the send is skipped without error.
func (n *SMTPNotifier) QuoteReceived(_ context.Context, q *model.Quote) error {
	if !n.Configured() {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", n.cfg.User)
	fmt.Fprintf(&b, "Subject: New Quote Request from %s\r\n", q.CustomerName)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\n", q.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", q.CustomerEmail)
	if q.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", q.CustomerPhone)
	}
	if q.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", q.Message)
	}
	fmt.Fprintf(&b, "Files: %d\n", len(q.Files))
	for _, f := range q.Files {
		fmt.Fprintf(&b, "  - %s (%.2f KB) %s\n", f.Name, float64(f.Size)/1024, f.URL)
	}

	addr := n.cfg.Host + ":" + n.cfg.Port
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	return smtp.SendMail(addr, auth, n.cfg.From, []string{n.cfg.User}, []byte(b.String()))
}
