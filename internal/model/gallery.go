package model

import "time"

// GalleryImage is a photo shown on the public gallery page.
type GalleryImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
}
