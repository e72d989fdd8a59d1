package domain

import (
	"fmt"
	"time"
)

type Post struct {
	ID                 int64
	Title              string
	URL                string
	PublishedAt        time.Time
	CoverImageURL      *string
	Description        *string
	ReadingTimeMinutes *float64
	ReactionsCount     *int
	CommentsCount      *int
	Tags               []string
}

// Validate reports whether the post carries enough data for an expanded
// preview. Cards render with fallbacks and never call it.
func (p *Post) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: missing title", ErrPreviewRender)
	}
	if p.URL == "" {
		return fmt.Errorf("%w: missing url", ErrPreviewRender)
	}
	if p.PublishedAt.IsZero() {
		return fmt.Errorf("%w: missing publish date", ErrPreviewRender)
	}
	return nil
}
