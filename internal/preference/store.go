package preference

import (
	"context"

	"blog_feed/internal/domain"
)

// Store persists one theme per visitor. Get returns
// domain.ErrPreferenceNotFound for unknown visitors.
type Store interface {
	Get(ctx context.Context, visitorID string) (*domain.ThemePreference, error)
	Set(ctx context.Context, pref *domain.ThemePreference) error
}
