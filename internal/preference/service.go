package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog_feed/internal/domain"
	"blog_feed/internal/metrics"
)

// Service resolves and toggles the visitor's theme.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With("component", "theme"),
		now:    time.Now,
	}
}

// Current returns the stored theme, or the default when none is stored or
// the store fails.
func (s *Service) Current(ctx context.Context, visitorID string) domain.Theme {
	pref, err := s.store.Get(ctx, visitorID)
	if err != nil {
		if !errors.Is(err, domain.ErrPreferenceNotFound) {
			s.logger.Warn("failed to read theme preference", "visitor_id", visitorID, "error", err)
		}
		return domain.DefaultTheme
	}
	return pref.Theme
}

func (s *Service) Toggle(ctx context.Context, visitorID string) (domain.Theme, error) {
	next := s.Current(ctx, visitorID).Toggle()

	pref := &domain.ThemePreference{
		VisitorID: visitorID,
		Theme:     next,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.store.Set(ctx, pref); err != nil {
		return "", fmt.Errorf("save theme preference: %w", err)
	}

	metrics.ThemeToggles.WithLabelValues(string(next)).Inc()
	s.logger.Debug("theme toggled", "visitor_id", visitorID, "theme", next)

	return next, nil
}
