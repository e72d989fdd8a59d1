package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"blog_feed/internal/domain"
)

// ThemeStore keeps one theme preference row per visitor.
type ThemeStore struct {
	db *sqlx.DB
}

func NewThemeStore(db *sqlx.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

func (s *ThemeStore) Get(ctx context.Context, visitorID string) (*domain.ThemePreference, error) {
	var pref domain.ThemePreference
	query := `
		SELECT visitor_id, theme, updated_at
		FROM theme_preferences
		WHERE visitor_id = $1`

	err := s.db.GetContext(ctx, &pref, query, visitorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (s *ThemeStore) Set(ctx context.Context, pref *domain.ThemePreference) error {
	query := `
		INSERT INTO theme_preferences (visitor_id, theme, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (visitor_id) DO UPDATE SET
			theme = EXCLUDED.theme,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		pref.VisitorID,
		pref.Theme,
		pref.UpdatedAt,
	)
	return err
}
