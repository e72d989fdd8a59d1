package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"blog_feed/internal/domain"
)

const keyPrefix = "theme:"

// ThemeStore keeps theme preferences in hashes keyed theme:<visitor>.
type ThemeStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewThemeStore creates a store from a redis:// URL. A zero ttl keeps
// preferences forever.
func NewThemeStore(url string, ttl time.Duration) (*ThemeStore, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &ThemeStore{client: goredis.NewClient(opts), ttl: ttl}, nil
}

func (s *ThemeStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *ThemeStore) Close() error {
	return s.client.Close()
}

func (s *ThemeStore) Get(ctx context.Context, visitorID string) (*domain.ThemePreference, error) {
	values, err := s.client.HGetAll(ctx, keyPrefix+visitorID).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, domain.ErrPreferenceNotFound
	}

	theme, err := domain.ParseTheme(values["theme"])
	if err != nil {
		return nil, err
	}

	pref := &domain.ThemePreference{VisitorID: visitorID, Theme: theme}
	if ts, ok := values["updated_at"]; ok {
		if pref.UpdatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
	}
	return pref, nil
}

func (s *ThemeStore) Set(ctx context.Context, pref *domain.ThemePreference) error {
	key := keyPrefix + pref.VisitorID

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		"theme", string(pref.Theme),
		"updated_at", pref.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}
