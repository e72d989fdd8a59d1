package web

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"blog_feed/internal/feed"
	"blog_feed/internal/metrics"
)

// Session is one page load: a document and the feed controller drawing on
// it.
type Session struct {
	ID         string
	Document   *Document
	Controller *feed.Controller

	lastSeen atomic.Int64
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// SessionStore keeps the most recently used sessions in memory.
type SessionStore struct {
	cache       *lru.Cache[string, *Session]
	idleTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

func NewSessionStore(size int, idleTimeout time.Duration, logger *slog.Logger) (*SessionStore, error) {
	cache, err := lru.NewWithEvict(size, func(id string, _ *Session) {
		logger.Debug("session evicted", "session_id", id)
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}

	return &SessionStore{
		cache:       cache,
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *SessionStore) Add(sess *Session) {
	sess.touch(s.now())
	s.cache.Add(sess.ID, sess)
	metrics.ActiveSessions.Set(float64(s.cache.Len()))
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}

// Sweep drops sessions idle for longer than the idle timeout.
func (s *SessionStore) Sweep(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.idleTimeout)
	removed := 0

	for _, id := range s.cache.Keys() {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		sess, ok := s.cache.Peek(id)
		if !ok || sess.LastSeen().After(cutoff) {
			continue
		}
		if s.cache.Remove(id) {
			removed++
		}
	}

	metrics.ActiveSessions.Set(float64(s.cache.Len()))
	if removed > 0 {
		s.logger.Info("swept idle sessions", "removed", removed, "remaining", s.cache.Len())
	}

	return removed, nil
}
