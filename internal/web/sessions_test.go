package web

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SessionStoreSuite struct {
	suite.Suite
	store *SessionStore
	now   time.Time
}

func (s *SessionStoreSuite) SetupTest() {
	store, err := NewSessionStore(2, 10*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)

	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return s.now }
	s.store = store
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) TestAddGet() {
	s.store.Add(&Session{ID: "a", Document: NewDocument()})

	sess, ok := s.store.Get("a")
	s.True(ok)
	s.Equal("a", sess.ID)
	s.True(s.now.Equal(sess.LastSeen()))

	_, ok = s.store.Get("missing")
	s.False(ok)
}

func (s *SessionStoreSuite) TestEvictsLeastRecentlyUsed() {
	s.store.Add(&Session{ID: "a"})
	s.store.Add(&Session{ID: "b"})
	s.store.Get("a")
	s.store.Add(&Session{ID: "c"})

	s.Equal(2, s.store.Len())
	_, ok := s.store.Get("b")
	s.False(ok)
	_, ok = s.store.Get("a")
	s.True(ok)
}

func (s *SessionStoreSuite) TestSweepRemovesIdle() {
	s.store.Add(&Session{ID: "old"})
	s.now = s.now.Add(8 * time.Minute)
	s.store.Add(&Session{ID: "fresh"})
	s.now = s.now.Add(5 * time.Minute)

	removed, err := s.store.Sweep(context.Background())
	s.NoError(err)
	s.Equal(1, removed)

	_, ok := s.store.Get("old")
	s.False(ok)
	_, ok = s.store.Get("fresh")
	s.True(ok)
}

func (s *SessionStoreSuite) TestGetKeepsSessionAlive() {
	s.store.Add(&Session{ID: "a"})
	s.now = s.now.Add(9 * time.Minute)
	s.store.Get("a")
	s.now = s.now.Add(9 * time.Minute)

	removed, err := s.store.Sweep(context.Background())
	s.NoError(err)
	s.Zero(removed)
}

func (s *SessionStoreSuite) TestSweepHonoursCancellation() {
	s.store.Add(&Session{ID: "a"})
	s.now = s.now.Add(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	removed, err := s.store.Sweep(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Zero(removed)
	s.Equal(1, s.store.Len())
}

func (s *SessionStoreSuite) TestInvalidSize() {
	_, err := NewSessionStore(0, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Error(err)
}
