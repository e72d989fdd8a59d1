package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/suite"

	"blog_feed/internal/domain"
	"blog_feed/internal/feed"
	"blog_feed/internal/preference"
	"blog_feed/internal/render"
)

type stubSource struct {
	mu       sync.Mutex
	perPage  int
	lastPage int
	err      error
	pages    []int
}

func (s *stubSource) ID() string { return "stub" }

func (s *stubSource) FetchPage(_ context.Context, page, perPage int) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages = append(s.pages, page)
	if s.err != nil {
		return nil, s.err
	}

	n := s.perPage
	if page == s.lastPage {
		n = perPage / 2
	}

	posts := make([]domain.Post, 0, n)
	for i := range n {
		id := (page-1)*perPage + i
		posts = append(posts, domain.Post{
			ID:          int64(id),
			Title:       fmt.Sprintf("Post %d", id),
			URL:         fmt.Sprintf("https://dev.to/jane/post-%d", id),
			PublishedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"go"},
		})
	}
	return posts, nil
}

func (s *stubSource) requested() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.pages...)
}

type ServerSuite struct {
	suite.Suite
	source *stubSource
	server *Server
}

func (s *ServerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.source = &stubSource{perPage: 6, lastPage: 3}
	renderer := render.New(render.Options{ProfileURL: "https://dev.to/jane", PickColor: render.HashColor})

	sessions, err := NewSessionStore(16, time.Hour, logger)
	s.Require().NoError(err)

	newFeed := func(sessionID string, doc *Document) *feed.Controller {
		return feed.NewController(s.source, doc, renderer, nil, logger, feed.Options{
			PageSize:  6,
			SessionID: sessionID,
		})
	}

	s.server = NewServer(
		Config{Title: "Jane's Blog"},
		sessions,
		newFeed,
		preference.NewService(preference.NewMemoryStore(), logger),
		logger,
	)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) do(method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) parse(rec *httptest.ResponseRecorder) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	s.Require().NoError(err)
	return doc
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// open loads the page and returns the cookies identifying the visitor and
// the page session.
func (s *ServerSuite) open() []*http.Cookie {
	rec := s.do(http.MethodGet, "/")
	s.Require().Equal(http.StatusOK, rec.Code)

	session := cookieNamed(rec, SessionCookie)
	visitor := cookieNamed(rec, VisitorCookie)
	s.Require().NotNil(session)
	s.Require().NotNil(visitor)
	return []*http.Cookie{session, visitor}
}

func modalDisplay(doc *goquery.Document) string {
	style, _ := doc.Find("#blog-modal").Attr("style")
	return style
}

func (s *ServerSuite) TestIndex_RendersFirstPage() {
	rec := s.do(http.MethodGet, "/")
	s.Equal(http.StatusOK, rec.Code)
	s.NotNil(cookieNamed(rec, SessionCookie))
	s.NotNil(cookieNamed(rec, VisitorCookie))

	doc := s.parse(rec)
	s.Equal("Jane's Blog", doc.Find("title").Text())
	s.Equal(6, doc.Find("#blog-posts-grid .blog-card").Length())
	s.Equal("Post 0", doc.Find(".blog-card .blog-title a").First().Text())
	s.Equal(1, doc.Find("#load-more-posts").Length())
	s.Contains(modalDisplay(doc), "none")
	s.Equal("Blog Post Preview", doc.Find("#modal-title").Text())

	theme, _ := doc.Find("html").Attr("data-theme")
	s.Equal("light", theme)
	s.Equal([]int{1}, s.source.requested())
}

func (s *ServerSuite) TestIndex_FetchFailureShowsFallback() {
	s.source.err = fmt.Errorf("%w: boom", domain.ErrNetwork)

	rec := s.do(http.MethodGet, "/")
	s.Equal(http.StatusOK, rec.Code)

	doc := s.parse(rec)
	s.Equal(0, doc.Find(".blog-card").Length())
	s.Contains(doc.Find("#blog-posts-grid .blog-fallback h3").Text(), "More posts coming soon!")
	href, _ := doc.Find(".blog-fallback a").Attr("href")
	s.Equal("https://dev.to/jane", href)
}

func (s *ServerSuite) TestLoadMore_AppendsPages() {
	cookies := s.open()

	doc := s.parse(s.do(http.MethodPost, "/blog/more", cookies...))
	s.Equal(12, doc.Find(".blog-card").Length())
	s.Equal(1, doc.Find("#load-more-posts").Length())

	// Page 3 is short, so the control disappears.
	doc = s.parse(s.do(http.MethodPost, "/blog/more", cookies...))
	s.Equal(15, doc.Find(".blog-card").Length())
	s.Equal(0, doc.Find("#load-more-posts").Length())

	s.Equal([]int{1, 2, 3}, s.source.requested())
}

func (s *ServerSuite) TestLoadMore_FailureKeepsPage() {
	cookies := s.open()
	s.source.err = errors.New("offline")

	doc := s.parse(s.do(http.MethodPost, "/blog/more", cookies...))
	s.Contains(doc.Find("#blog-posts-grid").Text(), "More posts coming soon!")

	_, disabled := doc.Find("#load-more-posts").Attr("disabled")
	s.False(disabled)
}

func (s *ServerSuite) TestPreview_OpenAndClose() {
	cookies := s.open()

	rec := s.do(http.MethodPost, "/blog/preview/2", cookies...)
	s.Equal(http.StatusOK, rec.Code)

	doc := s.parse(rec)
	s.Contains(modalDisplay(doc), "flex")
	s.Equal("Post 2", doc.Find("#modal-title").Text())
	href, _ := doc.Find("#modal-read-full").Attr("href")
	s.Equal("https://dev.to/jane/post-2", href)
	s.Contains(doc.Find("#modal-body .post-date").Text(), "Published on January 15, 2024")
	s.Equal("go", doc.Find("#modal-body .preview-tag").Text())
	bodyStyle, _ := doc.Find("body").Attr("style")
	s.Contains(bodyStyle, "overflow: hidden")

	doc = s.parse(s.do(http.MethodPost, "/blog/preview/close", cookies...))
	s.Contains(modalDisplay(doc), "none")
	_, locked := doc.Find("body").Attr("style")
	s.False(locked)
}

func (s *ServerSuite) TestPreview_EscapeAndOverlayClose() {
	cookies := s.open()

	s.do(http.MethodPost, "/blog/preview/0", cookies...)
	doc := s.parse(s.do(http.MethodPost, "/blog/key?key=Enter", cookies...))
	s.Contains(modalDisplay(doc), "flex")

	doc = s.parse(s.do(http.MethodPost, "/blog/key?key=Escape", cookies...))
	s.Contains(modalDisplay(doc), "none")

	s.do(http.MethodPost, "/blog/preview/1", cookies...)
	doc = s.parse(s.do(http.MethodPost, "/blog/overlay", cookies...))
	s.Contains(modalDisplay(doc), "none")
}

func (s *ServerSuite) TestPreview_OutOfRangeIsIgnored() {
	cookies := s.open()

	rec := s.do(http.MethodPost, "/blog/preview/42", cookies...)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(modalDisplay(s.parse(rec)), "none")
}

func (s *ServerSuite) TestPreview_BadIndex() {
	cookies := s.open()

	rec := s.do(http.MethodPost, "/blog/preview/abc", cookies...)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestEvent_WithoutSessionStartsNewPage() {
	rec := s.do(http.MethodPost, "/blog/more")
	s.Equal(http.StatusOK, rec.Code)
	s.NotNil(cookieNamed(rec, SessionCookie))

	doc := s.parse(rec)
	s.Equal(6, doc.Find(".blog-card").Length())
	s.Equal([]int{1}, s.source.requested())
}

func (s *ServerSuite) TestEvent_UnknownSessionStartsNewPage() {
	rec := s.do(http.MethodPost, "/blog/preview/0", &http.Cookie{Name: SessionCookie, Value: "expired"})
	s.Equal(http.StatusOK, rec.Code)

	session := cookieNamed(rec, SessionCookie)
	s.Require().NotNil(session)
	s.NotEqual("expired", session.Value)
	s.Contains(modalDisplay(s.parse(rec)), "none")
}

func (s *ServerSuite) TestThemeToggle() {
	cookies := s.open()

	doc := s.parse(s.do(http.MethodPost, "/theme/toggle", cookies...))
	theme, _ := doc.Find("html").Attr("data-theme")
	s.Equal("dark", theme)

	// The theme outlives the page session.
	rec := s.do(http.MethodGet, "/", cookies[1])
	theme, _ = s.parse(rec).Find("html").Attr("data-theme")
	s.Equal("dark", theme)

	doc = s.parse(s.do(http.MethodPost, "/theme/toggle", cookies...))
	theme, _ = doc.Find("html").Attr("data-theme")
	s.Equal("light", theme)
}

func (s *ServerSuite) TestThemeToggle_NewVisitor() {
	rec := s.do(http.MethodPost, "/theme/toggle")
	s.Equal(http.StatusOK, rec.Code)
	s.NotNil(cookieNamed(rec, VisitorCookie))

	theme, _ := s.parse(rec).Find("html").Attr("data-theme")
	s.Equal("dark", theme)
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *ServerSuite) TestMetrics() {
	s.open()

	rec := s.do(http.MethodGet, "/metrics")
	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.True(strings.Contains(body, "blogfeed_active_sessions"))
	s.True(strings.Contains(body, `blogfeed_fetch_total{source="stub",status="success"}`))
}
