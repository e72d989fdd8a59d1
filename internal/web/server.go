package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog_feed/internal/domain"
	"blog_feed/internal/feed"
)

const (
	SessionCookie = "feed_session"
	VisitorCookie = "visitor_id"

	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

//go:embed templates/page.html
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "templates/page.html"))

// FeedFactory builds the controller for a new page load drawing on doc.
type FeedFactory func(sessionID string, doc *Document) *feed.Controller

type ThemeService interface {
	Current(ctx context.Context, visitorID string) domain.Theme
	Toggle(ctx context.Context, visitorID string) (domain.Theme, error)
}

type Config struct {
	Title string
}

type Server struct {
	echo     *echo.Echo
	sessions *SessionStore
	newFeed  FeedFactory
	themes   ThemeService
	title    string
	logger   *slog.Logger
}

func NewServer(cfg Config, sessions *SessionStore, newFeed FeedFactory, themes ThemeService, logger *slog.Logger) *Server {
	title := cfg.Title
	if title == "" {
		title = "Blog"
	}

	s := &Server{
		echo:     echo.New(),
		sessions: sessions,
		newFeed:  newFeed,
		themes:   themes,
		title:    title,
		logger:   logger,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error == nil {
				logger.DebugContext(ctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.ErrorContext(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	s.echo.Use(middleware.Recover())

	s.echo.GET("/", s.handleIndex)
	s.echo.POST("/blog/more", s.handleEvent(func(echo.Context) (domain.Event, error) {
		return domain.Event{Kind: domain.EventLoadMoreClick}, nil
	}))
	s.echo.POST("/blog/preview/close", s.handleEvent(func(echo.Context) (domain.Event, error) {
		return domain.Event{Kind: domain.EventCloseClick}, nil
	}))
	s.echo.POST("/blog/preview/:index", s.handleEvent(previewEvent))
	s.echo.POST("/blog/overlay", s.handleEvent(func(echo.Context) (domain.Event, error) {
		return domain.Event{Kind: domain.EventOverlayClick}, nil
	}))
	s.echo.POST("/blog/key", s.handleEvent(func(c echo.Context) (domain.Event, error) {
		return domain.Event{Kind: domain.EventKeyDown, Key: c.QueryParam("key")}, nil
	}))
	s.echo.POST("/theme/toggle", s.handleThemeToggle)
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	s.logger.Info("starting http server", "address", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func previewEvent(c echo.Context) (domain.Event, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return domain.Event{}, echo.NewHTTPError(http.StatusBadRequest, "invalid post index")
	}
	return domain.Event{Kind: domain.EventPreviewClick, PostIndex: index}, nil
}

func (s *Server) handleIndex(c echo.Context) error {
	sess := s.startSession(c)
	return s.renderPage(c, sess)
}

// handleEvent dispatches the event built by parse on the caller's page. A
// request without a live session starts a new page load instead.
func (s *Server) handleEvent(parse func(echo.Context) (domain.Event, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		ev, err := parse(c)
		if err != nil {
			return err
		}

		sess, ok := s.currentSession(c)
		if !ok {
			sess = s.startSession(c)
			return s.renderPage(c, sess)
		}

		sess.Document.Dispatch(c.Request().Context(), ev)
		return s.renderPage(c, sess)
	}
}

func (s *Server) handleThemeToggle(c echo.Context) error {
	visitorID := s.visitorID(c)
	if _, err := s.themes.Toggle(c.Request().Context(), visitorID); err != nil {
		s.logger.Error("failed to toggle theme", "visitor_id", visitorID, "error", err)
	}

	sess, ok := s.currentSession(c)
	if !ok {
		sess = s.startSession(c)
	}
	return s.renderPage(c, sess)
}

func (s *Server) startSession(c echo.Context) *Session {
	ctx := c.Request().Context()
	doc := NewDocument()
	id := uuid.NewString()

	sess := &Session{
		ID:         id,
		Document:   doc,
		Controller: s.newFeed(id, doc),
	}
	if err := sess.Controller.Initialize(ctx); err != nil {
		s.logger.Warn("first page load failed", "session_id", id, "error", err)
	}
	s.sessions.Add(sess)

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}

func (s *Server) currentSession(c echo.Context) (*Session, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return s.sessions.Get(cookie.Value)
}

func (s *Server) visitorID(c echo.Context) string {
	if cookie, err := c.Cookie(VisitorCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	cookie := &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(visitorCookieMaxAge * time.Second),
	}
	c.SetCookie(cookie)
	// Later reads in this request see the new visitor.
	c.Request().AddCookie(cookie)
	return id
}

type pageData struct {
	Title string
	Theme domain.Theme
	Doc   Snapshot
}

func (s *Server) renderPage(c echo.Context, sess *Session) error {
	data := pageData{
		Title: s.title,
		Theme: s.themes.Current(c.Request().Context(), s.visitorID(c)),
		Doc:   sess.Document.Snapshot(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "render page").SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
