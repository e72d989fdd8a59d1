package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"blog_feed/internal/domain"
	"blog_feed/internal/metrics"
)

const DefaultPageSize = 6

type Options struct {
	PageSize  int
	SessionID string
}

// Controller owns the feed state of one page: it loads pages of posts,
// renders them on the surface and drives the preview modal.
type Controller struct {
	source    Source
	surface   Surface
	renderer  Renderer
	publisher Publisher
	logger    *slog.Logger
	sessionID string

	mu    sync.Mutex
	state domain.FeedState
}

func NewController(
	source Source,
	surface Surface,
	renderer Renderer,
	publisher Publisher,
	logger *slog.Logger,
	opts Options,
) *Controller {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Controller{
		source:    source,
		surface:   surface,
		renderer:  renderer,
		publisher: publisher,
		logger:    logger.With("source", source.ID(), "session_id", opts.SessionID),
		sessionID: opts.SessionID,
		state: domain.FeedState{
			CurrentPage: 1,
			PageSize:    pageSize,
			Fetch:       domain.FetchIdle,
			Modal:       domain.ModalClosed,
		},
	}
}

// Initialize prepares the modal, loads the first page and binds the page
// events. A failed first load is already rendered as the fallback panel;
// the error is returned for logging only.
func (c *Controller) Initialize(ctx context.Context) error {
	c.surface.EnsureModal()
	err := c.LoadPage(ctx, 1)
	c.surface.Bind(c.HandleEvent)
	return err
}

// LoadPage fetches one page of posts. Page 1 replaces the loaded posts,
// later pages are appended. While another fetch is in flight it returns
// domain.ErrFetchInProgress without touching anything.
func (c *Controller) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		return fmt.Errorf("invalid page %d", page)
	}

	c.mu.Lock()
	next, err := c.state.Fetch.Transition(domain.FetchFetching)
	if err != nil {
		c.mu.Unlock()
		return domain.ErrFetchInProgress
	}
	c.state.Fetch = next
	pageSize := c.state.PageSize
	c.surface.SetLoadMoreEnabled(false)
	c.mu.Unlock()

	defer c.releaseFetch()

	start := time.Now()
	posts, err := c.source.FetchPage(ctx, page, pageSize)
	metrics.FetchDuration.WithLabelValues(c.source.ID()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.FetchTotal.WithLabelValues(c.source.ID(), "error").Inc()
		c.logger.Error("failed to load blog posts", "page", page, "error", err)

		c.mu.Lock()
		c.surface.SetGrid(c.renderer.Fallback())
		c.mu.Unlock()

		c.publish(ctx, &domain.FeedEvent{Action: domain.ActionPageFailed, Page: page})
		return fmt.Errorf("load page %d: %w", page, err)
	}
	metrics.FetchTotal.WithLabelValues(c.source.ID(), "success").Inc()

	c.mu.Lock()
	if page == 1 {
		c.state.LoadedPosts = posts
	} else {
		c.state.LoadedPosts = append(c.state.LoadedPosts, posts...)
	}
	c.state.CurrentPage = page
	total := len(c.state.LoadedPosts)
	c.renderGrid()
	c.surface.SetLoadMoreVisible(len(posts) >= pageSize)
	c.mu.Unlock()

	c.logger.Info("loaded blog posts", "page", page, "fetched", len(posts), "total", total)
	c.publish(ctx, &domain.FeedEvent{Action: domain.ActionPageLoaded, Page: page, PostCount: len(posts)})

	return nil
}

// LoadMore loads the page after the last successful one. The current page
// only advances when that load succeeds.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	next := c.state.CurrentPage + 1
	c.mu.Unlock()

	return c.LoadPage(ctx, next)
}

func (c *Controller) releaseFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.Fetch.Transition(domain.FetchIdle)
	if err != nil {
		c.logger.Error("fetch state corrupted", "error", err)
	}
	c.state.Fetch = next
	c.surface.SetLoadMoreEnabled(true)
}

// renderGrid must be called with mu held.
func (c *Controller) renderGrid() {
	if len(c.state.LoadedPosts) == 0 {
		c.surface.SetGrid(c.renderer.Fallback())
		return
	}

	grid, err := c.renderer.Grid(c.state.LoadedPosts)
	if err != nil {
		c.logger.Error("failed to render blog grid", "error", err)
		c.surface.SetGrid(c.renderer.Fallback())
		return
	}
	c.surface.SetGrid(grid)
}

// OpenPreview shows the expanded preview of the post at index. An index
// outside the loaded posts returns domain.ErrInvalidIndex and changes
// nothing. A post that cannot be previewed leaves the modal open on an
// error panel.
func (c *Controller) OpenPreview(ctx context.Context, index int) error {
	c.mu.Lock()

	if index < 0 || index >= len(c.state.LoadedPosts) {
		n := len(c.state.LoadedPosts)
		c.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", domain.ErrInvalidIndex, index, n)
	}

	next, err := c.state.Modal.Transition(domain.ModalLoading)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	post := c.state.LoadedPosts[index]
	c.state.Modal = next
	c.state.SelectedPostIndex = &index
	c.surface.OpenModal(post.Title, post.URL, c.renderer.Loading())

	body, err := c.renderer.Preview(post)
	if err != nil {
		c.state.Modal = c.mustTransition(domain.ModalError)
		c.surface.SetModalBody(c.renderer.PreviewError(post))
		c.mu.Unlock()

		metrics.PreviewTotal.WithLabelValues("error").Inc()
		c.logger.Warn("failed to build post preview", "index", index, "url", post.URL, "error", err)
		return nil
	}

	c.state.Modal = c.mustTransition(domain.ModalShown)
	c.surface.SetModalBody(body)
	c.mu.Unlock()

	metrics.PreviewTotal.WithLabelValues("success").Inc()
	c.publish(ctx, &domain.FeedEvent{Action: domain.ActionPreviewOpened, PostURL: post.URL})

	return nil
}

// mustTransition moves the modal out of Loading; mu must be held.
func (c *Controller) mustTransition(to domain.ModalState) domain.ModalState {
	next, err := c.state.Modal.Transition(to)
	if err != nil {
		c.logger.Error("modal state corrupted", "error", err)
	}
	return next
}

// ClosePreview hides the modal. Calling it on a closed modal does nothing.
func (c *Controller) ClosePreview() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Modal == domain.ModalClosed {
		return
	}

	c.state.Modal, _ = c.state.Modal.Transition(domain.ModalClosed)
	c.state.SelectedPostIndex = nil
	c.surface.CloseModal()
}

// HandleEvent is the single delegated handler bound on the surface.
func (c *Controller) HandleEvent(ctx context.Context, ev domain.Event) {
	var err error

	switch ev.Kind {
	case domain.EventPreviewClick:
		err = c.OpenPreview(ctx, ev.PostIndex)
	case domain.EventCloseClick, domain.EventOverlayClick:
		c.ClosePreview()
	case domain.EventLoadMoreClick:
		err = c.LoadMore(ctx)
	case domain.EventKeyDown:
		if ev.Key == domain.KeyEscape {
			c.ClosePreview()
		}
	}

	if err != nil && !errors.Is(err, domain.ErrNetwork) {
		c.logger.Debug("event ignored", "kind", ev.Kind.String(), "error", err)
	}
}

// State returns a copy of the current feed state.
func (c *Controller) State() domain.FeedState {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	st.LoadedPosts = slices.Clone(c.state.LoadedPosts)
	if c.state.SelectedPostIndex != nil {
		idx := *c.state.SelectedPostIndex
		st.SelectedPostIndex = &idx
	}
	return st
}

func (c *Controller) publish(ctx context.Context, event *domain.FeedEvent) {
	if c.publisher == nil {
		return
	}

	event.SessionID = c.sessionID
	event.Timestamp = time.Now().UTC()

	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish feed event", "action", event.Action, "error", err)
	}
}
