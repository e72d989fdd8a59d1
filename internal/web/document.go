package web

import (
	"context"
	"html/template"
	"sync"

	"blog_feed/internal/domain"
)

// Modal is the preview overlay of a page.
type Modal struct {
	Visible     bool
	Title       string
	ReadFullURL string
	Body        template.HTML
}

// Snapshot is an immutable copy of a document used for rendering.
type Snapshot struct {
	Grid            template.HTML
	LoadMoreVisible bool
	LoadMoreEnabled bool
	Modal           *Modal
	ScrollLocked    bool
}

// Document is the server-side model of one visitor page. It implements
// feed.Surface.
type Document struct {
	mu              sync.Mutex
	grid            template.HTML
	loadMoreVisible bool
	loadMoreEnabled bool
	modal           *Modal
	scrollLocked    bool
	handler         domain.EventHandler
}

func NewDocument() *Document {
	return &Document{
		loadMoreVisible: true,
		loadMoreEnabled: true,
	}
}

func (d *Document) EnsureModal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.modal == nil {
		d.modal = &Modal{Title: "Blog Post Preview", ReadFullURL: "#"}
	}
}

func (d *Document) SetGrid(content template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grid = content
}

func (d *Document) SetLoadMoreVisible(visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadMoreVisible = visible
}

func (d *Document) SetLoadMoreEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadMoreEnabled = enabled
}

func (d *Document) OpenModal(title, href string, body template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.modal == nil {
		d.modal = &Modal{}
	}
	d.modal.Visible = true
	d.modal.Title = title
	d.modal.ReadFullURL = href
	d.modal.Body = body
	d.scrollLocked = true
}

func (d *Document) SetModalBody(body template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.modal != nil {
		d.modal.Body = body
	}
}

func (d *Document) CloseModal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.modal != nil {
		d.modal.Visible = false
	}
	d.scrollLocked = false
}

// Bind installs the delegated event handler, replacing any previous one.
func (d *Document) Bind(handler domain.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = handler
}

// Dispatch delivers ev to the bound handler. It reports false when nothing
// is bound. The handler runs without the document lock held.
func (d *Document) Dispatch(ctx context.Context, ev domain.Event) bool {
	d.mu.Lock()
	handler := d.handler
	d.mu.Unlock()

	if handler == nil {
		return false
	}
	handler(ctx, ev)
	return true
}

func (d *Document) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{
		Grid:            d.grid,
		LoadMoreVisible: d.loadMoreVisible,
		LoadMoreEnabled: d.loadMoreEnabled,
		ScrollLocked:    d.scrollLocked,
	}
	if d.modal != nil {
		m := *d.modal
		snap.Modal = &m
	}
	return snap
}
