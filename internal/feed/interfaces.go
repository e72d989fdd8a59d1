package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"html/template"

	"blog_feed/internal/domain"
)

type Source interface {
	ID() string
	FetchPage(ctx context.Context, page, perPage int) ([]domain.Post, error)
}

// Surface is the part of the page the controller draws on.
type Surface interface {
	// EnsureModal creates the preview modal once; later calls do nothing.
	EnsureModal()
	SetGrid(content template.HTML)
	SetLoadMoreVisible(visible bool)
	SetLoadMoreEnabled(enabled bool)
	// OpenModal shows the modal with the given title, read-full link and
	// body, and locks page scrolling.
	OpenModal(title, href string, body template.HTML)
	SetModalBody(body template.HTML)
	// CloseModal hides the modal and releases the scroll lock.
	CloseModal()
	Bind(handler domain.EventHandler)
}

type Renderer interface {
	Grid(posts []domain.Post) (template.HTML, error)
	Preview(post domain.Post) (template.HTML, error)
	PreviewError(post domain.Post) template.HTML
	Loading() template.HTML
	Fallback() template.HTML
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.FeedEvent) error
}
