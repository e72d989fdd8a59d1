package domain

import "context"

// EventKind enumerates the page interactions a feed reacts to.
type EventKind int

const (
	EventPreviewClick EventKind = iota
	EventCloseClick
	EventOverlayClick
	EventLoadMoreClick
	EventKeyDown
)

func (k EventKind) String() string {
	switch k {
	case EventPreviewClick:
		return "preview_click"
	case EventCloseClick:
		return "close_click"
	case EventOverlayClick:
		return "overlay_click"
	case EventLoadMoreClick:
		return "load_more_click"
	case EventKeyDown:
		return "key_down"
	default:
		return "unknown"
	}
}

const KeyEscape = "Escape"

type Event struct {
	Kind      EventKind
	PostIndex int
	Key       string
}

type EventHandler func(ctx context.Context, ev Event)
