package domain

import "time"

// FeedState is the in-memory state of one feed controller. It lives as long
// as the page it was created for and is never persisted.
type FeedState struct {
	LoadedPosts       []Post
	CurrentPage       int
	PageSize          int
	Fetch             FetchState
	Modal             ModalState
	SelectedPostIndex *int
}

// FeedAction names an activity event emitted by the feed.
type FeedAction string

const (
	ActionPageLoaded    FeedAction = "page_loaded"
	ActionPageFailed    FeedAction = "page_failed"
	ActionPreviewOpened FeedAction = "preview_opened"
)

type FeedEvent struct {
	Action    FeedAction `json:"action"`
	SessionID string     `json:"session_id,omitempty"`
	Page      int        `json:"page,omitempty"`
	PostCount int        `json:"post_count"`
	PostURL   string     `json:"post_url,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
