package domain

import "errors"

var (
	// ErrNetwork covers rejected requests, non-success statuses and bodies
	// that do not decode as a post list.
	ErrNetwork = errors.New("network error")

	// ErrPreviewRender is returned when a post cannot be turned into an
	// expanded preview.
	ErrPreviewRender = errors.New("preview render error")

	ErrInvalidIndex      = errors.New("post index out of range")
	ErrFetchInProgress   = errors.New("fetch already in progress")
	ErrIllegalTransition = errors.New("illegal state transition")

	ErrPreferenceNotFound = errors.New("preference not found")
)
