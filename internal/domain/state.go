package domain

import "fmt"

type FetchState int

const (
	FetchIdle FetchState = iota
	FetchFetching
)

func (s FetchState) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchFetching:
		return "fetching"
	default:
		return fmt.Sprintf("fetch(%d)", int(s))
	}
}

// Transition returns the next fetch state or ErrIllegalTransition.
// Idle -> Fetching -> Idle is the only cycle.
func (s FetchState) Transition(to FetchState) (FetchState, error) {
	if (s == FetchIdle && to == FetchFetching) || (s == FetchFetching && to == FetchIdle) {
		return to, nil
	}
	return s, fmt.Errorf("%w: fetch %s -> %s", ErrIllegalTransition, s, to)
}

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalLoading
	ModalShown
	ModalError
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalLoading:
		return "loading"
	case ModalShown:
		return "shown"
	case ModalError:
		return "error"
	default:
		return fmt.Sprintf("modal(%d)", int(s))
	}
}

// Transition returns the next modal state or ErrIllegalTransition.
// Any state may close. Loading is entered from every state but itself and
// is left only for Shown or Error.
func (s ModalState) Transition(to ModalState) (ModalState, error) {
	ok := false
	switch to {
	case ModalClosed:
		ok = true
	case ModalLoading:
		ok = s != ModalLoading
	case ModalShown, ModalError:
		ok = s == ModalLoading
	}
	if !ok {
		return s, fmt.Errorf("%w: modal %s -> %s", ErrIllegalTransition, s, to)
	}
	return to, nil
}
