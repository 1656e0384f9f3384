package session

import "context"

// Store keeps per-visitor state between requests.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	// Update runs fn with the current value (ok is false when there is
	// none) and stores what it returns. No other call for the store runs
	// while fn does, so fn sees and leaves a consistent value.
	Update(ctx context.Context, id string, fn func(v T, ok bool) (T, error)) (T, error)
	Delete(ctx context.Context, id string) error
	NewID() string
}
