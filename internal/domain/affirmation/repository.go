package affirmation

import "context"

type Repository interface {
	// ListOrdered returns all affirmations sorted by numero ascending.
	ListOrdered(ctx context.Context) ([]Affirmation, error)
}

// StateStore persists the rotation cache across restarts. Missing keys
// read back as the empty string.
type StateStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
