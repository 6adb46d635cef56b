package journal

import "errors"

var (
	ErrNotFound   = errors.New("journal entry not found")
	ErrValidation = errors.New("journal entry validation failed")
)
