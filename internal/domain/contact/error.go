package contact

import "errors"

var (
	ErrNotFound   = errors.New("contact not found")
	ErrValidation = errors.New("contact validation failed")
)
