package note

import "errors"

var (
	ErrNotFound   = errors.New("note not found")
	ErrValidation = errors.New("note validation failed")
)
