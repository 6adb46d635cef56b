package decision

import "errors"

var (
	ErrNotFound   = errors.New("decision not found")
	ErrValidation = errors.New("decision validation failed")
)
