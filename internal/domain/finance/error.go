package finance

import "errors"

var (
	ErrNotFound   = errors.New("transaction not found")
	ErrValidation = errors.New("transaction validation failed")
)
