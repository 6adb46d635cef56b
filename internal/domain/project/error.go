package project

import "errors"

var (
	ErrNotFound   = errors.New("project not found")
	ErrValidation = errors.New("project validation failed")
)
