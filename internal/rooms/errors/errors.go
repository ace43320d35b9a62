package errors

import "errors"

var (
	ErrNotFound = errors.New("room not found")

	ErrAlreadyExists = errors.New("room already exists")
)
