package domain

import "errors"

var (
	// ErrNotFound indicates a referenced project or resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates missing or malformed input
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAlreadyExists indicates a duplicate project name
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrUnauthorized indicates an unknown session token
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInternal indicates an underlying file-system or git failure
	ErrInternal = errors.New("internal error")
)
