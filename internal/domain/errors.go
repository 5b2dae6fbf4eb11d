package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrPlantNotFound signals a missing catalog record.
	ErrPlantNotFound = errors.New("plant not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidPlant signals a record that fails validation.
	ErrInvalidPlant = errors.New("invalid plant")
	// ErrInvalidEntry signals a library entry that fails validation.
	ErrInvalidEntry = errors.New("invalid library entry")
)
