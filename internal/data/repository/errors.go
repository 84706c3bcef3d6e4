package repository

import "errors"

var (
	// ErrNotFound is returned by mutations whose target does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("record already exists")
	// ErrInvalidDocument is returned when a document fails schema validation.
	ErrInvalidDocument = errors.New("document failed validation")
)

// pgUniqueViolation is the SQLSTATE raised by a unique index.
const pgUniqueViolation = "23505"
