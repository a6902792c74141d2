package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogUnavailable indicates the catalog artifact is missing,
	// unreachable or failed to parse. The engine stays unusable and every
	// search returns an empty result set.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrMalformedDocument indicates a content document is missing required
	// front-matter fields (title, date, slug). The document is skipped
	// during a build, never fatal.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidThemeNumber indicates a string does not parse as a
	// major.letter.minor theme number.
	ErrInvalidThemeNumber = errors.New("invalid theme number")

	// ErrDuplicateRecordID indicates two catalog records share an ID.
	ErrDuplicateRecordID = errors.New("duplicate record id")
)
