package domain

import "errors"

var (
	// ErrMatchNotFound is returned when acting on an unknown match ID.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchClosed is returned when acting on a match whose host loop has stopped.
	ErrMatchClosed = errors.New("match closed")
	// ErrCatalogEmpty indicates the question source yielded no valid records.
	ErrCatalogEmpty = errors.New("question catalog is empty")
	// ErrLevelEmpty indicates the selected level has no questions.
	ErrLevelEmpty = errors.New("no questions for selected level")
	// ErrUnknownMode indicates an unsupported contest mode was requested.
	ErrUnknownMode = errors.New("unknown match mode")
)
