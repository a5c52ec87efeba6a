package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCollectionNotFound indicates the vector collection has not been
	// built yet. Callers should suggest running the indexer.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrInvalidRecord indicates a community record file could not be
	// parsed. This is fatal for the whole run: skipping a malformed record
	// would leave an undetected gap in the corpus.
	ErrInvalidRecord = errors.New("invalid community record")
)
