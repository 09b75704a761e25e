package domain

import "errors"

// Validation errors raised before a row enters an accumulator or the store.
var (
	ErrMissingEntityKey  = errors.New("stat line is missing its entity key")
	ErrMissingSeasonYear = errors.New("stat line is missing its season year")
	ErrMissingGames      = errors.New("stat line is missing its games count")
	ErrNegativeGames     = errors.New("games played must be non-negative")
	ErrMissingNaturalKey = errors.New("row is missing its natural key")
)

// Lookup errors
var (
	ErrSeasonNotFound = errors.New("season not found")
	ErrInvalidCursor  = errors.New("pagination cursor is not valid")
)
