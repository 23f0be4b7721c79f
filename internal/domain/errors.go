package domain

import "errors"

// ErrNotExistKind is returned when a request kind does not match one of
// the four recognized literals. It is terminal: never retried, never
// wrapped, translated to a client error at the boundary.
var ErrNotExistKind = errors.New("satisfaction kind does not exist")

var (
	ErrNotFound      = errors.New("not found")
	ErrCatalogDenied = errors.New("catalog access denied")
)
