package sentinel

import "errors"

// Sentinel errors for store facts. Stores return these (optionally wrapped)
// and services translate them into domain errors:
//   - ErrNotFound: the person or record does not exist in the store
//   - ErrConflict: the write collides with existing state (duplicate id)
//   - ErrInvalidState: the stored state cannot serve the request (no assignment yet)
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
