package batch

import "errors"

var (
	ErrNotFound = errors.New("batch not found")
	ErrConflict = errors.New("batch identifier pair already exists")
)
