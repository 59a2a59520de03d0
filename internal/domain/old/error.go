package old

import "errors"

var (
	ErrNotFound = errors.New("old record not found")
	ErrConflict = errors.New("old record identifier pair already exists")
)
