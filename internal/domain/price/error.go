package price

import "errors"

var (
	ErrNotFound         = errors.New("price not found")
	ErrInvalidReference = errors.New("category or repair type does not exist")
)
