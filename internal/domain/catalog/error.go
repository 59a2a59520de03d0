package catalog

import "errors"

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrRepairTypeNotFound = errors.New("repair type not found")
)
