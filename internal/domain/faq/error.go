package faq

import "errors"

var ErrNotFound = errors.New("faq not found")
