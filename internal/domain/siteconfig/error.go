package siteconfig

import "errors"

// ErrNotProvisioned means the singleton row is missing, which only happens if
// the seed migration never ran or the table was wiped by hand. It surfaces as
// a server error, not a 404.
var ErrNotProvisioned = errors.New("site config row not provisioned")
