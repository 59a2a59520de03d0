package siteconfig

import "context"

type Repository interface {
	Get(ctx context.Context) (Config, error)
	// Upsert writes the singleton row, recreating it if it went missing.
	Upsert(ctx context.Context, in Input) (Config, error)
}
