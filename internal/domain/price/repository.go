package price

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Price, error)
	Create(ctx context.Context, in Input) (Price, error)
	// Replace overwrites every field of the row and refreshes updated_at.
	Replace(ctx context.Context, id int, in Input) (Price, error)
	Delete(ctx context.Context, id int) error
}
