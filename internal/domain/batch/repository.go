package batch

import "context"

type Repository interface {
	Create(ctx context.Context, in CreateInput) (Batch, error)
	List(ctx context.Context, filter ListFilter) ([]Batch, error)
	Get(ctx context.Context, id int) (Batch, error)
	Update(ctx context.Context, id int, in UpdateInput) (Batch, error)
	Delete(ctx context.Context, id int) error
	FindByIdentifiers(ctx context.Context, makeshopID, kakakuID string) (Batch, error)
}
