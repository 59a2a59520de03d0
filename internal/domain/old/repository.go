package old

import "context"

type Repository interface {
	Create(ctx context.Context, in CreateInput) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	Get(ctx context.Context, id int) (Record, error)
	Update(ctx context.Context, id int, in UpdateInput) (Record, error)
	Delete(ctx context.Context, id int) error
	FindByIdentifiers(ctx context.Context, makeshopID, kakakuID string) (Record, error)
}
