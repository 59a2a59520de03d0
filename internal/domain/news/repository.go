package news

import "context"

type Repository interface {
	List(ctx context.Context) ([]News, error)
	Create(ctx context.Context, in Input) (News, error)
	Update(ctx context.Context, id int, in Input) (News, error)
	Delete(ctx context.Context, id int) error
}
