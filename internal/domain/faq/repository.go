package faq

import "context"

type Repository interface {
	List(ctx context.Context) ([]FAQ, error)
	Create(ctx context.Context, in Input) (FAQ, error)
	Update(ctx context.Context, id int, in Input) (FAQ, error)
	Delete(ctx context.Context, id int) error
}
