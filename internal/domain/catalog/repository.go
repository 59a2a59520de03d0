package catalog

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, in Input) (Category, error)
	UpdateCategory(ctx context.Context, id int, in Input) (Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListRepairTypes(ctx context.Context) ([]RepairType, error)
	CreateRepairType(ctx context.Context, in Input) (RepairType, error)
	UpdateRepairType(ctx context.Context, id int, in Input) (RepairType, error)
	DeleteRepairType(ctx context.Context, id int) error
}
