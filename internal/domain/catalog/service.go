package catalog

import (
	"context"

	"golang.org/x/exp/slog"
)

// Servicer covers both catalog levels; the admin UI manages them on one
// screen and the HTTP surface mounts them under one prefix.
type Servicer interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, in Input) (Category, error)
	UpdateCategory(ctx context.Context, id int, in Input) (Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListRepairTypes(ctx context.Context) ([]RepairType, error)
	CreateRepairType(ctx context.Context, in Input) (RepairType, error)
	UpdateRepairType(ctx context.Context, id int, in Input) (RepairType, error)
	DeleteRepairType(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "catalog_service"),
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, in Input) (Category, error) {
	c, err := s.repo.CreateCategory(ctx, in)
	if err != nil {
		return Category{}, err
	}

	s.log.Info("category created", "category_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int, in Input) (Category, error) {
	return s.repo.UpdateCategory(ctx, id, in)
}

// DeleteCategory removes the category; price rows referencing it go with it
// via the cascade on repair_prices.
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.log.Info("category deleted", "category_id", id)
	return nil
}

func (s *Service) ListRepairTypes(ctx context.Context) ([]RepairType, error) {
	return s.repo.ListRepairTypes(ctx)
}

func (s *Service) CreateRepairType(ctx context.Context, in Input) (RepairType, error) {
	rt, err := s.repo.CreateRepairType(ctx, in)
	if err != nil {
		return RepairType{}, err
	}

	s.log.Info("repair type created", "repair_type_id", rt.ID, "name", rt.Name)
	return rt, nil
}

func (s *Service) UpdateRepairType(ctx context.Context, id int, in Input) (RepairType, error) {
	return s.repo.UpdateRepairType(ctx, id, in)
}

func (s *Service) DeleteRepairType(ctx context.Context, id int) error {
	if err := s.repo.DeleteRepairType(ctx, id); err != nil {
		return err
	}

	s.log.Info("repair type deleted", "repair_type_id", id)
	return nil
}
