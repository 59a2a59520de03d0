package price

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"phonefix/internal/domain/catalog"
)

type Servicer interface {
	List(ctx context.Context, filter Filter) ([]Price, error)
	PriceList(ctx context.Context) (List, error)
	Upsert(ctx context.Context, in Input, id *int) (Price, error)
	Update(ctx context.Context, id int, in Input) (Price, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo    Repository
	catalog catalog.Repository
	log     *slog.Logger
}

func NewService(repo Repository, catalogRepo catalog.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogRepo,
		log:     log.With("component", "price_service"),
	}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Price, error) {
	return s.repo.List(ctx, filter)
}

// PriceList assembles the storefront payload: catalog levels plus every
// price row, each in its own defined order.
func (s *Service) PriceList(ctx context.Context) (List, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return List{}, fmt.Errorf("list categories: %w", err)
	}

	repairTypes, err := s.catalog.ListRepairTypes(ctx)
	if err != nil {
		return List{}, fmt.Errorf("list repair types: %w", err)
	}

	prices, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return List{}, fmt.Errorf("list prices: %w", err)
	}

	return List{
		Categories:  categories,
		RepairTypes: repairTypes,
		Prices:      prices,
	}, nil
}

// Upsert overwrites the row when an id is supplied and creates a new row
// otherwise. Unlike the PATCH entities this is always a full-field write.
func (s *Service) Upsert(ctx context.Context, in Input, id *int) (Price, error) {
	if id != nil {
		return s.Update(ctx, *id, in)
	}

	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return Price{}, err
	}

	s.log.Info("price created", "price_id", p.ID, "model_name", p.ModelName)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, in Input) (Price, error) {
	p, err := s.repo.Replace(ctx, id, in)
	if err != nil {
		return Price{}, err
	}

	s.log.Info("price updated", "price_id", id)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("price deleted", "price_id", id)
	return nil
}
