package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// DefaultLimit bounds list pages when the caller sends no usable limit.
const DefaultLimit = 1000

type Servicer interface {
	Create(ctx context.Context, in CreateInput) (Batch, error)
	List(ctx context.Context, filter ListFilter) ([]Batch, error)
	Get(ctx context.Context, id int) (Batch, error)
	Update(ctx context.Context, id int, in UpdateInput) (Batch, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "batch_service"),
	}
}

// Create rejects a duplicate identifier pair with ErrConflict before
// inserting. The unique index on the pair backs this check under concurrency;
// the repository maps that violation to ErrConflict as well.
func (s *Service) Create(ctx context.Context, in CreateInput) (Batch, error) {
	_, err := s.repo.FindByIdentifiers(ctx, in.MakeshopIdentifier, in.KakakuProductID)
	if err == nil {
		return Batch{}, ErrConflict
	}
	if !errors.Is(err, ErrNotFound) {
		return Batch{}, fmt.Errorf("check identifier pair: %w", err)
	}

	b, err := s.repo.Create(ctx, in)
	if err != nil {
		return Batch{}, err
	}

	s.log.Info("batch created", "batch_id", b.ID, "makeshop_identifier", b.MakeshopIdentifier)
	return b, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Batch, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultLimit {
		filter.Limit = DefaultLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int) (Batch, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (Batch, error) {
	b, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return Batch{}, err
	}

	s.log.Info("batch updated", "batch_id", id)
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("batch deleted", "batch_id", id)
	return nil
}
