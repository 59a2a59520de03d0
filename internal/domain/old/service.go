package old

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

const DefaultLimit = 1000

type Servicer interface {
	Create(ctx context.Context, in CreateInput) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	Get(ctx context.Context, id int) (Record, error)
	Update(ctx context.Context, id int, in UpdateInput) (Record, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "old_service"),
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	_, err := s.repo.FindByIdentifiers(ctx, in.MakeshopIdentifier, in.KakakuProductID)
	if err == nil {
		return Record{}, ErrConflict
	}
	if !errors.Is(err, ErrNotFound) {
		return Record{}, fmt.Errorf("check identifier pair: %w", err)
	}

	rec, err := s.repo.Create(ctx, in)
	if err != nil {
		return Record{}, err
	}

	s.log.Info("old record created", "old_id", rec.ID, "makeshop_identifier", rec.MakeshopIdentifier)
	return rec, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultLimit {
		filter.Limit = DefaultLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int) (Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (Record, error) {
	rec, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return Record{}, err
	}

	s.log.Info("old record updated", "old_id", id)
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("old record deleted", "old_id", id)
	return nil
}
