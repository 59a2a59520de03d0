package faq

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]FAQ, error)
	Create(ctx context.Context, in Input) (FAQ, error)
	Update(ctx context.Context, id int, in Input) (FAQ, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "faq_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]FAQ, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in Input) (FAQ, error) {
	f, err := s.repo.Create(ctx, in)
	if err != nil {
		return FAQ{}, err
	}

	s.log.Info("faq created", "faq_id", f.ID, "title", f.Title)
	return f, nil
}

func (s *Service) Update(ctx context.Context, id int, in Input) (FAQ, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("faq deleted", "faq_id", id)
	return nil
}
