package news

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]News, error)
	Create(ctx context.Context, in Input) (News, error)
	Update(ctx context.Context, id int, in Input) (News, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "news_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]News, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in Input) (News, error) {
	n, err := s.repo.Create(ctx, in)
	if err != nil {
		return News{}, err
	}

	s.log.Info("news created", "news_id", n.ID, "title", n.Title)
	return n, nil
}

func (s *Service) Update(ctx context.Context, id int, in Input) (News, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("news deleted", "news_id", id)
	return nil
}
