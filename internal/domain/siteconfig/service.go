package siteconfig

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context) (Config, error)
	Update(ctx context.Context, in Input) (Config, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "siteconfig_service"),
	}
}

func (s *Service) Get(ctx context.Context) (Config, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, in Input) (Config, error) {
	c, err := s.repo.Upsert(ctx, in)
	if err != nil {
		return Config{}, err
	}

	s.log.Info("site config updated")
	return c, nil
}
