package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const (
	tokenLength   = 64
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type Servicer interface {
	Login(ctx context.Context, loginID, password string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Provision(ctx context.Context, loginID, password string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
	}
}

// Login checks the credentials and issues a fresh token, overwriting any
// previously issued one. Unknown login and wrong password both come back as
// ErrInvalidAuth so callers cannot enumerate users.
func (s *Service) Login(ctx context.Context, loginID, password string) (string, error) {
	u, err := s.repo.FindByLoginID(ctx, loginID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to find user", "login_id", loginID, "error", err)
		}
		return "", ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", ErrInvalidAuth
	}

	token, err := generateToken(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := s.repo.UpdateToken(ctx, loginID, token); err != nil {
		s.log.Error("failed to store token", "login_id", loginID, "error", err)
		return "", fmt.Errorf("store token: %w", err)
	}

	s.log.Info("user logged in", "login_id", loginID)
	return token, nil
}

// Validate resolves a bearer token to the login id that owns it. A token that
// was never issued and a token superseded by a newer login look the same.
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidAuth
	}

	u, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return "", ErrInvalidAuth
	}

	return u.LoginID, nil
}

// Provision creates or updates an admin user with a bcrypt password hash.
func (s *Service) Provision(ctx context.Context, loginID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Upsert(ctx, loginID, string(hash))
}

func generateToken(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
