package user

import "context"

type Repository interface {
	FindByLoginID(ctx context.Context, loginID string) (User, error)
	FindByToken(ctx context.Context, token string) (User, error)
	UpdateToken(ctx context.Context, loginID, token string) error
	Upsert(ctx context.Context, loginID, passwordHash string) error
}
