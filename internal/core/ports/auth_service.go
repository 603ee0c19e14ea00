package ports

import (
	"context"

	"github.com/crediya/auth-service/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, rawPassword string) (*domain.AuthToken, error)
	Register(ctx context.Context, candidate *domain.User, rawPassword string) (*domain.User, error)
}

type UserService interface {
	GetByDocument(ctx context.Context, numberDocument string) (*domain.User, error)
}
