package ports

import (
	"context"

	"github.com/crediya/auth-service/internal/core/domain"
)

// UserRepository defines the persistence contract for identity records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByDocument(ctx context.Context, numberDocument string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
