package ports

import (
	"context"

	"github.com/crediya/auth-service/internal/core/domain"
)

// RoleRepository resolves role identifiers to full role records.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
}
