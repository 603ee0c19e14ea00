package ports

import "github.com/crediya/auth-service/internal/core/domain"

// TokenProvider mints signed access tokens for verified identities. The user
// must carry a fully resolved role; callers enforce that precondition.
type TokenProvider interface {
	Issue(user *domain.User) (*domain.AuthToken, error)
}
