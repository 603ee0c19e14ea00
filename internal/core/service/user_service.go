package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

// UserService answers queries about persisted identities.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// GetByDocument looks up a user by unique document number.
func (s *UserService) GetByDocument(ctx context.Context, numberDocument string) (*domain.User, error) {
	user, err := s.users.FindByDocument(ctx, numberDocument)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("number_document", numberDocument).Msg("user found by document")
	return user, nil
}
