package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

// AuthService implements the login and registration orchestrations.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenProvider
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, tokens ports.TokenProvider, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens, logger: logger}
}

// Login authenticates an email/password pair and mints an access token.
// Steps run strictly in order and short-circuit on the first failure:
// credential lookup, password verification, role-id presence, fresh role
// resolution, token signing. Unknown email and wrong password collapse to
// the same error so the response never reveals which factor failed.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*domain.AuthToken, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(ctx, rawPassword, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	roleID := user.RoleID()
	if roleID == 0 {
		return nil, domain.ErrMissingRole
	}

	// The stored user may carry a stale or partial role; claims are always
	// built from a freshly resolved record.
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	user.Role = role

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", role.Name).Msg("login succeeded")
	return token, nil
}

// Register resolves the candidate's role, hashes the raw password, and
// persists the user after an email uniqueness check. Role resolution failure
// short-circuits before any hashing or existence check. The hash is computed
// before the uniqueness check, so a rejected duplicate still pays the
// hashing cost.
func (s *AuthService) Register(ctx context.Context, candidate *domain.User, rawPassword string) (*domain.User, error) {
	role, err := s.roles.FindByID(ctx, candidate.RoleID())
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, rawPassword)
	if err != nil {
		return nil, err
	}

	toSave := *candidate
	toSave.Role = role
	toSave.PasswordHash = hash

	exists, err := s.users.ExistsByEmail(ctx, toSave.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailInUse
	}

	saved, err := s.users.Save(ctx, &toSave)
	if err != nil {
		return nil, err
	}
	// The persisted value must carry the full resolved role, not just its id.
	saved.Role = role

	s.logger.Info().Str("user_id", saved.ID).Str("email", saved.Email).Str("role", role.Name).Msg("user registered")
	return saved, nil
}
