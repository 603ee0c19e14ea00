package token

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crediya/auth-service/internal/core/domain"
)

// Signer mints RS256-signed access tokens. It is immutable after
// construction and safe for concurrent use.
type Signer struct {
	key    *rsa.PrivateKey
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(key *rsa.PrivateKey, issuer string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Signer{key: key, issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue builds and signs the claim set for a verified identity. The login
// orchestrator guarantees the role is resolved before calling; a roleless
// user here is a contract violation and fails fast.
func (s *Signer) Issue(u *domain.User) (*domain.AuthToken, error) {
	if u.Role == nil || u.Role.Name == "" {
		return nil, domain.ErrMissingRole
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)

	claims := &AccessClaims{
		Email:          u.Email,
		NumberDocument: u.NumberDocument,
		Roles:          []string{u.Role.Name},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.AuthToken{Token: signed, ExpiresAt: exp}, nil
}
