package token

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crediya/auth-service/internal/core/domain"
)

// Verifier validates incoming tokens against the public key. It holds no
// mutable state and is safe for concurrent use.
type Verifier struct {
	key *rsa.PublicKey
	now func() time.Time
}

func NewVerifier(key *rsa.PublicKey) *Verifier {
	return &Verifier{key: key, now: time.Now}
}

// Verify checks signature, expiry and not-before, returning the typed claim
// set. Failures collapse to exactly two causes: domain.ErrTokenExpired for a
// token past its expiry, domain.ErrTokenInvalid for everything else
// (malformed, wrong signature, wrong algorithm, not yet valid).
func (v *Verifier) Verify(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
