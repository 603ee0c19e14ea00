// Package token issues and verifies the RS256-signed access tokens used to
// gate protected routes. Signing uses the private key; verification needs
// only the public key, so verifiers can run in a separate trust boundary.
package token

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// authorityPrefix namespaces role names so they cannot collide with any
// non-role authority a policy might introduce later.
const authorityPrefix = "ROLE_"

// AccessClaims is the typed claim set carried by every access token.
type AccessClaims struct {
	Email          string   `json:"email"`
	NumberDocument string   `json:"numberDocument"`
	Roles          []string `json:"roles"`
	jwt.RegisteredClaims
}

// Authorities normalizes the roles claim into route-level authorities.
// An absent or empty claim yields no authorities, which is not an error:
// the caller is authenticated but can only reach routes without an
// authority requirement.
func (c *AccessClaims) Authorities() []string {
	if len(c.Roles) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, authorityPrefix+r)
	}
	return out
}

// Authority returns the canonical authority for a role name, for use in
// route policy tables.
func Authority(roleName string) string {
	return authorityPrefix + roleName
}
