package domain

import "time"

// Role is reference data managed independently of users. A user's role
// association is fixed at registration time and re-resolved at login time so
// token claims never carry a stale role name.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// User models an identity managed by the service.
type User struct {
	ID             string    `json:"id"`
	NumberDocument string    `json:"number_document"`
	Name           string    `json:"name"`
	LastName       string    `json:"last_name"`
	BirthDate      time.Time `json:"birth_date,omitempty"`
	Address        string    `json:"address,omitempty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	BaseSalary     float64   `json:"base_salary"`
	PasswordHash   string    `json:"-"`
	Role           *Role     `json:"role,omitempty"`
}

// RoleID returns the identifier of the associated role, or zero when no role
// is assigned. A stored user may carry only the identifier; the full record
// must be resolved through the role repository before issuing claims.
func (u *User) RoleID() int64 {
	if u.Role == nil {
		return 0
	}
	return u.Role.ID
}

// AuthToken is a signed access token plus its absolute expiry. Created only
// by the token signer and never mutated afterwards.
type AuthToken struct {
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}
