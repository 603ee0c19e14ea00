package domain

import "errors"

// Sentinel errors form the failure taxonomy consumed by the API boundary.
// Services and adapters return exactly these causes; the HTTP error handler
// owns the exhaustive mapping to status codes.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals which factor failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingRole means authentication succeeded but the stored user has
	// no role identifier to authorize against.
	ErrMissingRole = errors.New("user has no role assigned")

	// ErrRoleNotFound means a referenced role identifier does not resolve.
	ErrRoleNotFound = errors.New("role does not exist")

	ErrEmailInUse   = errors.New("email already in use")
	ErrDuplicateKey = errors.New("duplicate key or unique constraint violated")
	ErrUserNotFound = errors.New("user not found")

	// Token failures are kept distinct: an expired token and a malformed or
	// badly signed one must produce different user-facing messages.
	ErrTokenMissing = errors.New("token not provided")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")

	ErrForbidden = errors.New("access forbidden")
)
