package ports

import "context"

// PasswordHasher is the one-way hashing contract for passwords at rest.
// Implementations are CPU-bound, so both operations accept a context and may
// block until capacity is available or the caller gives up.
type PasswordHasher interface {
	Hash(ctx context.Context, raw string) (string, error)
	Verify(ctx context.Context, raw, hash string) (bool, error)
}
