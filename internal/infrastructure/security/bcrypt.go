// Package security adapts golang.org/x/crypto/bcrypt to the core's
// password-hasher port.
package security

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes and verifies passwords with bcrypt. Hashing is
// CPU-bound and comparatively expensive, so calls are funneled through a
// bounded slot pool: at most maxConcurrent hashes run at once and waiting
// callers honour context cancellation, keeping hashing from starving
// request handling.
type BcryptHasher struct {
	cost  int
	slots chan struct{}
}

// NewBcryptHasher builds a hasher with the given bcrypt cost. A cost outside
// the valid range falls back to bcrypt.DefaultCost; maxConcurrent <= 0 falls
// back to the number of CPUs.
func NewBcryptHasher(cost, maxConcurrent int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.NumCPU()
	}
	return &BcryptHasher{cost: cost, slots: make(chan struct{}, maxConcurrent)}
}

func (h *BcryptHasher) Hash(ctx context.Context, raw string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.release()

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether raw matches the stored hash. A mismatch is a clean
// false, not an error; only unreadable hashes surface as errors.
func (h *BcryptHasher) Verify(ctx context.Context, raw, hash string) (bool, error) {
	if err := h.acquire(ctx); err != nil {
		return false, err
	}
	defer h.release()

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt compare: %w", err)
}

func (h *BcryptHasher) acquire(ctx context.Context) error {
	select {
	case h.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *BcryptHasher) release() {
	<-h.slots
}
