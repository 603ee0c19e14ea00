package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
)

// --- Collaborator stubs with call counters ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email

	findByEmailCalls   int
	existsByEmailCalls int
	saveCalls          int

	existsByEmail bool
	savedUser     *domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.findByEmailCalls++
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByDocument(_ context.Context, doc string) (*domain.User, error) {
	for _, u := range r.users {
		if u.NumberDocument == doc {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	r.existsByEmailCalls++
	return r.existsByEmail, nil
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) (*domain.User, error) {
	r.saveCalls++
	clone := *u
	clone.ID = "generated-id"
	r.savedUser = &clone
	saved := clone
	return &saved, nil
}

type stubRoleRepo struct {
	roles         map[int64]*domain.Role
	findByIDCalls int
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	r.findByIDCalls++
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

type stubHasher struct {
	hashCalls   int
	verifyCalls int
	verifyOK    bool
}

func (h *stubHasher) Hash(_ context.Context, raw string) (string, error) {
	h.hashCalls++
	return "hashed:" + raw, nil
}

func (h *stubHasher) Verify(_ context.Context, _, _ string) (bool, error) {
	h.verifyCalls++
	return h.verifyOK, nil
}

type stubTokenProvider struct {
	issueCalls int
	issuedFor  *domain.User
}

func (p *stubTokenProvider) Issue(u *domain.User) (*domain.AuthToken, error) {
	p.issueCalls++
	clone := *u
	p.issuedFor = &clone
	return &domain.AuthToken{Token: "signed-token"}, nil
}

type fixture struct {
	users  *stubUserRepo
	roles  *stubRoleRepo
	hasher *stubHasher
	tokens *stubTokenProvider
	svc    *AuthService
}

func newFixture() *fixture {
	f := &fixture{
		users:  newStubUserRepo(),
		roles:  &stubRoleRepo{roles: make(map[int64]*domain.Role)},
		hasher: &stubHasher{verifyOK: true},
		tokens: &stubTokenProvider{},
	}
	f.svc = NewAuthService(f.users, f.roles, f.hasher, f.tokens, zerolog.Nop())
	return f
}

// --- Login ---

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Login(context.Background(), "ghost@test.com", "123456")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if f.hasher.verifyCalls != 0 || f.roles.findByIDCalls != 0 || f.tokens.issueCalls != 0 {
		t.Fatalf("no collaborator beyond the lookup may run: verify=%d roles=%d issue=%d",
			f.hasher.verifyCalls, f.roles.findByIDCalls, f.tokens.issueCalls)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newFixture()
	f.users.users["user@test.com"] = &domain.User{
		ID: "u-1", Email: "user@test.com", PasswordHash: "hashed:123456",
		Role: &domain.Role{ID: 10},
	}
	f.hasher.verifyOK = false

	_, err := f.svc.Login(context.Background(), "user@test.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if f.hasher.verifyCalls != 1 {
		t.Fatalf("expected exactly one verify call, got %d", f.hasher.verifyCalls)
	}
	if f.roles.findByIDCalls != 0 || f.tokens.issueCalls != 0 {
		t.Fatalf("role resolution and signing must not run after a failed verify")
	}
}

func TestAuthService_Login_SameErrorForBothFactors(t *testing.T) {
	f := newFixture()
	f.users.users["user@test.com"] = &domain.User{
		ID: "u-1", Email: "user@test.com", PasswordHash: "hashed:123456",
		Role: &domain.Role{ID: 10},
	}
	f.hasher.verifyOK = false

	_, wrongPass := f.svc.Login(context.Background(), "user@test.com", "wrong")
	_, unknown := f.svc.Login(context.Background(), "ghost@test.com", "wrong")
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("messages must not reveal which factor failed: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_Login_MissingRole(t *testing.T) {
	f := newFixture()
	f.users.users["user@test.com"] = &domain.User{
		ID: "u-1", Email: "user@test.com", PasswordHash: "hashed:123456",
	}

	_, err := f.svc.Login(context.Background(), "user@test.com", "123456")
	if !errors.Is(err, domain.ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole, got %v", err)
	}
	if f.roles.findByIDCalls != 0 {
		t.Fatalf("role repository must not be invoked for a roleless user")
	}
}

func TestAuthService_Login_RoleNotFound(t *testing.T) {
	f := newFixture()
	f.users.users["user@test.com"] = &domain.User{
		ID: "u-1", Email: "user@test.com", PasswordHash: "hashed:123456",
		Role: &domain.Role{ID: 99},
	}

	_, err := f.svc.Login(context.Background(), "user@test.com", "123456")
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if f.tokens.issueCalls != 0 {
		t.Fatalf("signer must not run when the role cannot be resolved")
	}
}

func TestAuthService_Login_FreshRoleInClaims(t *testing.T) {
	f := newFixture()
	// The stored user carries a stale role name; the directory has the
	// current one. The signed identity must use the fresh record.
	f.users.users["user@test.com"] = &domain.User{
		ID: "u-1", Email: "user@test.com", PasswordHash: "hashed:123456",
		Role: &domain.Role{ID: 10, Name: "STALE"},
	}
	f.roles.roles[10] = &domain.Role{ID: 10, Name: "FULL"}

	tok, err := f.svc.Login(context.Background(), "user@test.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok.Token != "signed-token" {
		t.Fatalf("unexpected token: %q", tok.Token)
	}
	if f.tokens.issuedFor == nil || f.tokens.issuedFor.Role == nil {
		t.Fatalf("signer did not receive a role-bearing user")
	}
	if f.tokens.issuedFor.Role.Name != "FULL" {
		t.Fatalf("expected freshly resolved role FULL, got %q", f.tokens.issuedFor.Role.Name)
	}
	if f.roles.findByIDCalls != 1 {
		t.Fatalf("expected one role resolution, got %d", f.roles.findByIDCalls)
	}
}

// --- Register ---

func candidate() *domain.User {
	return &domain.User{
		NumberDocument: "12345678",
		Name:           "Juan",
		LastName:       "Vela",
		Email:          "a@b.com",
		BaseSalary:     2500000,
		Role:           &domain.Role{ID: 1},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newFixture()
	f.roles.roles[1] = &domain.Role{ID: 1, Name: "ADMIN", Description: "Administrator"}

	saved, err := f.svc.Register(context.Background(), candidate(), "Secret#123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if saved.PasswordHash != "hashed:Secret#123" {
		t.Fatalf("expected hashed password stored, got %q", saved.PasswordHash)
	}
	if saved.Role == nil || saved.Role.Name != "ADMIN" {
		t.Fatalf("persisted user must carry the full resolved role, got %+v", saved.Role)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id on persisted user")
	}
	if f.users.savedUser.PasswordHash != "hashed:Secret#123" {
		t.Fatalf("repository received wrong hash: %q", f.users.savedUser.PasswordHash)
	}
}

func TestAuthService_Register_RoleNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Register(context.Background(), candidate(), "Secret#123")
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if f.hasher.hashCalls != 0 {
		t.Fatalf("hasher must not run when the role does not resolve")
	}
	if f.users.existsByEmailCalls != 0 || f.users.saveCalls != 0 {
		t.Fatalf("user repository must not be touched when the role does not resolve")
	}
}

func TestAuthService_Register_EmailAlreadyInUse(t *testing.T) {
	f := newFixture()
	f.roles.roles[1] = &domain.Role{ID: 1, Name: "ADMIN"}
	f.users.existsByEmail = true

	_, err := f.svc.Register(context.Background(), candidate(), "Secret#123")
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	// Ordering contract: the hash is computed even for a rejected duplicate.
	if f.hasher.hashCalls != 1 {
		t.Fatalf("expected one hash call before the existence check, got %d", f.hasher.hashCalls)
	}
	if f.users.saveCalls != 0 {
		t.Fatalf("save must never run for a duplicate email")
	}
}

// --- GetByDocument ---

func TestUserService_GetByDocument(t *testing.T) {
	users := newStubUserRepo()
	users.users["a@b.com"] = &domain.User{ID: "u-1", NumberDocument: "12345678", Email: "a@b.com"}
	svc := NewUserService(users, zerolog.Nop())

	u, err := svc.GetByDocument(context.Background(), "12345678")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if u.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.GetByDocument(context.Background(), "00000000"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
