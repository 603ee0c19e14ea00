package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/core/domain"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, rawPassword string) (*domain.AuthToken, error)
	registerFn func(ctx context.Context, candidate *domain.User, rawPassword string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, rawPassword string) (*domain.AuthToken, error) {
	return s.loginFn(ctx, email, rawPassword)
}

func (s *stubAuthService) Register(ctx context.Context, candidate *domain.User, rawPassword string) (*domain.User, error) {
	return s.registerFn(ctx, candidate, rawPassword)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Date(2025, 9, 1, 13, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.AuthToken, error) {
			if email != "user@test.com" || password != "123456" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.AuthToken{Token: "signed-token", ExpiresAt: expires}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/login", `{"email":"user@test.com","password":"123456"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	data, _ := resp["data"].(map[string]any)
	if data["access_token"] != "signed-token" {
		t.Fatalf("unexpected token payload: %+v", data)
	}
	if int64(data["expires_at_epoch_seconds"].(float64)) != expires.Unix() {
		t.Fatalf("unexpected expiry payload: %+v", data)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthToken, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	for _, body := range []string{"not-json", `{"email":"nope","password":"x"}`, `{"password":"x"}`} {
		c, _ := newJSONContext(t, http.MethodPost, "/api/v1/login", body)
		err := h.Login(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_ServiceErrorPropagates(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthToken, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/login", `{"email":"user@test.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
