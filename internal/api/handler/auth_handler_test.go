package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/user-management-system/internal/api/middleware"
	"github.com/purplemerit/user-management-system/internal/core/domain"
)

type stubAccountService struct {
	signupFn         func(ctx context.Context, fullName, email, password string) (string, error)
	loginFn          func(ctx context.Context, email, password string) (string, error)
	getMeFn          func(ctx context.Context, userID string) (*domain.User, error)
	updateProfileFn  func(ctx context.Context, userID, fullName, email string) (*domain.User, error)
	changePasswordFn func(ctx context.Context, userID, currentPassword, newPassword string) error
}

func (s *stubAccountService) Signup(ctx context.Context, fullName, email, password string) (string, error) {
	return s.signupFn(ctx, fullName, email, password)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountService) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	return s.getMeFn(ctx, userID)
}

func (s *stubAccountService) UpdateProfile(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, fullName, email)
}

func (s *stubAccountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, fullName, email, password string) (string, error) {
			if fullName != "Alice Example" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", fullName, email)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Alice Example","email":"alice@example.com","password":"Passw0rd1"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	data, _ := resp["data"].(map[string]any)
	if data["token"] != "signed-token" {
		t.Fatalf("expected token in data, got %+v", data)
	}
}

func TestAuthHandler_Signup_WeakPassword(t *testing.T) {
	stub := &stubAccountService{
		signupFn: func(context.Context, string, string, string) (string, error) {
			t.Fatalf("service should not be reached")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Alice Example","email":"alice@example.com","password":"weakpass"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	stub := &stubAccountService{
		signupFn: func(context.Context, string, string, string) (string, error) {
			return "", domain.ErrEmailRegistered
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Alice Example","email":"alice@example.com","password":"Passw0rd1"}`)

	if err := h.Signup(c); !errors.Is(err, domain.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"Passw0rd1"}`)

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
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"Passw0rd1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged out successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Me(t *testing.T) {
	me := &domain.User{ID: "id-1", FullName: "Alice Example", Email: "alice@example.com", Role: domain.RoleUser, Status: domain.StatusActive}
	stub := &stubAccountService{
		getMeFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "id-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return me, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.UserContextKey, me)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	if data["fullName"] != "Alice Example" || data["role"] != "user" || data["status"] != "active" {
		t.Fatalf("unexpected user payload: %+v", data)
	}
	if _, leaked := data["passwordHash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Me_NoContextUser(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
