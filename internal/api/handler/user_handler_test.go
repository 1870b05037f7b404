package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/user-management-system/internal/api/middleware"
	"github.com/purplemerit/user-management-system/internal/core/domain"
)

func TestUserHandler_UpdateProfile(t *testing.T) {
	me := &domain.User{ID: "id-1", FullName: "Alice Example", Email: "alice@example.com", Status: domain.StatusActive}
	stub := &stubAccountService{
		updateProfileFn: func(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
			if userID != "id-1" || fullName != "Alice Renamed" || email != "renamed@example.com" {
				t.Fatalf("unexpected args: %s %s %s", userID, fullName, email)
			}
			return &domain.User{ID: userID, FullName: fullName, Email: email}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/users/me",
		`{"fullName":"Alice Renamed","email":"renamed@example.com"}`)
	c.Set(middleware.UserContextKey, me)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Profile updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_UpdateProfile_Validation(t *testing.T) {
	me := &domain.User{ID: "id-1", Status: domain.StatusActive}
	h := NewUserHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/users/me",
		`{"fullName":"Al","email":"not-an-email"}`)
	c.Set(middleware.UserContextKey, me)

	err := h.UpdateProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_UpdateProfile_EmailTaken(t *testing.T) {
	me := &domain.User{ID: "id-1", Status: domain.StatusActive}
	stub := &stubAccountService{
		updateProfileFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrEmailInUse
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/users/me",
		`{"fullName":"Alice Example","email":"taken@example.com"}`)
	c.Set(middleware.UserContextKey, me)

	if err := h.UpdateProfile(c); !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse to propagate, got %v", err)
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	me := &domain.User{ID: "id-1", Status: domain.StatusActive}
	stub := &stubAccountService{
		changePasswordFn: func(ctx context.Context, userID, currentPassword, newPassword string) error {
			if userID != "id-1" || currentPassword != "Passw0rd1" || newPassword != "NewPassw0rd1" {
				t.Fatalf("unexpected args: %s %s %s", userID, currentPassword, newPassword)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/users/me/password",
		`{"currentPassword":"Passw0rd1","newPassword":"NewPassw0rd1"}`)
	c.Set(middleware.UserContextKey, me)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Password updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_ChangePassword_WeakNewPassword(t *testing.T) {
	me := &domain.User{ID: "id-1", Status: domain.StatusActive}
	h := NewUserHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/users/me/password",
		`{"currentPassword":"Passw0rd1","newPassword":"short"}`)
	c.Set(middleware.UserContextKey, me)

	err := h.ChangePassword(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_ChangePassword_WrongCurrent(t *testing.T) {
	me := &domain.User{ID: "id-1", Status: domain.StatusActive}
	stub := &stubAccountService{
		changePasswordFn: func(context.Context, string, string, string) error {
			return domain.ErrWrongPassword
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/users/me/password",
		`{"currentPassword":"WrongPass1","newPassword":"NewPassw0rd1"}`)
	c.Set(middleware.UserContextKey, me)

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword to propagate, got %v", err)
	}
}
