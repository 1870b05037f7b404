package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/purplemerit/user-management-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrEmailRegistered, http.StatusBadRequest, "Email already registered"},
		{domain.ErrEmailInUse, http.StatusBadRequest, "Email already in use"},
		{domain.ErrWrongPassword, http.StatusBadRequest, "Incorrect current password"},
		{domain.ErrSelfDeactivation, http.StatusBadRequest, "Admin cannot deactivate themselves"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
		{domain.ErrAccountInactive, http.StatusForbidden, "Account is inactive"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
	}
	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.wantCode {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.wantCode, rec.Code)
		}
		if body["success"] != false {
			t.Fatalf("%v: expected success:false, got %+v", tc.err, body)
		}
		if body["message"] != tc.wantMsg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.wantMsg, body["message"])
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["message"] != "Not authorized to access this route" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo blew up"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "Server Error" {
		t.Fatalf("internal detail leaked: %v", body["message"])
	}
}
