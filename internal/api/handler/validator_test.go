package handler

import (
	"strings"
	"testing"
)

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Passw0rd", true},
		{"A1bcdefg", true},
		{"Sh0rt", false},    // too short
		{"passw0rd", false}, // no uppercase
		{"Password", false}, // no digit
		{"12345678", false}, // no uppercase
		{"", false},
		{"LongEnoughPassword1", true},
	}
	for _, tc := range cases {
		if got := strongPassword(tc.password); got != tc.ok {
			t.Fatalf("strongPassword(%q) = %v, want %v", tc.password, got, tc.ok)
		}
	}
}

func TestValidator_MessageAggregation(t *testing.T) {
	v := NewValidator()

	req := signupRequest{FullName: "Al", Email: "not-an-email", Password: "weak"}
	err := v.Validate(&req)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "fullname must be at least 3 characters") {
		t.Fatalf("missing fullName message: %q", msg)
	}
	if !strings.Contains(msg, "email must be a valid email") {
		t.Fatalf("missing email message: %q", msg)
	}
	if !strings.Contains(msg, "uppercase letter") {
		t.Fatalf("missing password message: %q", msg)
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email is required") || !strings.Contains(msg, "password is required") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestValidator_AcceptsValidSignup(t *testing.T) {
	v := NewValidator()

	req := signupRequest{FullName: "Alice Example", Email: "alice@example.com", Password: "Passw0rd1"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
