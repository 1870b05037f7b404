package ports

import (
	"context"

	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// AccountService covers self-service account operations.
type AccountService interface {
	// Signup registers a new user with role "user" and active status and
	// returns a freshly issued token. The created user is not returned;
	// clients fetch their identity through GetMe.
	Signup(ctx context.Context, fullName, email, password string) (string, error)

	// Login checks credentials, records the login time and returns a token.
	Login(ctx context.Context, email, password string) (string, error)

	GetMe(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, email string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
