package ports

import (
	"context"

	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// Pagination describes the page window returned by a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// UserPage is one page of the user listing.
type UserPage struct {
	Users      []*domain.User `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// AdminService covers the admin console operations.
type AdminService interface {
	// ListUsers returns the requested page. Pages out of range yield an
	// empty list, not an error.
	ListUsers(ctx context.Context, page int) (*UserPage, error)

	// Activate sets the target's status to active and returns the updated user.
	Activate(ctx context.Context, targetID string) (*domain.User, error)

	// Deactivate sets the target's status to inactive. Acting on oneself is
	// rejected with domain.ErrSelfDeactivation.
	Deactivate(ctx context.Context, actorID, targetID string) (*domain.User, error)
}
