package ports

import (
	"context"

	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
//
// Read methods exclude the password hash unless the method name says
// otherwise; credential checks must use the WithPassword variants.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDWithPassword(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, fullName, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateStatus(ctx context.Context, id, status string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
