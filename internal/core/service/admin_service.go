package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/purplemerit/user-management-system/internal/core/domain"
	"github.com/purplemerit/user-management-system/internal/core/ports"
)

const defaultPageSize = 10

// AdminService implements the admin console: paginated listing and account
// activation state transitions.
type AdminService struct {
	repo     ports.UserRepository
	pageSize int
	logger   zerolog.Logger
}

func NewAdminService(repo ports.UserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, pageSize: defaultPageSize, logger: logger}
}

// ListUsers returns one page of users. page values below 1 are normalized to
// 1; pages beyond the last yield an empty list.
func (s *AdminService) ListUsers(ctx context.Context, page int) (*ports.UserPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * s.pageSize
	users, err := s.repo.List(ctx, offset, s.pageSize)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}

	pages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))

	return &ports.UserPage{
		Users: users,
		Pagination: ports.Pagination{
			Page:  page,
			Limit: s.pageSize,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// Activate sets the target account to active. Any admin may activate any
// account, including their own.
func (s *AdminService) Activate(ctx context.Context, targetID string) (*domain.User, error) {
	user, err := s.repo.UpdateStatus(ctx, targetID, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Msg("user activated")
	return user, nil
}

// Deactivate sets the target account to inactive. Admins cannot deactivate
// themselves; the guard runs before the target lookup so a self call fails
// with 400 even if the id were absent.
func (s *AdminService) Deactivate(ctx context.Context, actorID, targetID string) (*domain.User, error) {
	if actorID == targetID {
		return nil, domain.ErrSelfDeactivation
	}

	user, err := s.repo.UpdateStatus(ctx, targetID, domain.StatusInactive)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Str("actor_id", actorID).Msg("user deactivated")
	return user, nil
}
