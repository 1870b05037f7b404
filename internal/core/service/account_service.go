package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/purplemerit/user-management-system/internal/core/domain"
	"github.com/purplemerit/user-management-system/internal/core/ports"
)

// AccountService implements signup, login and self-service profile management.
type AccountService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, tokens: tokens, logger: logger}
}

// Signup registers a new user and returns a token for it. Every signup
// creates a plain active user; roles are never assigned through this path.
func (s *AccountService) Signup(ctx context.Context, fullName, email, password string) (string, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrEmailRegistered
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return s.tokens.Issue(created.ID, created.Role)
}

// Login checks credentials and returns a token. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return "", domain.ErrAccountInactive
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return s.tokens.Issue(user.ID, user.Role)
}

// GetMe returns the user's own record, password hash excluded.
func (s *AccountService) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile changes full name and email. Moving to an email owned by a
// different user is rejected.
func (s *AccountService) UpdateProfile(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email != current.Email {
		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			return nil, domain.ErrEmailInUse
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	return s.repo.UpdateProfile(ctx, userID, fullName, email)
}

// ChangePassword replaces the stored hash after verifying the current password.
func (s *AccountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByIDWithPassword(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash))
}
