package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// TokenService issues and verifies HS256-signed JWTs embedding the user id
// and role. Tokens are the sole session credential; nothing is persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

func NewTokenService(secret string, ttl time.Duration, logger zerolog.Logger) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, logger: logger}
}

// Issue produces a signed token for the user. Pure function of secret,
// payload and clock.
func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// All failures collapse to domain.ErrInvalidToken; the real cause is only
// logged, never surfaced, so expired and forged tokens are indistinguishable
// to clients.
func (s *TokenService) Verify(token string) (string, string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		s.logger.Debug().Err(err).Msg("token rejected")
		return "", "", domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return "", "", domain.ErrInvalidToken
	}

	return userID, role, nil
}
