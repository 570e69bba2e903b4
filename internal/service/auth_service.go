package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/config"
	"github.com/spec-kit/edupulse/internal/events"
	"github.com/spec-kit/edupulse/internal/persistence"
	"github.com/spec-kit/edupulse/internal/repository"
	apperrors "github.com/spec-kit/edupulse/pkg/util"
)

// AuthService coordinates the login flow: verify password, issue token,
// emit the audit event, mark the advisory session counter.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	sessions   *persistence.Redis
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher, sessions *persistence.Redis) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		sessions:   sessions,
	}
}

// Login authenticates by email and password. Unknown email, wrong password
// and suspended accounts all produce the same unauthorized error so callers
// cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
		}
		return "", time.Time{}, err
	}
	if !user.IsActive || !auth.VerifyPassword(user.HashedPassword, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.Email, user.Role)
	if err != nil {
		return "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewActivityEvent(
			events.EventUserLoggedIn, user.ID, "LOGIN", "User logged in", clientIP(ctx)))
	}
	// best effort: losing the marker only skews the active-session stat
	_ = s.sessions.MarkSession(ctx, uuid.NewString(), user.Email, s.tokenMgr.TTL())

	return token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
