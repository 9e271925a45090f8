package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elearn-api/internal/domain"
)

type Service interface {
	// Refresh mints a new access token from a live refresh token.
	Refresh(ctx context.Context, refreshToken string) (access string, err error)
	// Revoke blacklists the refresh token permanently. Revocation is never
	// undone: a revoked token stays invalid past its natural expiry.
	Revoke(ctx context.Context, refreshToken string) error
}

type sessionStore interface {
	GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	Revoke(ctx context.Context, sessionID string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type jwtSigner interface {
	Sign(userID, username, role, sessionID string) (string, error)
}

type service struct {
	sessionRepo sessionStore
	userRepo    userStore
	jwtProvider jwtSigner
}

func NewService(sessionRepo sessionStore, userRepo userStore, jwtProvider jwtSigner) Service {
	return &service{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		jwtProvider: jwtProvider,
	}
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", fmt.Errorf("refresh token required: %w", domain.ErrBadRequest)
	}
	sess, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("unknown refresh token: %w", domain.ErrUnauthorized)
		}
		return "", err
	}
	if sess.Revoked {
		return "", fmt.Errorf("refresh token revoked: %w", domain.ErrUnauthorized)
	}
	if sess.RefreshExpiresAt < time.Now().Unix() {
		return "", fmt.Errorf("refresh token expired: %w", domain.ErrUnauthorized)
	}
	u, err := s.userRepo.Get(ctx, sess.UserID)
	if err != nil {
		return "", fmt.Errorf("session owner missing: %w", domain.ErrUnauthorized)
	}
	return s.jwtProvider.Sign(u.UserID, u.Username, u.Role, sess.SessionID)
}

func (s *service) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return fmt.Errorf("refresh token required: %w", domain.ErrBadRequest)
	}
	sess, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown refresh token: %w", domain.ErrBadRequest)
		}
		return err
	}
	if sess.Revoked {
		return fmt.Errorf("refresh token already revoked: %w", domain.ErrBadRequest)
	}
	return s.sessionRepo.Revoke(ctx, sess.SessionID)
}
