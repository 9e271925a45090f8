package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	args := m.Called(ctx, refreshToken)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) Revoke(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockJWTSigner struct{ mock.Mock }

func (m *mockJWTSigner) Sign(userID, username, role, sessionID string) (string, error) {
	args := m.Called(userID, username, role, sessionID)
	return args.String(0), args.Error(1)
}

func liveSession() *domain.Session {
	return &domain.Session{
		SessionID:        "sess-1",
		UserID:           "user-1",
		RefreshToken:     "tok-live",
		RefreshExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}
}

func TestRefresh_MissingToken(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Refresh(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestRefresh_UnknownToken(t *testing.T) {
	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-unknown").Return(nil, domain.ErrNotFound)

	svc := NewService(ss, nil, nil)
	_, err := svc.Refresh(context.Background(), "tok-unknown")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestRefresh_RevokedToken(t *testing.T) {
	sess := liveSession()
	sess.Revoked = true

	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-live").Return(sess, nil)

	svc := NewService(ss, nil, nil)
	_, err := svc.Refresh(context.Background(), "tok-live")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestRefresh_ExpiredToken(t *testing.T) {
	sess := liveSession()
	sess.RefreshExpiresAt = time.Now().Add(-time.Minute).Unix()

	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-live").Return(sess, nil)

	svc := NewService(ss, nil, nil)
	_, err := svc.Refresh(context.Background(), "tok-live")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestRefresh_Success(t *testing.T) {
	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-live").Return(liveSession(), nil)

	us := &mockUserStore{}
	us.On("Get", mock.Anything, "user-1").Return(&domain.User{
		UserID:   "user-1",
		Username: "09120000000",
		Role:     domain.RoleStudent,
	}, nil)

	jwt := &mockJWTSigner{}
	jwt.On("Sign", "user-1", "09120000000", domain.RoleStudent, "sess-1").Return("new-access", nil)

	svc := NewService(ss, us, jwt)
	access, err := svc.Refresh(context.Background(), "tok-live")

	require.NoError(t, err)
	assert.Equal(t, "new-access", access)
}

func TestRevoke_MissingToken(t *testing.T) {
	svc := NewService(nil, nil, nil)
	err := svc.Revoke(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestRevoke_UnknownToken(t *testing.T) {
	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-unknown").Return(nil, domain.ErrNotFound)

	svc := NewService(ss, nil, nil)
	err := svc.Revoke(context.Background(), "tok-unknown")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestRevoke_AlreadyRevoked(t *testing.T) {
	sess := liveSession()
	sess.Revoked = true

	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-live").Return(sess, nil)

	svc := NewService(ss, nil, nil)
	err := svc.Revoke(context.Background(), "tok-live")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	ss.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestRevoke_ThenRefreshFails(t *testing.T) {
	sess := liveSession()

	ss := &mockSessionStore{}
	ss.On("GetByRefreshToken", mock.Anything, "tok-live").Return(sess, nil)
	ss.On("Revoke", mock.Anything, "sess-1").
		Run(func(mock.Arguments) { sess.Revoked = true }).
		Return(nil)

	svc := NewService(ss, nil, nil)
	require.NoError(t, svc.Revoke(context.Background(), "tok-live"))

	// The session is still well inside its natural lifetime, but the
	// revoke is one-way.
	_, err := svc.Refresh(context.Background(), "tok-live")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
