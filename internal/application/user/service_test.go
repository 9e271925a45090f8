package user

import (
	"context"
	"testing"

	"github.com/elearn-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}
func (m *mockUserStore) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.User, string, error) {
	args := m.Called(ctx, search, limit, cursor)
	return args.Get(0).([]domain.User), args.String(1), args.Error(2)
}

func TestUserList(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("ScanPage", mock.Anything, "0912", int32(20), "").
		Return([]domain.User{{UserID: "user-1", Username: "09120000000"}}, "next", nil)

	svc := NewService(repo)
	users, next, err := svc.List(context.Background(), "0912", 20, "")

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "next", next)
}

func TestUserPatch_PromotesRole(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", Role: domain.RoleStudent}, nil).Once()
	var updates map[string]interface{}
	repo.On("Update", mock.Anything, "user-1", mock.Anything).
		Run(func(args mock.Arguments) { updates = args.Get(2).(map[string]interface{}) }).
		Return(nil)
	repo.On("Get", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", Role: domain.RoleAdmin}, nil)

	svc := NewService(repo)
	role := domain.RoleAdmin
	updated, err := svc.Patch(context.Background(), "user-1", domain.UpdateUserRequest{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"role": domain.RoleAdmin}, updates)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
}

func TestUserPatch_UnknownUser(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(repo)
	role := domain.RoleAdmin
	_, err := svc.Patch(context.Background(), "missing", domain.UpdateUserRequest{Role: &role})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserPatch_EmptySkipsUpdate(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", Role: domain.RoleStudent}, nil)

	svc := NewService(repo)
	updated, err := svc.Patch(context.Background(), "user-1", domain.UpdateUserRequest{})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, updated.Role)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
