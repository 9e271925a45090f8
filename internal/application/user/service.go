package user

import (
	"context"

	"github.com/elearn-api/internal/domain"
)

// Service exposes admin reads over accounts plus role promotion. There is no
// Create or Delete here: accounts come into existence through the OTP flow.
type Service interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.User, string, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	Patch(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.User, string, error)
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.User, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) Patch(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error) {
	if _, err := s.repo.Get(ctx, userID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, userID)
}
