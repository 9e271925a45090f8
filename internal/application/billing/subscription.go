package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type SubscriptionService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Subscription, string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
	Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	Create(ctx context.Context, input domain.SubscriptionInput) (*domain.Subscription, error)
	Replace(ctx context.Context, subscriptionID string, input domain.SubscriptionInput) (*domain.Subscription, error)
	Patch(ctx context.Context, subscriptionID string, req domain.UpdateSubscriptionRequest) (*domain.Subscription, error)
	Delete(ctx context.Context, subscriptionID string) error
}

type subscriptionStore interface {
	Put(ctx context.Context, s *domain.Subscription) error
	Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
	Update(ctx context.Context, subscriptionID string, updates map[string]interface{}) error
	Delete(ctx context.Context, subscriptionID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Subscription, string, error)
}

type courseGetter interface {
	Get(ctx context.Context, courseID string) (*domain.Course, error)
}

type userGetter interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type subscriptionService struct {
	repo    subscriptionStore
	courses courseGetter
	users   userGetter
	now     func() time.Time
}

func NewSubscriptionService(repo subscriptionStore, courses courseGetter, users userGetter) SubscriptionService {
	return &subscriptionService{repo: repo, courses: courses, users: users, now: time.Now}
}

func (s *subscriptionService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Subscription, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *subscriptionService) ListByUser(ctx context.Context, userID string) ([]domain.Subscription, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *subscriptionService) Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	return s.repo.Get(ctx, subscriptionID)
}

func (s *subscriptionService) Create(ctx context.Context, input domain.SubscriptionInput) (*domain.Subscription, error) {
	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}
	sub := &domain.Subscription{
		SubscriptionID: id.New(),
		UserID:         input.UserID,
		CourseID:       input.CourseID,
		PaymentType:    input.PaymentType,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Put(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) Replace(ctx context.Context, subscriptionID string, input domain.SubscriptionInput) (*domain.Subscription, error) {
	existing, err := s.repo.Get(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}
	sub := &domain.Subscription{
		SubscriptionID: subscriptionID,
		UserID:         input.UserID,
		CourseID:       input.CourseID,
		PaymentType:    input.PaymentType,
		CreatedAt:      existing.CreatedAt,
	}
	if err := s.repo.Put(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) Patch(ctx context.Context, subscriptionID string, req domain.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	if _, err := s.repo.Get(ctx, subscriptionID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.PaymentType != nil {
		updates["payment_type"] = *req.PaymentType
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, subscriptionID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, subscriptionID)
}

func (s *subscriptionService) Delete(ctx context.Context, subscriptionID string) error {
	if _, err := s.repo.Get(ctx, subscriptionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, subscriptionID)
}

func (s *subscriptionService) checkRefs(ctx context.Context, input domain.SubscriptionInput) error {
	if _, err := s.users.Get(ctx, input.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %s: %w", input.UserID, domain.ErrBadRequest)
		}
		return err
	}
	if _, err := s.courses.Get(ctx, input.CourseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("course %s: %w", input.CourseID, domain.ErrBadRequest)
		}
		return err
	}
	return nil
}
