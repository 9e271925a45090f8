package billing

import (
	"context"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type ImmediateService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.ImmediatePayment, string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ImmediatePayment, error)
	Get(ctx context.Context, paymentID string) (*domain.ImmediatePayment, error)
	Create(ctx context.Context, input domain.ImmediatePaymentInput) (*domain.ImmediatePayment, error)
	Replace(ctx context.Context, paymentID string, input domain.ImmediatePaymentInput) (*domain.ImmediatePayment, error)
	Patch(ctx context.Context, paymentID string, req domain.UpdateImmediatePaymentRequest) (*domain.ImmediatePayment, error)
	Delete(ctx context.Context, paymentID string) error
}

type immediateStore interface {
	Put(ctx context.Context, p *domain.ImmediatePayment) error
	Get(ctx context.Context, paymentID string) (*domain.ImmediatePayment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ImmediatePayment, error)
	Update(ctx context.Context, paymentID string, updates map[string]interface{}) error
	Delete(ctx context.Context, paymentID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.ImmediatePayment, string, error)
}

type immediateService struct {
	repo immediateStore
	subs subscriptionGetter
	now  func() time.Time
}

func NewImmediateService(repo immediateStore, subs subscriptionGetter) ImmediateService {
	return &immediateService{repo: repo, subs: subs, now: time.Now}
}

func (s *immediateService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.ImmediatePayment, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *immediateService) ListByUser(ctx context.Context, userID string) ([]domain.ImmediatePayment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *immediateService) Get(ctx context.Context, paymentID string) (*domain.ImmediatePayment, error) {
	return s.repo.Get(ctx, paymentID)
}

func (s *immediateService) Create(ctx context.Context, input domain.ImmediatePaymentInput) (*domain.ImmediatePayment, error) {
	sub, err := lookupSubscription(ctx, s.subs, input.SubscriptionID)
	if err != nil {
		return nil, err
	}
	p := &domain.ImmediatePayment{
		PaymentID:      id.New(),
		SubscriptionID: input.SubscriptionID,
		UserID:         sub.UserID,
		Amount:         input.Amount,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *immediateService) Replace(ctx context.Context, paymentID string, input domain.ImmediatePaymentInput) (*domain.ImmediatePayment, error) {
	existing, err := s.repo.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	sub, err := lookupSubscription(ctx, s.subs, input.SubscriptionID)
	if err != nil {
		return nil, err
	}
	p := &domain.ImmediatePayment{
		PaymentID:      paymentID,
		SubscriptionID: input.SubscriptionID,
		UserID:         sub.UserID,
		Amount:         input.Amount,
		CreatedAt:      existing.CreatedAt,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *immediateService) Patch(ctx context.Context, paymentID string, req domain.UpdateImmediatePaymentRequest) (*domain.ImmediatePayment, error) {
	if _, err := s.repo.Get(ctx, paymentID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, paymentID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, paymentID)
}

func (s *immediateService) Delete(ctx context.Context, paymentID string) error {
	if _, err := s.repo.Get(ctx, paymentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, paymentID)
}
