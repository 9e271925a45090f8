package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type InstallmentService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.InstallmentPayment, string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.InstallmentPayment, error)
	ListBySubscription(ctx context.Context, subscriptionID string) ([]domain.InstallmentPayment, error)
	Get(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error)
	Create(ctx context.Context, input domain.InstallmentPaymentInput) (*domain.InstallmentPayment, error)
	Replace(ctx context.Context, paymentID string, input domain.InstallmentPaymentInput) (*domain.InstallmentPayment, error)
	Patch(ctx context.Context, paymentID string, req domain.UpdateInstallmentPaymentRequest) (*domain.InstallmentPayment, error)
	Delete(ctx context.Context, paymentID string) error
}

type installmentStore interface {
	Put(ctx context.Context, p *domain.InstallmentPayment) error
	Get(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.InstallmentPayment, error)
	ListBySubscription(ctx context.Context, subscriptionID string) ([]domain.InstallmentPayment, error)
	Update(ctx context.Context, paymentID string, updates map[string]interface{}) error
	Delete(ctx context.Context, paymentID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.InstallmentPayment, string, error)
}

type subscriptionGetter interface {
	Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
}

type installmentService struct {
	repo installmentStore
	subs subscriptionGetter
}

func NewInstallmentService(repo installmentStore, subs subscriptionGetter) InstallmentService {
	return &installmentService{repo: repo, subs: subs}
}

func (s *installmentService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.InstallmentPayment, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *installmentService) ListByUser(ctx context.Context, userID string) ([]domain.InstallmentPayment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *installmentService) ListBySubscription(ctx context.Context, subscriptionID string) ([]domain.InstallmentPayment, error) {
	if _, err := s.subs.Get(ctx, subscriptionID); err != nil {
		return nil, err
	}
	return s.repo.ListBySubscription(ctx, subscriptionID)
}

func (s *installmentService) Get(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error) {
	return s.repo.Get(ctx, paymentID)
}

func (s *installmentService) Create(ctx context.Context, input domain.InstallmentPaymentInput) (*domain.InstallmentPayment, error) {
	sub, err := lookupSubscription(ctx, s.subs, input.SubscriptionID)
	if err != nil {
		return nil, err
	}
	p := installmentFromInput(id.New(), sub.UserID, input)
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *installmentService) Replace(ctx context.Context, paymentID string, input domain.InstallmentPaymentInput) (*domain.InstallmentPayment, error) {
	if _, err := s.repo.Get(ctx, paymentID); err != nil {
		return nil, err
	}
	sub, err := lookupSubscription(ctx, s.subs, input.SubscriptionID)
	if err != nil {
		return nil, err
	}
	p := installmentFromInput(paymentID, sub.UserID, input)
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *installmentService) Patch(ctx context.Context, paymentID string, req domain.UpdateInstallmentPaymentRequest) (*domain.InstallmentPayment, error) {
	if _, err := s.repo.Get(ctx, paymentID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.DueDate != nil {
		updates["payment_due_date"] = *req.DueDate
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.IsPaid != nil {
		updates["is_paid"] = *req.IsPaid
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, paymentID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, paymentID)
}

func (s *installmentService) Delete(ctx context.Context, paymentID string) error {
	if _, err := s.repo.Get(ctx, paymentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, paymentID)
}

// lookupSubscription loads a payment's parent subscription, turning a
// missing parent into ErrBadRequest.
func lookupSubscription(ctx context.Context, subs subscriptionGetter, subscriptionID string) (*domain.Subscription, error) {
	sub, err := subs.Get(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("subscription %s: %w", subscriptionID, domain.ErrBadRequest)
		}
		return nil, err
	}
	return sub, nil
}

func installmentFromInput(paymentID, userID string, input domain.InstallmentPaymentInput) *domain.InstallmentPayment {
	paid := false
	if input.IsPaid != nil {
		paid = *input.IsPaid
	}
	return &domain.InstallmentPayment{
		PaymentID:      paymentID,
		SubscriptionID: input.SubscriptionID,
		UserID:         userID,
		DueDate:        input.DueDate,
		Amount:         input.Amount,
		IsPaid:         paid,
	}
}
