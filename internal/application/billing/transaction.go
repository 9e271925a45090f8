package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type TransactionService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Transaction, string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	Get(ctx context.Context, transactionID string) (*domain.Transaction, error)
	Create(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error)
	Replace(ctx context.Context, transactionID string, input domain.TransactionInput) (*domain.Transaction, error)
	Patch(ctx context.Context, transactionID string, req domain.UpdateTransactionRequest) (*domain.Transaction, error)
	Delete(ctx context.Context, transactionID string) error
}

type transactionStore interface {
	Put(ctx context.Context, t *domain.Transaction) error
	Get(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	Update(ctx context.Context, transactionID string, updates map[string]interface{}) error
	Delete(ctx context.Context, transactionID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Transaction, string, error)
}

type transactionService struct {
	repo  transactionStore
	users userGetter
	now   func() time.Time
}

func NewTransactionService(repo transactionStore, users userGetter) TransactionService {
	return &transactionService{repo: repo, users: users, now: time.Now}
}

func (s *transactionService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Transaction, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *transactionService) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *transactionService) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.repo.Get(ctx, transactionID)
}

func (s *transactionService) Create(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error) {
	if err := s.checkUser(ctx, input.UserID); err != nil {
		return nil, err
	}
	t := &domain.Transaction{
		TransactionID: id.New(),
		UserID:        input.UserID,
		Amount:        input.Amount,
		Description:   input.Description,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) Replace(ctx context.Context, transactionID string, input domain.TransactionInput) (*domain.Transaction, error) {
	existing, err := s.repo.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkUser(ctx, input.UserID); err != nil {
		return nil, err
	}
	t := &domain.Transaction{
		TransactionID: transactionID,
		UserID:        input.UserID,
		Amount:        input.Amount,
		Description:   input.Description,
		CreatedAt:     existing.CreatedAt,
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) Patch(ctx context.Context, transactionID string, req domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	if _, err := s.repo.Get(ctx, transactionID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, transactionID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, transactionID)
}

func (s *transactionService) Delete(ctx context.Context, transactionID string) error {
	if _, err := s.repo.Get(ctx, transactionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, transactionID)
}

func (s *transactionService) checkUser(ctx context.Context, userID string) error {
	if _, err := s.users.Get(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, domain.ErrBadRequest)
		}
		return err
	}
	return nil
}
