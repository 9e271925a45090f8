package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// Billing repos: subscriptions, installment payments, immediate payments and
// transactions. All carry a user_id-index GSI for owner-scoped listings.

type SubscriptionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSubscriptionRepo(client *dynamodb.Client, tableName string) *SubscriptionRepo {
	return &SubscriptionRepo{client: client, tableName: tableName}
}

// Put enforces the one-subscription-per-course rule: if the user already has
// a subscription for the course it returns domain.ErrConflict.
func (r *SubscriptionRepo) Put(ctx context.Context, s *domain.Subscription) error {
	existing, err := r.ListByUser(ctx, s.UserID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.CourseID == s.CourseID && e.SubscriptionID != s.SubscriptionID {
			return fmt.Errorf("user already subscribed to course: %w", domain.ErrConflict)
		}
	}
	return putItem(ctx, r.client, r.tableName, s)
}

func (r *SubscriptionRepo) Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	return getItem[domain.Subscription](ctx, r.client, r.tableName, strKey("subscription_id", subscriptionID))
}

func (r *SubscriptionRepo) ListByUser(ctx context.Context, userID string) ([]domain.Subscription, error) {
	return queryGSI[domain.Subscription](ctx, r.client, r.tableName, "user_id-index", "user_id", userID)
}

func (r *SubscriptionRepo) Update(ctx context.Context, subscriptionID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("subscription_id", subscriptionID), updates)
}

func (r *SubscriptionRepo) Delete(ctx context.Context, subscriptionID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("subscription_id", subscriptionID))
}

func (r *SubscriptionRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Subscription, string, error) {
	return scanPage[domain.Subscription](ctx, r.client, r.tableName, "subscription_id", "user_id", search, limit, cursor)
}

type InstallmentPaymentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewInstallmentPaymentRepo(client *dynamodb.Client, tableName string) *InstallmentPaymentRepo {
	return &InstallmentPaymentRepo{client: client, tableName: tableName}
}

func (r *InstallmentPaymentRepo) Put(ctx context.Context, p *domain.InstallmentPayment) error {
	return putItem(ctx, r.client, r.tableName, p)
}

func (r *InstallmentPaymentRepo) Get(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error) {
	return getItem[domain.InstallmentPayment](ctx, r.client, r.tableName, strKey("payment_id", paymentID))
}

func (r *InstallmentPaymentRepo) ListByUser(ctx context.Context, userID string) ([]domain.InstallmentPayment, error) {
	return queryGSI[domain.InstallmentPayment](ctx, r.client, r.tableName, "user_id-index", "user_id", userID)
}

func (r *InstallmentPaymentRepo) ListBySubscription(ctx context.Context, subscriptionID string) ([]domain.InstallmentPayment, error) {
	return queryGSI[domain.InstallmentPayment](ctx, r.client, r.tableName, "subscription_id-index", "subscription_id", subscriptionID)
}

func (r *InstallmentPaymentRepo) Update(ctx context.Context, paymentID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("payment_id", paymentID), updates)
}

func (r *InstallmentPaymentRepo) Delete(ctx context.Context, paymentID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("payment_id", paymentID))
}

func (r *InstallmentPaymentRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.InstallmentPayment, string, error) {
	return scanPage[domain.InstallmentPayment](ctx, r.client, r.tableName, "payment_id", "user_id", search, limit, cursor)
}

type ImmediatePaymentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewImmediatePaymentRepo(client *dynamodb.Client, tableName string) *ImmediatePaymentRepo {
	return &ImmediatePaymentRepo{client: client, tableName: tableName}
}

// Put rejects a second immediate payment for the same subscription.
func (r *ImmediatePaymentRepo) Put(ctx context.Context, p *domain.ImmediatePayment) error {
	existing, err := queryOneGSI[domain.ImmediatePayment](ctx, r.client, r.tableName, "subscription_id-index", "subscription_id", p.SubscriptionID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil && existing.PaymentID != p.PaymentID {
		return fmt.Errorf("subscription already has an immediate payment: %w", domain.ErrConflict)
	}
	return putItem(ctx, r.client, r.tableName, p)
}

func (r *ImmediatePaymentRepo) Get(ctx context.Context, paymentID string) (*domain.ImmediatePayment, error) {
	return getItem[domain.ImmediatePayment](ctx, r.client, r.tableName, strKey("payment_id", paymentID))
}

func (r *ImmediatePaymentRepo) ListByUser(ctx context.Context, userID string) ([]domain.ImmediatePayment, error) {
	return queryGSI[domain.ImmediatePayment](ctx, r.client, r.tableName, "user_id-index", "user_id", userID)
}

func (r *ImmediatePaymentRepo) Update(ctx context.Context, paymentID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("payment_id", paymentID), updates)
}

func (r *ImmediatePaymentRepo) Delete(ctx context.Context, paymentID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("payment_id", paymentID))
}

func (r *ImmediatePaymentRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.ImmediatePayment, string, error) {
	return scanPage[domain.ImmediatePayment](ctx, r.client, r.tableName, "payment_id", "user_id", search, limit, cursor)
}

type TransactionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTransactionRepo(client *dynamodb.Client, tableName string) *TransactionRepo {
	return &TransactionRepo{client: client, tableName: tableName}
}

func (r *TransactionRepo) Put(ctx context.Context, t *domain.Transaction) error {
	return putItem(ctx, r.client, r.tableName, t)
}

func (r *TransactionRepo) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return getItem[domain.Transaction](ctx, r.client, r.tableName, strKey("transaction_id", transactionID))
}

func (r *TransactionRepo) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return queryGSI[domain.Transaction](ctx, r.client, r.tableName, "user_id-index", "user_id", userID)
}

func (r *TransactionRepo) Update(ctx context.Context, transactionID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("transaction_id", transactionID), updates)
}

func (r *TransactionRepo) Delete(ctx context.Context, transactionID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("transaction_id", transactionID))
}

func (r *TransactionRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Transaction, string, error) {
	return scanPage[domain.Transaction](ctx, r.client, r.tableName, "transaction_id", "description", search, limit, cursor)
}
