package domain

import "time"

const (
	PaymentTypeInstallment = "installment"
	PaymentTypeImmediate   = "immediate"
)

// Subscription links a user to a course they bought. At most one
// subscription per (user, course) pair.
type Subscription struct {
	SubscriptionID string    `json:"id" dynamodbav:"subscription_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"`
	CourseID       string    `json:"course_id" dynamodbav:"course_id"`
	PaymentType    string    `json:"payment_type" dynamodbav:"payment_type"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

type SubscriptionInput struct {
	UserID      string `json:"user_id" validate:"required"`
	CourseID    string `json:"course_id" validate:"required"`
	PaymentType string `json:"payment_type" validate:"required,oneof=installment immediate"`
}

// InstallmentPayment is one due installment of a subscription.
// UserID is denormalised from the subscription so owner-scoped listings can
// hit the user_id-index directly.
type InstallmentPayment struct {
	PaymentID      string `json:"id" dynamodbav:"payment_id"`
	SubscriptionID string `json:"subscription_id" dynamodbav:"subscription_id"`
	UserID         string `json:"user_id" dynamodbav:"user_id"`
	DueDate        string `json:"payment_due_date" dynamodbav:"payment_due_date"` // YYYY-MM-DD
	Amount         int64  `json:"amount" dynamodbav:"amount"`
	IsPaid         bool   `json:"is_paid" dynamodbav:"is_paid"`
}

type InstallmentPaymentInput struct {
	SubscriptionID string `json:"subscription_id" validate:"required"`
	DueDate        string `json:"payment_due_date" validate:"required"`
	Amount         int64  `json:"amount" validate:"required,min=1"`
	IsPaid         *bool  `json:"is_paid"`
}

// ImmediatePayment is the single one-shot payment of a subscription.
type ImmediatePayment struct {
	PaymentID      string    `json:"id" dynamodbav:"payment_id"`
	SubscriptionID string    `json:"subscription_id" dynamodbav:"subscription_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"`
	Amount         int64     `json:"amount" dynamodbav:"amount"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

type ImmediatePaymentInput struct {
	SubscriptionID string `json:"subscription_id" validate:"required"`
	Amount         int64  `json:"amount" validate:"required,min=1"`
}

// Transaction is a raw ledger entry for money moved by a user.
type Transaction struct {
	TransactionID string    `json:"id" dynamodbav:"transaction_id"`
	UserID        string    `json:"user_id" dynamodbav:"user_id"`
	Amount        int64     `json:"amount" dynamodbav:"amount"`
	Description   string    `json:"description" dynamodbav:"description"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
}

type TransactionInput struct {
	UserID      string `json:"user_id" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,min=1"`
	Description string `json:"description" validate:"required,max=255"`
}

// UpdateSubscriptionRequest carries optional fields for partial updates.
type UpdateSubscriptionRequest struct {
	PaymentType *string `json:"payment_type" validate:"omitempty,oneof=installment immediate"`
}

// UpdateInstallmentPaymentRequest carries optional fields for partial updates.
type UpdateInstallmentPaymentRequest struct {
	DueDate *string `json:"payment_due_date"`
	Amount  *int64  `json:"amount" validate:"omitempty,min=1"`
	IsPaid  *bool   `json:"is_paid"`
}

// UpdateImmediatePaymentRequest carries optional fields for partial updates.
type UpdateImmediatePaymentRequest struct {
	Amount *int64 `json:"amount" validate:"omitempty,min=1"`
}

// UpdateTransactionRequest carries optional fields for partial updates.
type UpdateTransactionRequest struct {
	Amount      *int64  `json:"amount" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}
