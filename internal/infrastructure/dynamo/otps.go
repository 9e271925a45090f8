package dynamo

import (
	"context"

	"github.com/elearn-api/internal/domain"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// OtpRepo manages one-time codes. PK: user_id, so Put is an atomic
// replace-by-owner — the store itself guarantees at most one live code per
// user with no application-level locking.
type OtpRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOtpRepo(client *dynamodb.Client, tableName string) *OtpRepo {
	return &OtpRepo{client: client, tableName: tableName}
}

func (r *OtpRepo) Put(ctx context.Context, o *domain.OtpCode) error {
	return putItem(ctx, r.client, r.tableName, o)
}

func (r *OtpRepo) Get(ctx context.Context, userID string) (*domain.OtpCode, error) {
	return getItem[domain.OtpCode](ctx, r.client, r.tableName, strKey("user_id", userID))
}

func (r *OtpRepo) Delete(ctx context.Context, userID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("user_id", userID))
}
