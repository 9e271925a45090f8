package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// UserRepo provides typed DynamoDB operations for the users table.
// Usernames are phone numbers and are resolved via the username-index GSI.
type UserRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUserRepo(client *dynamodb.Client, tableName string) *UserRepo {
	return &UserRepo{client: client, tableName: tableName}
}

func (r *UserRepo) Put(ctx context.Context, u *domain.User) error {
	return putItem(ctx, r.client, r.tableName, u)
}

func (r *UserRepo) Get(ctx context.Context, userID string) (*domain.User, error) {
	return getItem[domain.User](ctx, r.client, r.tableName, strKey("user_id", userID))
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return queryOneGSI[domain.User](ctx, r.client, r.tableName, "username-index", "username", username)
}

func (r *UserRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	stamped := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		stamped[k] = v
	}
	stamped[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	return updateItem(ctx, r.client, r.tableName, strKey("user_id", userID), stamped)
}

// ScanPage returns a page of users; search filters on username.
func (r *UserRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.User, string, error) {
	return scanPage[domain.User](ctx, r.client, r.tableName, "user_id", "username", search, limit, cursor)
}
