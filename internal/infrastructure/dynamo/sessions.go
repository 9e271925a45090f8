package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// SessionRepo provides typed DynamoDB operations for the sessions table.
// Refresh tokens are resolved via the refresh_token-index GSI.
type SessionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSessionRepo(client *dynamodb.Client, tableName string) *SessionRepo {
	return &SessionRepo{client: client, tableName: tableName}
}

func (r *SessionRepo) Put(ctx context.Context, s *domain.Session) error {
	return putItem(ctx, r.client, r.tableName, s)
}

func (r *SessionRepo) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return getItem[domain.Session](ctx, r.client, r.tableName, strKey("session_id", sessionID))
}

func (r *SessionRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	return queryOneGSI[domain.Session](ctx, r.client, r.tableName, "refresh_token-index", "refresh_token", refreshToken)
}

// Revoke permanently disables the session. The flag is never cleared.
func (r *SessionRepo) Revoke(ctx context.Context, sessionID string) error {
	return updateItem(ctx, r.client, r.tableName, strKey("session_id", sessionID), map[string]interface{}{
		fieldRevoked:   true,
		fieldUpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
