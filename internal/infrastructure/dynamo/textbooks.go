package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// TextbookRepo provides typed DynamoDB operations for the textbooks table.
// The PDF body itself lives in S3; the item only records the object key.
type TextbookRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTextbookRepo(client *dynamodb.Client, tableName string) *TextbookRepo {
	return &TextbookRepo{client: client, tableName: tableName}
}

func (r *TextbookRepo) Put(ctx context.Context, t *domain.Textbook) error {
	return putItem(ctx, r.client, r.tableName, t)
}

func (r *TextbookRepo) Get(ctx context.Context, textbookID string) (*domain.Textbook, error) {
	return getItem[domain.Textbook](ctx, r.client, r.tableName, strKey("textbook_id", textbookID))
}

func (r *TextbookRepo) Update(ctx context.Context, textbookID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	return updateItem(ctx, r.client, r.tableName, strKey("textbook_id", textbookID), updates)
}

func (r *TextbookRepo) Delete(ctx context.Context, textbookID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("textbook_id", textbookID))
}

func (r *TextbookRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Textbook, string, error) {
	return scanPage[domain.Textbook](ctx, r.client, r.tableName, "textbook_id", "title", search, limit, cursor)
}
