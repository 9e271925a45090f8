package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// Insights repos: categories, FAQs and comments.

type CategoryRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCategoryRepo(client *dynamodb.Client, tableName string) *CategoryRepo {
	return &CategoryRepo{client: client, tableName: tableName}
}

func (r *CategoryRepo) Put(ctx context.Context, c *domain.Category) error {
	return putItem(ctx, r.client, r.tableName, c)
}

func (r *CategoryRepo) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	return getItem[domain.Category](ctx, r.client, r.tableName, strKey("category_id", categoryID))
}

func (r *CategoryRepo) Update(ctx context.Context, categoryID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("category_id", categoryID), updates)
}

func (r *CategoryRepo) Delete(ctx context.Context, categoryID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("category_id", categoryID))
}

func (r *CategoryRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Category, string, error) {
	return scanPage[domain.Category](ctx, r.client, r.tableName, "category_id", "title", search, limit, cursor)
}

type FAQRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewFAQRepo(client *dynamodb.Client, tableName string) *FAQRepo {
	return &FAQRepo{client: client, tableName: tableName}
}

func (r *FAQRepo) Put(ctx context.Context, f *domain.FAQ) error {
	return putItem(ctx, r.client, r.tableName, f)
}

func (r *FAQRepo) Get(ctx context.Context, faqID string) (*domain.FAQ, error) {
	return getItem[domain.FAQ](ctx, r.client, r.tableName, strKey("faq_id", faqID))
}

func (r *FAQRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.FAQ, error) {
	return queryGSI[domain.FAQ](ctx, r.client, r.tableName, "course_id-index", "course_id", courseID)
}

func (r *FAQRepo) Update(ctx context.Context, faqID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("faq_id", faqID), updates)
}

func (r *FAQRepo) Delete(ctx context.Context, faqID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("faq_id", faqID))
}

func (r *FAQRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.FAQ, string, error) {
	return scanPage[domain.FAQ](ctx, r.client, r.tableName, "faq_id", "question", search, limit, cursor)
}

type CommentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCommentRepo(client *dynamodb.Client, tableName string) *CommentRepo {
	return &CommentRepo{client: client, tableName: tableName}
}

func (r *CommentRepo) Put(ctx context.Context, c *domain.Comment) error {
	return putItem(ctx, r.client, r.tableName, c)
}

func (r *CommentRepo) Get(ctx context.Context, commentID string) (*domain.Comment, error) {
	return getItem[domain.Comment](ctx, r.client, r.tableName, strKey("comment_id", commentID))
}

func (r *CommentRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.Comment, error) {
	return queryGSI[domain.Comment](ctx, r.client, r.tableName, "course_id-index", "course_id", courseID)
}

func (r *CommentRepo) Update(ctx context.Context, commentID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("comment_id", commentID), updates)
}

func (r *CommentRepo) Delete(ctx context.Context, commentID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("comment_id", commentID))
}

func (r *CommentRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Comment, string, error) {
	return scanPage[domain.Comment](ctx, r.client, r.tableName, "comment_id", "comment_text", search, limit, cursor)
}
