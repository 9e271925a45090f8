package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// StudentInfoRepo provides typed DynamoDB operations for the
// student_information table. The user_id-index GSI backs both owner-scoped
// reads and the has_student_info lookup done at OTP verification.
type StudentInfoRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewStudentInfoRepo(client *dynamodb.Client, tableName string) *StudentInfoRepo {
	return &StudentInfoRepo{client: client, tableName: tableName}
}

func (r *StudentInfoRepo) Put(ctx context.Context, s *domain.StudentInfo) error {
	return putItem(ctx, r.client, r.tableName, s)
}

func (r *StudentInfoRepo) Get(ctx context.Context, studentID string) (*domain.StudentInfo, error) {
	return getItem[domain.StudentInfo](ctx, r.client, r.tableName, strKey("student_id", studentID))
}

func (r *StudentInfoRepo) ListByUser(ctx context.Context, userID string) ([]domain.StudentInfo, error) {
	return queryGSI[domain.StudentInfo](ctx, r.client, r.tableName, "user_id-index", "user_id", userID)
}

// ExistsForUser reports whether the user has a linked student profile.
func (r *StudentInfoRepo) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	_, err := queryOneGSI[domain.StudentInfo](ctx, r.client, r.tableName, "user_id-index", "user_id", userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *StudentInfoRepo) Update(ctx context.Context, studentID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("student_id", studentID), updates)
}

func (r *StudentInfoRepo) Delete(ctx context.Context, studentID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("student_id", studentID))
}

func (r *StudentInfoRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.StudentInfo, string, error) {
	return scanPage[domain.StudentInfo](ctx, r.client, r.tableName, "student_id", "id_code", search, limit, cursor)
}
