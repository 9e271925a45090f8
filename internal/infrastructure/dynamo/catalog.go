package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elearn-api/internal/domain"
)

// Catalog repos: teachers, courses, seasons and lessons. All are plain
// keyed tables; seasons and lessons carry a GSI on their parent ID so the
// public catalog can list children without a full scan.

type TeacherRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTeacherRepo(client *dynamodb.Client, tableName string) *TeacherRepo {
	return &TeacherRepo{client: client, tableName: tableName}
}

func (r *TeacherRepo) Put(ctx context.Context, t *domain.Teacher) error {
	return putItem(ctx, r.client, r.tableName, t)
}

func (r *TeacherRepo) Get(ctx context.Context, teacherID string) (*domain.Teacher, error) {
	return getItem[domain.Teacher](ctx, r.client, r.tableName, strKey("teacher_id", teacherID))
}

func (r *TeacherRepo) Update(ctx context.Context, teacherID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("teacher_id", teacherID), updates)
}

func (r *TeacherRepo) Delete(ctx context.Context, teacherID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("teacher_id", teacherID))
}

func (r *TeacherRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Teacher, string, error) {
	return scanPage[domain.Teacher](ctx, r.client, r.tableName, "teacher_id", "full_name", search, limit, cursor)
}

type CourseRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCourseRepo(client *dynamodb.Client, tableName string) *CourseRepo {
	return &CourseRepo{client: client, tableName: tableName}
}

func (r *CourseRepo) Put(ctx context.Context, c *domain.Course) error {
	return putItem(ctx, r.client, r.tableName, c)
}

func (r *CourseRepo) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	return getItem[domain.Course](ctx, r.client, r.tableName, strKey("course_id", courseID))
}

func (r *CourseRepo) Update(ctx context.Context, courseID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("course_id", courseID), updates)
}

func (r *CourseRepo) Delete(ctx context.Context, courseID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("course_id", courseID))
}

func (r *CourseRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Course, string, error) {
	return scanPage[domain.Course](ctx, r.client, r.tableName, "course_id", "title", search, limit, cursor)
}

type SeasonRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSeasonRepo(client *dynamodb.Client, tableName string) *SeasonRepo {
	return &SeasonRepo{client: client, tableName: tableName}
}

func (r *SeasonRepo) Put(ctx context.Context, s *domain.Season) error {
	return putItem(ctx, r.client, r.tableName, s)
}

func (r *SeasonRepo) Get(ctx context.Context, seasonID string) (*domain.Season, error) {
	return getItem[domain.Season](ctx, r.client, r.tableName, strKey("season_id", seasonID))
}

func (r *SeasonRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.Season, error) {
	return queryGSI[domain.Season](ctx, r.client, r.tableName, "course_id-index", "course_id", courseID)
}

func (r *SeasonRepo) Update(ctx context.Context, seasonID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("season_id", seasonID), updates)
}

func (r *SeasonRepo) Delete(ctx context.Context, seasonID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("season_id", seasonID))
}

func (r *SeasonRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Season, string, error) {
	return scanPage[domain.Season](ctx, r.client, r.tableName, "season_id", "name", search, limit, cursor)
}

type LessonRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewLessonRepo(client *dynamodb.Client, tableName string) *LessonRepo {
	return &LessonRepo{client: client, tableName: tableName}
}

func (r *LessonRepo) Put(ctx context.Context, l *domain.Lesson) error {
	return putItem(ctx, r.client, r.tableName, l)
}

func (r *LessonRepo) Get(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	return getItem[domain.Lesson](ctx, r.client, r.tableName, strKey("lesson_id", lessonID))
}

func (r *LessonRepo) ListBySeason(ctx context.Context, seasonID string) ([]domain.Lesson, error) {
	return queryGSI[domain.Lesson](ctx, r.client, r.tableName, "season_id-index", "season_id", seasonID)
}

func (r *LessonRepo) Update(ctx context.Context, lessonID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("lesson_id", lessonID), updates)
}

func (r *LessonRepo) Delete(ctx context.Context, lessonID string) error {
	return deleteItem(ctx, r.client, r.tableName, strKey("lesson_id", lessonID))
}

func (r *LessonRepo) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Lesson, string, error) {
	return scanPage[domain.Lesson](ctx, r.client, r.tableName, "lesson_id", "title", search, limit, cursor)
}
