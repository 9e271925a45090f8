package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/elearn-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCourseStore struct{ mock.Mock }

func (m *mockCourseStore) Put(ctx context.Context, c *domain.Course) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCourseStore) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	args := m.Called(ctx, courseID)
	if c, _ := args.Get(0).(*domain.Course); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCourseStore) Update(ctx context.Context, courseID string, updates map[string]interface{}) error {
	return m.Called(ctx, courseID, updates).Error(0)
}
func (m *mockCourseStore) Delete(ctx context.Context, courseID string) error {
	return m.Called(ctx, courseID).Error(0)
}
func (m *mockCourseStore) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Course, string, error) {
	args := m.Called(ctx, search, limit, cursor)
	return args.Get(0).([]domain.Course), args.String(1), args.Error(2)
}

func courseInput() domain.CourseInput {
	return domain.CourseInput{
		Title:        "Algebra I",
		Description:  "First-year algebra",
		CurrentPrice: 150000,
		TotalHours:   24,
	}
}

func TestCourseCreate_DefaultsApplied(t *testing.T) {
	repo := &mockCourseStore{}
	var stored *domain.Course
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Course")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Course) }).
		Return(nil)

	svc := NewCourseService(repo)
	created, err := svc.Create(context.Background(), courseInput())

	require.NoError(t, err)
	assert.NotEmpty(t, created.CourseID)
	assert.True(t, stored.HasInstallmentPayment)
	assert.Equal(t, 3, stored.InstallmentPaymentCount)
}

func TestCourseReplace_MissingCourse(t *testing.T) {
	repo := &mockCourseStore{}
	repo.On("Get", mock.Anything, "c-missing").Return(nil, domain.ErrNotFound)

	svc := NewCourseService(repo)
	_, err := svc.Replace(context.Background(), "c-missing", courseInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCoursePatch_OnlyProvidedFields(t *testing.T) {
	existing := &domain.Course{CourseID: "c-1", Title: "Algebra I"}

	repo := &mockCourseStore{}
	repo.On("Get", mock.Anything, "c-1").Return(existing, nil)
	var updates map[string]interface{}
	repo.On("Update", mock.Anything, "c-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(args mock.Arguments) { updates = args.Get(2).(map[string]interface{}) }).
		Return(nil)

	title := "Algebra II"
	price := int64(200000)
	svc := NewCourseService(repo)
	_, err := svc.Patch(context.Background(), "c-1", domain.UpdateCourseRequest{
		Title:        &title,
		CurrentPrice: &price,
	})

	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "Algebra II", updates["title"])
	assert.Equal(t, int64(200000), updates["current_price"])
}

func TestCoursePatch_EmptyRequestSkipsUpdate(t *testing.T) {
	repo := &mockCourseStore{}
	repo.On("Get", mock.Anything, "c-1").Return(&domain.Course{CourseID: "c-1"}, nil)

	svc := NewCourseService(repo)
	_, err := svc.Patch(context.Background(), "c-1", domain.UpdateCourseRequest{})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCourseDelete_MissingCourse(t *testing.T) {
	repo := &mockCourseStore{}
	repo.On("Get", mock.Anything, "c-missing").Return(nil, domain.ErrNotFound)

	svc := NewCourseService(repo)
	err := svc.Delete(context.Background(), "c-missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

type mockSeasonStore struct{ mock.Mock }

func (m *mockSeasonStore) Put(ctx context.Context, s *domain.Season) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSeasonStore) Get(ctx context.Context, seasonID string) (*domain.Season, error) {
	args := m.Called(ctx, seasonID)
	if s, _ := args.Get(0).(*domain.Season); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSeasonStore) ListByCourse(ctx context.Context, courseID string) ([]domain.Season, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *mockSeasonStore) Update(ctx context.Context, seasonID string, updates map[string]interface{}) error {
	return m.Called(ctx, seasonID, updates).Error(0)
}
func (m *mockSeasonStore) Delete(ctx context.Context, seasonID string) error {
	return m.Called(ctx, seasonID).Error(0)
}
func (m *mockSeasonStore) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Season, string, error) {
	args := m.Called(ctx, search, limit, cursor)
	return args.Get(0).([]domain.Season), args.String(1), args.Error(2)
}

func TestSeasonCreate_MissingParentIsBadRequest(t *testing.T) {
	courses := &mockCourseStore{}
	courses.On("Get", mock.Anything, "c-missing").Return(nil, domain.ErrNotFound)

	svc := NewSeasonService(&mockSeasonStore{}, courses)
	_, err := svc.Create(context.Background(), domain.SeasonInput{
		CourseID: "c-missing",
		Name:     "Season 1",
	})

	// A missing parent course is the caller's mistake, not an absent season.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestSeasonCreate_Success(t *testing.T) {
	courses := &mockCourseStore{}
	courses.On("Get", mock.Anything, "c-1").Return(&domain.Course{CourseID: "c-1"}, nil)

	repo := &mockSeasonStore{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Season")).Return(nil)

	svc := NewSeasonService(repo, courses)
	created, err := svc.Create(context.Background(), domain.SeasonInput{
		CourseID: "c-1",
		Name:     "Season 1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.SeasonID)
	assert.Equal(t, "c-1", created.CourseID)
}
