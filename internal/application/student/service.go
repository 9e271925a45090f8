package student

import (
	"context"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.StudentInfo, string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.StudentInfo, error)
	Get(ctx context.Context, studentID string) (*domain.StudentInfo, error)
	Create(ctx context.Context, input domain.StudentInfoInput) (*domain.StudentInfo, error)
	Replace(ctx context.Context, studentID string, input domain.StudentInfoInput) (*domain.StudentInfo, error)
	Patch(ctx context.Context, studentID string, req domain.UpdateStudentInfoRequest) (*domain.StudentInfo, error)
	Delete(ctx context.Context, studentID string) error
}

type studentStore interface {
	Put(ctx context.Context, s *domain.StudentInfo) error
	Get(ctx context.Context, studentID string) (*domain.StudentInfo, error)
	ListByUser(ctx context.Context, userID string) ([]domain.StudentInfo, error)
	Update(ctx context.Context, studentID string, updates map[string]interface{}) error
	Delete(ctx context.Context, studentID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.StudentInfo, string, error)
}

type service struct {
	repo studentStore
}

func NewService(repo studentStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.StudentInfo, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.StudentInfo, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, studentID string) (*domain.StudentInfo, error) {
	return s.repo.Get(ctx, studentID)
}

func (s *service) Create(ctx context.Context, input domain.StudentInfoInput) (*domain.StudentInfo, error) {
	info := &domain.StudentInfo{
		StudentID: id.New(),
		UserID:    input.UserID,
		IDCode:    input.IDCode,
		Birthday:  input.Birthday,
		Year:      input.Year,
		Gender:    input.Gender,
	}
	if err := s.repo.Put(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *service) Replace(ctx context.Context, studentID string, input domain.StudentInfoInput) (*domain.StudentInfo, error) {
	// Keep the existing key; a full update must target an existing record.
	if _, err := s.repo.Get(ctx, studentID); err != nil {
		return nil, err
	}
	info := &domain.StudentInfo{
		StudentID: studentID,
		UserID:    input.UserID,
		IDCode:    input.IDCode,
		Birthday:  input.Birthday,
		Year:      input.Year,
		Gender:    input.Gender,
	}
	if err := s.repo.Put(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *service) Patch(ctx context.Context, studentID string, req domain.UpdateStudentInfoRequest) (*domain.StudentInfo, error) {
	if _, err := s.repo.Get(ctx, studentID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.IDCode != nil {
		updates["id_code"] = *req.IDCode
	}
	if req.Birthday != nil {
		updates["birthday"] = *req.Birthday
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, studentID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, studentID)
}

func (s *service) Delete(ctx context.Context, studentID string) error {
	if _, err := s.repo.Get(ctx, studentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, studentID)
}
