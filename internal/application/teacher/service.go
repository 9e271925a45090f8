package teacher

import (
	"context"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Teacher, string, error)
	Get(ctx context.Context, teacherID string) (*domain.Teacher, error)
	Create(ctx context.Context, input domain.TeacherInput) (*domain.Teacher, error)
	Replace(ctx context.Context, teacherID string, input domain.TeacherInput) (*domain.Teacher, error)
	Patch(ctx context.Context, teacherID string, req domain.UpdateTeacherRequest) (*domain.Teacher, error)
	Delete(ctx context.Context, teacherID string) error
}

type teacherStore interface {
	Put(ctx context.Context, t *domain.Teacher) error
	Get(ctx context.Context, teacherID string) (*domain.Teacher, error)
	Update(ctx context.Context, teacherID string, updates map[string]interface{}) error
	Delete(ctx context.Context, teacherID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Teacher, string, error)
}

type service struct {
	repo teacherStore
}

func NewService(repo teacherStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Teacher, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *service) Get(ctx context.Context, teacherID string) (*domain.Teacher, error) {
	return s.repo.Get(ctx, teacherID)
}

func (s *service) Create(ctx context.Context, input domain.TeacherInput) (*domain.Teacher, error) {
	t := &domain.Teacher{
		TeacherID: id.New(),
		FullName:  input.FullName,
		About:     input.About,
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Replace(ctx context.Context, teacherID string, input domain.TeacherInput) (*domain.Teacher, error) {
	if _, err := s.repo.Get(ctx, teacherID); err != nil {
		return nil, err
	}
	t := &domain.Teacher{
		TeacherID: teacherID,
		FullName:  input.FullName,
		About:     input.About,
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Patch(ctx context.Context, teacherID string, req domain.UpdateTeacherRequest) (*domain.Teacher, error) {
	if _, err := s.repo.Get(ctx, teacherID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.About != nil {
		updates["about"] = *req.About
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, teacherID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, teacherID)
}

func (s *service) Delete(ctx context.Context, teacherID string) error {
	if _, err := s.repo.Get(ctx, teacherID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID)
}
