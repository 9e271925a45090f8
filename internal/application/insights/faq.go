package insights

import (
	"context"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type FAQService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.FAQ, string, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.FAQ, error)
	Get(ctx context.Context, faqID string) (*domain.FAQ, error)
	Create(ctx context.Context, input domain.FAQInput) (*domain.FAQ, error)
	Replace(ctx context.Context, faqID string, input domain.FAQInput) (*domain.FAQ, error)
	Patch(ctx context.Context, faqID string, req domain.UpdateFAQRequest) (*domain.FAQ, error)
	Delete(ctx context.Context, faqID string) error
}

type faqStore interface {
	Put(ctx context.Context, f *domain.FAQ) error
	Get(ctx context.Context, faqID string) (*domain.FAQ, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.FAQ, error)
	Update(ctx context.Context, faqID string, updates map[string]interface{}) error
	Delete(ctx context.Context, faqID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.FAQ, string, error)
}

type faqService struct {
	repo    faqStore
	courses courseGetter
}

func NewFAQService(repo faqStore, courses courseGetter) FAQService {
	return &faqService{repo: repo, courses: courses}
}

func (s *faqService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.FAQ, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *faqService) ListByCourse(ctx context.Context, courseID string) ([]domain.FAQ, error) {
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		return nil, err
	}
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *faqService) Get(ctx context.Context, faqID string) (*domain.FAQ, error) {
	return s.repo.Get(ctx, faqID)
}

func (s *faqService) Create(ctx context.Context, input domain.FAQInput) (*domain.FAQ, error) {
	if err := checkCourse(ctx, s.courses, input.CourseID); err != nil {
		return nil, err
	}
	f := &domain.FAQ{
		FAQID:    id.New(),
		CourseID: input.CourseID,
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *faqService) Replace(ctx context.Context, faqID string, input domain.FAQInput) (*domain.FAQ, error) {
	if _, err := s.repo.Get(ctx, faqID); err != nil {
		return nil, err
	}
	if err := checkCourse(ctx, s.courses, input.CourseID); err != nil {
		return nil, err
	}
	f := &domain.FAQ{
		FAQID:    faqID,
		CourseID: input.CourseID,
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *faqService) Patch(ctx context.Context, faqID string, req domain.UpdateFAQRequest) (*domain.FAQ, error) {
	if _, err := s.repo.Get(ctx, faqID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.CourseID != nil {
		if err := checkCourse(ctx, s.courses, *req.CourseID); err != nil {
			return nil, err
		}
		updates["course_id"] = *req.CourseID
	}
	if req.Question != nil {
		updates["question"] = *req.Question
	}
	if req.Answer != nil {
		updates["answer"] = *req.Answer
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, faqID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, faqID)
}

func (s *faqService) Delete(ctx context.Context, faqID string) error {
	if _, err := s.repo.Get(ctx, faqID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, faqID)
}
