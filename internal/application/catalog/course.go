package catalog

import (
	"context"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type CourseService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Course, string, error)
	Get(ctx context.Context, courseID string) (*domain.Course, error)
	Create(ctx context.Context, input domain.CourseInput) (*domain.Course, error)
	Replace(ctx context.Context, courseID string, input domain.CourseInput) (*domain.Course, error)
	Patch(ctx context.Context, courseID string, req domain.UpdateCourseRequest) (*domain.Course, error)
	Delete(ctx context.Context, courseID string) error
}

type courseStore interface {
	Put(ctx context.Context, c *domain.Course) error
	Get(ctx context.Context, courseID string) (*domain.Course, error)
	Update(ctx context.Context, courseID string, updates map[string]interface{}) error
	Delete(ctx context.Context, courseID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Course, string, error)
}

type courseService struct {
	repo courseStore
}

func NewCourseService(repo courseStore) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Course, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *courseService) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.repo.Get(ctx, courseID)
}

func (s *courseService) Create(ctx context.Context, input domain.CourseInput) (*domain.Course, error) {
	c := courseFromInput(id.New(), input)
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) Replace(ctx context.Context, courseID string, input domain.CourseInput) (*domain.Course, error) {
	if _, err := s.repo.Get(ctx, courseID); err != nil {
		return nil, err
	}
	c := courseFromInput(courseID, input)
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) Patch(ctx context.Context, courseID string, req domain.UpdateCourseRequest) (*domain.Course, error) {
	if _, err := s.repo.Get(ctx, courseID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.BannerKey != nil {
		updates["banner_key"] = *req.BannerKey
	}
	if req.HasInstallmentPayment != nil {
		updates["has_installment_payment"] = *req.HasInstallmentPayment
	}
	if req.InstallmentPaymentCount != nil {
		updates["installment_payment_count"] = *req.InstallmentPaymentCount
	}
	if req.CurrentPrice != nil {
		updates["current_price"] = *req.CurrentPrice
	}
	if req.DiscountedPrice != nil {
		updates["discounted_price"] = *req.DiscountedPrice
	}
	if req.TotalHours != nil {
		updates["total_hours"] = *req.TotalHours
	}
	if req.CategoryIDs != nil {
		updates["category_ids"] = *req.CategoryIDs
	}
	if req.TeacherIDs != nil {
		updates["teacher_ids"] = *req.TeacherIDs
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, courseID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, courseID)
}

func (s *courseService) Delete(ctx context.Context, courseID string) error {
	if _, err := s.repo.Get(ctx, courseID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, courseID)
}

func courseFromInput(courseID string, input domain.CourseInput) *domain.Course {
	hasInstallment := true
	if input.HasInstallmentPayment != nil {
		hasInstallment = *input.HasInstallmentPayment
	}
	installmentCount := input.InstallmentPaymentCount
	if installmentCount == 0 {
		installmentCount = 3
	}
	return &domain.Course{
		CourseID:                courseID,
		Title:                   input.Title,
		Description:             input.Description,
		BannerKey:               input.BannerKey,
		HasInstallmentPayment:   hasInstallment,
		InstallmentPaymentCount: installmentCount,
		CurrentPrice:            input.CurrentPrice,
		DiscountedPrice:         input.DiscountedPrice,
		TotalHours:              input.TotalHours,
		CategoryIDs:             input.CategoryIDs,
		TeacherIDs:              input.TeacherIDs,
	}
}
