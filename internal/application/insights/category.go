package insights

import (
	"context"
	"errors"
	"fmt"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type CategoryService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Category, string, error)
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	Replace(ctx context.Context, categoryID string, input domain.CategoryInput) (*domain.Category, error)
	Patch(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type categoryStore interface {
	Put(ctx context.Context, c *domain.Category) error
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	Update(ctx context.Context, categoryID string, updates map[string]interface{}) error
	Delete(ctx context.Context, categoryID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Category, string, error)
}

// courseGetter checks that a course referenced by an FAQ or comment exists.
type courseGetter interface {
	Get(ctx context.Context, courseID string) (*domain.Course, error)
}

type categoryService struct {
	repo categoryStore
}

func NewCategoryService(repo categoryStore) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Category, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *categoryService) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.repo.Get(ctx, categoryID)
}

func (s *categoryService) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	c := &domain.Category{CategoryID: id.New(), Title: input.Title}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Replace(ctx context.Context, categoryID string, input domain.CategoryInput) (*domain.Category, error) {
	if _, err := s.repo.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	c := &domain.Category{CategoryID: categoryID, Title: input.Title}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Patch(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	if _, err := s.repo.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, categoryID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, categoryID)
}

func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	if _, err := s.repo.Get(ctx, categoryID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, categoryID)
}

func checkCourse(ctx context.Context, courses courseGetter, courseID string) error {
	if _, err := courses.Get(ctx, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("course %s: %w", courseID, domain.ErrBadRequest)
		}
		return err
	}
	return nil
}
