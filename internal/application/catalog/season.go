package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type SeasonService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Season, string, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Season, error)
	Get(ctx context.Context, seasonID string) (*domain.Season, error)
	Create(ctx context.Context, input domain.SeasonInput) (*domain.Season, error)
	Replace(ctx context.Context, seasonID string, input domain.SeasonInput) (*domain.Season, error)
	Patch(ctx context.Context, seasonID string, req domain.UpdateSeasonRequest) (*domain.Season, error)
	Delete(ctx context.Context, seasonID string) error
}

type seasonStore interface {
	Put(ctx context.Context, s *domain.Season) error
	Get(ctx context.Context, seasonID string) (*domain.Season, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Season, error)
	Update(ctx context.Context, seasonID string, updates map[string]interface{}) error
	Delete(ctx context.Context, seasonID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Season, string, error)
}

type courseGetter interface {
	Get(ctx context.Context, courseID string) (*domain.Course, error)
}

type seasonService struct {
	repo    seasonStore
	courses courseGetter
}

func NewSeasonService(repo seasonStore, courses courseGetter) SeasonService {
	return &seasonService{repo: repo, courses: courses}
}

func (s *seasonService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Season, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *seasonService) ListByCourse(ctx context.Context, courseID string) ([]domain.Season, error) {
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		return nil, err
	}
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *seasonService) Get(ctx context.Context, seasonID string) (*domain.Season, error) {
	return s.repo.Get(ctx, seasonID)
}

func (s *seasonService) Create(ctx context.Context, input domain.SeasonInput) (*domain.Season, error) {
	if err := s.checkCourse(ctx, input.CourseID); err != nil {
		return nil, err
	}
	season := &domain.Season{
		SeasonID: id.New(),
		CourseID: input.CourseID,
		Name:     input.Name,
	}
	if err := s.repo.Put(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

func (s *seasonService) Replace(ctx context.Context, seasonID string, input domain.SeasonInput) (*domain.Season, error) {
	if _, err := s.repo.Get(ctx, seasonID); err != nil {
		return nil, err
	}
	if err := s.checkCourse(ctx, input.CourseID); err != nil {
		return nil, err
	}
	season := &domain.Season{
		SeasonID: seasonID,
		CourseID: input.CourseID,
		Name:     input.Name,
	}
	if err := s.repo.Put(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

func (s *seasonService) Patch(ctx context.Context, seasonID string, req domain.UpdateSeasonRequest) (*domain.Season, error) {
	if _, err := s.repo.Get(ctx, seasonID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.CourseID != nil {
		if err := s.checkCourse(ctx, *req.CourseID); err != nil {
			return nil, err
		}
		updates["course_id"] = *req.CourseID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, seasonID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, seasonID)
}

func (s *seasonService) Delete(ctx context.Context, seasonID string) error {
	if _, err := s.repo.Get(ctx, seasonID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, seasonID)
}

// checkCourse rejects a season that references a missing course. The
// missing parent is the caller's mistake, so ErrNotFound becomes
// ErrBadRequest here.
func (s *seasonService) checkCourse(ctx context.Context, courseID string) error {
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("course %s: %w", courseID, domain.ErrBadRequest)
		}
		return err
	}
	return nil
}
