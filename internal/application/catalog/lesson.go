package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type LessonService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Lesson, string, error)
	ListBySeason(ctx context.Context, seasonID string) ([]domain.Lesson, error)
	Get(ctx context.Context, lessonID string) (*domain.Lesson, error)
	Create(ctx context.Context, input domain.LessonInput) (*domain.Lesson, error)
	Replace(ctx context.Context, lessonID string, input domain.LessonInput) (*domain.Lesson, error)
	Patch(ctx context.Context, lessonID string, req domain.UpdateLessonRequest) (*domain.Lesson, error)
	Delete(ctx context.Context, lessonID string) error
}

type lessonStore interface {
	Put(ctx context.Context, l *domain.Lesson) error
	Get(ctx context.Context, lessonID string) (*domain.Lesson, error)
	ListBySeason(ctx context.Context, seasonID string) ([]domain.Lesson, error)
	Update(ctx context.Context, lessonID string, updates map[string]interface{}) error
	Delete(ctx context.Context, lessonID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Lesson, string, error)
}

type seasonGetter interface {
	Get(ctx context.Context, seasonID string) (*domain.Season, error)
}

type lessonService struct {
	repo    lessonStore
	seasons seasonGetter
}

func NewLessonService(repo lessonStore, seasons seasonGetter) LessonService {
	return &lessonService{repo: repo, seasons: seasons}
}

func (s *lessonService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Lesson, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *lessonService) ListBySeason(ctx context.Context, seasonID string) ([]domain.Lesson, error) {
	if _, err := s.seasons.Get(ctx, seasonID); err != nil {
		return nil, err
	}
	return s.repo.ListBySeason(ctx, seasonID)
}

func (s *lessonService) Get(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	return s.repo.Get(ctx, lessonID)
}

func (s *lessonService) Create(ctx context.Context, input domain.LessonInput) (*domain.Lesson, error) {
	if err := s.checkSeason(ctx, input.SeasonID); err != nil {
		return nil, err
	}
	l := lessonFromInput(id.New(), input)
	if err := s.repo.Put(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *lessonService) Replace(ctx context.Context, lessonID string, input domain.LessonInput) (*domain.Lesson, error) {
	if _, err := s.repo.Get(ctx, lessonID); err != nil {
		return nil, err
	}
	if err := s.checkSeason(ctx, input.SeasonID); err != nil {
		return nil, err
	}
	l := lessonFromInput(lessonID, input)
	if err := s.repo.Put(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *lessonService) Patch(ctx context.Context, lessonID string, req domain.UpdateLessonRequest) (*domain.Lesson, error) {
	if _, err := s.repo.Get(ctx, lessonID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.SeasonID != nil {
		if err := s.checkSeason(ctx, *req.SeasonID); err != nil {
			return nil, err
		}
		updates["season_id"] = *req.SeasonID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.IsFree != nil {
		updates["is_free"] = *req.IsFree
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, lessonID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, lessonID)
}

func (s *lessonService) Delete(ctx context.Context, lessonID string) error {
	if _, err := s.repo.Get(ctx, lessonID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, lessonID)
}

func (s *lessonService) checkSeason(ctx context.Context, seasonID string) error {
	if _, err := s.seasons.Get(ctx, seasonID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("season %s: %w", seasonID, domain.ErrBadRequest)
		}
		return err
	}
	return nil
}

func lessonFromInput(lessonID string, input domain.LessonInput) *domain.Lesson {
	free := false
	if input.IsFree != nil {
		free = *input.IsFree
	}
	return &domain.Lesson{
		LessonID:        lessonID,
		SeasonID:        input.SeasonID,
		Title:           input.Title,
		VideoURL:        input.VideoURL,
		DurationMinutes: input.DurationMinutes,
		IsFree:          free,
	}
}
