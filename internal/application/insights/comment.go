package insights

import (
	"context"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

type CommentService interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Comment, string, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Comment, error)
	Get(ctx context.Context, commentID string) (*domain.Comment, error)
	Create(ctx context.Context, input domain.CommentInput) (*domain.Comment, error)
	Replace(ctx context.Context, commentID string, input domain.CommentInput) (*domain.Comment, error)
	Patch(ctx context.Context, commentID string, req domain.UpdateCommentRequest) (*domain.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type commentStore interface {
	Put(ctx context.Context, c *domain.Comment) error
	Get(ctx context.Context, commentID string) (*domain.Comment, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Comment, error)
	Update(ctx context.Context, commentID string, updates map[string]interface{}) error
	Delete(ctx context.Context, commentID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Comment, string, error)
}

type commentService struct {
	repo    commentStore
	courses courseGetter
	now     func() time.Time
}

func NewCommentService(repo commentStore, courses courseGetter) CommentService {
	return &commentService{repo: repo, courses: courses, now: time.Now}
}

func (s *commentService) List(ctx context.Context, search string, limit int32, cursor string) ([]domain.Comment, string, error) {
	return s.repo.ScanPage(ctx, search, limit, cursor)
}

func (s *commentService) ListByCourse(ctx context.Context, courseID string) ([]domain.Comment, error) {
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		return nil, err
	}
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *commentService) Get(ctx context.Context, commentID string) (*domain.Comment, error) {
	return s.repo.Get(ctx, commentID)
}

func (s *commentService) Create(ctx context.Context, input domain.CommentInput) (*domain.Comment, error) {
	if err := checkCourse(ctx, s.courses, input.CourseID); err != nil {
		return nil, err
	}
	c := &domain.Comment{
		CommentID: id.New(),
		CourseID:  input.CourseID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Replace(ctx context.Context, commentID string, input domain.CommentInput) (*domain.Comment, error) {
	existing, err := s.repo.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := checkCourse(ctx, s.courses, input.CourseID); err != nil {
		return nil, err
	}
	c := &domain.Comment{
		CommentID: commentID,
		CourseID:  input.CourseID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: existing.CreatedAt,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Patch(ctx context.Context, commentID string, req domain.UpdateCommentRequest) (*domain.Comment, error) {
	if _, err := s.repo.Get(ctx, commentID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Text != nil {
		updates["comment_text"] = *req.Text
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, commentID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, commentID)
}

func (s *commentService) Delete(ctx context.Context, commentID string) error {
	if _, err := s.repo.Get(ctx, commentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, commentID)
}
