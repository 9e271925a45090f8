package textbook

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
)

// presignTTL is how long a returned download URL stays valid.
const presignTTL = 15 * time.Minute

// TextbookView is a textbook with a time-limited download URL resolved
// from its stored object key.
type TextbookView struct {
	domain.Textbook
	PDFURL string `json:"pdf_url,omitempty"`
}

type Service interface {
	List(ctx context.Context, search string, limit int32, cursor string) ([]TextbookView, string, error)
	Get(ctx context.Context, textbookID string) (*TextbookView, error)
	Create(ctx context.Context, input domain.TextbookInput) (*TextbookView, error)
	Replace(ctx context.Context, textbookID string, input domain.TextbookInput) (*TextbookView, error)
	Patch(ctx context.Context, textbookID string, req domain.UpdateTextbookRequest) (*TextbookView, error)
	Delete(ctx context.Context, textbookID string) error
}

type textbookStore interface {
	Put(ctx context.Context, t *domain.Textbook) error
	Get(ctx context.Context, textbookID string) (*domain.Textbook, error)
	Update(ctx context.Context, textbookID string, updates map[string]interface{}) error
	Delete(ctx context.Context, textbookID string) error
	ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Textbook, string, error)
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo    textbookStore
	objects objectStore
	now     func() time.Time
}

func NewService(repo textbookStore, objects objectStore) Service {
	return &service{repo: repo, objects: objects, now: time.Now}
}

func (s *service) List(ctx context.Context, search string, limit int32, cursor string) ([]TextbookView, string, error) {
	items, next, err := s.repo.ScanPage(ctx, search, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	views := make([]TextbookView, 0, len(items))
	for _, t := range items {
		views = append(views, s.toView(ctx, t))
	}
	return views, next, nil
}

func (s *service) Get(ctx context.Context, textbookID string) (*TextbookView, error) {
	t, err := s.repo.Get(ctx, textbookID)
	if err != nil {
		return nil, err
	}
	v := s.toView(ctx, *t)
	return &v, nil
}

func (s *service) Create(ctx context.Context, input domain.TextbookInput) (*TextbookView, error) {
	if input.PDFBase64 == "" {
		return nil, fmt.Errorf("pdf_file is required: %w", domain.ErrBadRequest)
	}
	textbookID := id.New()
	key, err := s.storePDF(ctx, textbookID, input.PDFBase64)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	t := &domain.Textbook{
		TextbookID:  textbookID,
		Title:       input.Title,
		Description: input.Description,
		PDFKey:      key,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	v := s.toView(ctx, *t)
	return &v, nil
}

func (s *service) Replace(ctx context.Context, textbookID string, input domain.TextbookInput) (*TextbookView, error) {
	existing, err := s.repo.Get(ctx, textbookID)
	if err != nil {
		return nil, err
	}
	key := existing.PDFKey
	if input.PDFBase64 != "" {
		key, err = s.storePDF(ctx, textbookID, input.PDFBase64)
		if err != nil {
			return nil, err
		}
	}
	t := &domain.Textbook{
		TextbookID:  textbookID,
		Title:       input.Title,
		Description: input.Description,
		PDFKey:      key,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.now().UTC(),
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	v := s.toView(ctx, *t)
	return &v, nil
}

func (s *service) Patch(ctx context.Context, textbookID string, req domain.UpdateTextbookRequest) (*TextbookView, error) {
	if _, err := s.repo.Get(ctx, textbookID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PDFBase64 != nil && *req.PDFBase64 != "" {
		key, err := s.storePDF(ctx, textbookID, *req.PDFBase64)
		if err != nil {
			return nil, err
		}
		updates["pdf_key"] = key
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, textbookID, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, textbookID)
}

func (s *service) Delete(ctx context.Context, textbookID string) error {
	existing, err := s.repo.Get(ctx, textbookID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, textbookID); err != nil {
		return err
	}
	if existing.PDFKey != "" {
		if err := s.objects.Delete(ctx, existing.PDFKey); err != nil {
			slog.Warn("failed to delete textbook object", "key", existing.PDFKey, "error", err)
		}
	}
	return nil
}

// storePDF decodes the base64 body and uploads it under a key derived from
// the textbook ID. The same textbook always overwrites its own object.
func (s *service) storePDF(ctx context.Context, textbookID, b64 string) (string, error) {
	body, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("pdf_file is not valid base64: %w", domain.ErrBadRequest)
	}
	key := "textbooks/" + textbookID + ".pdf"
	if _, err := s.objects.Upload(ctx, key, bytes.NewReader(body), "application/pdf"); err != nil {
		return "", err
	}
	return key, nil
}

func (s *service) toView(ctx context.Context, t domain.Textbook) TextbookView {
	v := TextbookView{Textbook: t}
	if t.PDFKey == "" {
		return v
	}
	url, err := s.objects.PresignedURL(ctx, t.PDFKey, presignTTL)
	if err != nil {
		slog.Warn("failed to presign textbook url", "key", t.PDFKey, "error", err)
		return v
	}
	v.PDFURL = url
	return v
}
