package textbook

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTextbookStore struct{ mock.Mock }

func (m *mockTextbookStore) Put(ctx context.Context, tb *domain.Textbook) error {
	return m.Called(ctx, tb).Error(0)
}
func (m *mockTextbookStore) Get(ctx context.Context, textbookID string) (*domain.Textbook, error) {
	args := m.Called(ctx, textbookID)
	if tb, _ := args.Get(0).(*domain.Textbook); tb != nil {
		return tb, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTextbookStore) Update(ctx context.Context, textbookID string, updates map[string]interface{}) error {
	return m.Called(ctx, textbookID, updates).Error(0)
}
func (m *mockTextbookStore) Delete(ctx context.Context, textbookID string) error {
	return m.Called(ctx, textbookID).Error(0)
}
func (m *mockTextbookStore) ScanPage(ctx context.Context, search string, limit int32, cursor string) ([]domain.Textbook, string, error) {
	args := m.Called(ctx, search, limit, cursor)
	return args.Get(0).([]domain.Textbook), args.String(1), args.Error(2)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func pdfInput() domain.TextbookInput {
	return domain.TextbookInput{
		Title:       "Geometry Workbook",
		Description: "Exercises for grade ten",
		PDFBase64:   base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake body")),
	}
}

func TestTextbookCreate_MissingPDF(t *testing.T) {
	svc := NewService(&mockTextbookStore{}, &mockObjectStore{})

	input := pdfInput()
	input.PDFBase64 = ""
	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestTextbookCreate_InvalidBase64(t *testing.T) {
	svc := NewService(&mockTextbookStore{}, &mockObjectStore{})

	input := pdfInput()
	input.PDFBase64 = "!!not-base64!!"
	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestTextbookCreate_UploadsAndPresigns(t *testing.T) {
	objects := &mockObjectStore{}
	var uploadedKey string
	objects.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
		Run(func(args mock.Arguments) { uploadedKey = args.String(1) }).
		Return("s3://textbooks/x.pdf", nil)
	objects.On("PresignedURL", mock.Anything, mock.AnythingOfType("string"), presignTTL).
		Return("https://s3.example/presigned", nil)

	repo := &mockTextbookStore{}
	var stored *domain.Textbook
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Textbook")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Textbook) }).
		Return(nil)

	svc := NewService(repo, objects)
	view, err := svc.Create(context.Background(), pdfInput())

	require.NoError(t, err)
	assert.Equal(t, uploadedKey, stored.PDFKey)
	assert.Equal(t, "https://s3.example/presigned", view.PDFURL)
}

func TestTextbookGet_PresignFailureStillReturnsRecord(t *testing.T) {
	repo := &mockTextbookStore{}
	repo.On("Get", mock.Anything, "tb-1").Return(&domain.Textbook{
		TextbookID: "tb-1",
		Title:      "Geometry Workbook",
		PDFKey:     "textbooks/tb-1.pdf",
	}, nil)

	objects := &mockObjectStore{}
	objects.On("PresignedURL", mock.Anything, "textbooks/tb-1.pdf", presignTTL).
		Return("", errors.New("s3 unavailable"))

	svc := NewService(repo, objects)
	view, err := svc.Get(context.Background(), "tb-1")

	require.NoError(t, err)
	assert.Equal(t, "tb-1", view.TextbookID)
	assert.Empty(t, view.PDFURL)
}

func TestTextbookDelete_RemovesObject(t *testing.T) {
	repo := &mockTextbookStore{}
	repo.On("Get", mock.Anything, "tb-1").Return(&domain.Textbook{
		TextbookID: "tb-1",
		PDFKey:     "textbooks/tb-1.pdf",
	}, nil)
	repo.On("Delete", mock.Anything, "tb-1").Return(nil)

	objects := &mockObjectStore{}
	objects.On("Delete", mock.Anything, "textbooks/tb-1.pdf").Return(nil)

	svc := NewService(repo, objects)
	require.NoError(t, svc.Delete(context.Background(), "tb-1"))

	objects.AssertCalled(t, "Delete", mock.Anything, "textbooks/tb-1.pdf")
}
