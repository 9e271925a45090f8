package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elearn-api/internal/application/auth"
	"github.com/elearn-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) SendOTP(ctx context.Context, phoneNumber string) error {
	return m.Called(ctx, phoneNumber).Error(0)
}

func (m *mockAuthSvc) VerifyOTP(ctx context.Context, phoneNumber, code string) (*auth.VerifyResult, error) {
	args := m.Called(ctx, phoneNumber, code)
	if r, _ := args.Get(0).(*auth.VerifyResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSessionSvc struct{ mock.Mock }

func (m *mockSessionSvc) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *mockSessionSvc) Revoke(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

// --- helpers ---

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

// --- SendOTP ---

func TestSendOTP_BadBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/send-otp", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	h.SendOTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendOTP_MissingPhone(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})

	rr := postJSON(t, h.SendOTP, "/v1/auth/send-otp", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendOTP", mock.Anything, "09120000000").
		Return(fmt.Errorf("send otp sms: sns down: %w", domain.ErrDelivery))
	h := NewAuthHandler(svc, &mockSessionSvc{})

	rr := postJSON(t, h.SendOTP, "/v1/auth/send-otp", map[string]string{"phone_number": "09120000000"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSendOTP_Success(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendOTP", mock.Anything, "09120000000").Return(nil)
	h := NewAuthHandler(svc, &mockSessionSvc{})

	rr := postJSON(t, h.SendOTP, "/v1/auth/send-otp", map[string]string{"phone_number": "09120000000"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "OTP sent", env.Message)
}

// --- VerifyOTP ---

func TestVerifyOTP_MissingCode(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})

	rr := postJSON(t, h.VerifyOTP, "/v1/auth/verify-otp", map[string]string{"phone_number": "09120000000"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOTP_UnknownUser(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "09120000000", "123456").Return(nil, domain.ErrNotFound)
	h := NewAuthHandler(svc, &mockSessionSvc{})

	rr := postJSON(t, h.VerifyOTP, "/v1/auth/verify-otp", map[string]string{
		"phone_number": "09120000000", "code": "123456",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "09120000000", "123456").Return(&auth.VerifyResult{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: auth.UserInfo{
			ID:       "user-1",
			Username: "09120000000",
		},
	}, nil)
	h := NewAuthHandler(svc, &mockSessionSvc{})

	rr := postJSON(t, h.VerifyOTP, "/v1/auth/verify-otp", map[string]string{
		"phone_number": "09120000000", "code": "123456",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var env AuthEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "access-token", env.Access)
	assert.Equal(t, "refresh-token", env.Refresh)
	require.NotNil(t, env.User)
}

// --- Refresh / Logout ---

func TestRefresh_Unauthorized(t *testing.T) {
	svc := &mockSessionSvc{}
	svc.On("Refresh", mock.Anything, "tok-revoked").Return("", domain.ErrUnauthorized)
	h := NewAuthHandler(&mockAuthSvc{}, svc)

	rr := postJSON(t, h.Refresh, "/v1/auth/refresh-token", map[string]string{"refresh": "tok-revoked"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRefresh_Success(t *testing.T) {
	svc := &mockSessionSvc{}
	svc.On("Refresh", mock.Anything, "tok-live").Return("new-access", nil)
	h := NewAuthHandler(&mockAuthSvc{}, svc)

	rr := postJSON(t, h.Refresh, "/v1/auth/refresh-token", map[string]string{"refresh": "tok-live"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var env AuthEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "new-access", env.Access)
}

func TestLogout_UnknownToken(t *testing.T) {
	svc := &mockSessionSvc{}
	svc.On("Revoke", mock.Anything, "tok-unknown").Return(domain.ErrBadRequest)
	h := NewAuthHandler(&mockAuthSvc{}, svc)

	rr := postJSON(t, h.Logout, "/v1/user/auth/logout", map[string]string{"refresh": "tok-unknown"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogout_ResetContent(t *testing.T) {
	svc := &mockSessionSvc{}
	svc.On("Revoke", mock.Anything, "tok-live").Return(nil)
	h := NewAuthHandler(&mockAuthSvc{}, svc)

	rr := postJSON(t, h.Logout, "/v1/user/auth/logout", map[string]string{"refresh": "tok-live"})
	assert.Equal(t, http.StatusResetContent, rr.Code)
}
