package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type mockOtpStore struct{ mock.Mock }

func (m *mockOtpStore) Put(ctx context.Context, o *domain.OtpCode) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOtpStore) Get(ctx context.Context, userID string) (*domain.OtpCode, error) {
	args := m.Called(ctx, userID)
	if o, _ := args.Get(0).(*domain.OtpCode); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOtpStore) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockStudentStore struct{ mock.Mock }

func (m *mockStudentStore) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Put(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}

type mockSMSSender struct{ mock.Mock }

func (m *mockSMSSender) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

type mockJWTSigner struct{ mock.Mock }

func (m *mockJWTSigner) Sign(userID, username, role, sessionID string) (string, error) {
	args := m.Called(userID, username, role, sessionID)
	return args.String(0), args.Error(1)
}

// --- builder ---

func newService(us *mockUserStore, os *mockOtpStore, st *mockStudentStore, ss *mockSessionStore, sms *mockSMSSender, jwt *mockJWTSigner) Service {
	return NewService(ServiceDeps{
		UserRepo:        us,
		OtpRepo:         os,
		StudentRepo:     st,
		SessionRepo:     ss,
		SMSSender:       sms,
		JWTProvider:     jwt,
		RefreshTokenDur: 30 * 24 * time.Hour,
	})
}

func existingUser() *domain.User {
	return &domain.User{
		UserID:   "user-1",
		Username: "09120000000",
		Role:     domain.RoleStudent,
	}
}

// --- SendOTP ---

func TestSendOTP_MissingPhone(t *testing.T) {
	svc := newService(nil, nil, nil, nil, nil, nil)
	err := svc.SendOTP(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestSendOTP_ExistingUser(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	os := &mockOtpStore{}
	var stored *domain.OtpCode
	os.On("Put", mock.Anything, mock.AnythingOfType("*domain.OtpCode")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.OtpCode) }).
		Return(nil)

	sms := &mockSMSSender{}
	sms.On("SendSMS", mock.Anything, "09120000000", mock.AnythingOfType("string")).Return(nil)

	svc := newService(us, os, nil, nil, sms, nil)
	err := svc.SendOTP(context.Background(), "09120000000")

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Len(t, stored.Code, domain.OTPLength)
	us.AssertExpectations(t)
	os.AssertExpectations(t)
	sms.AssertExpectations(t)
}

func TestSendOTP_ProvisionsAccountOnFirstContact(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09125550000").Return(nil, domain.ErrNotFound)
	var created *domain.User
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)

	os := &mockOtpStore{}
	os.On("Put", mock.Anything, mock.AnythingOfType("*domain.OtpCode")).Return(nil)

	sms := &mockSMSSender{}
	sms.On("SendSMS", mock.Anything, "09125550000", mock.AnythingOfType("string")).Return(nil)

	svc := newService(us, os, nil, nil, sms, nil)
	err := svc.SendOTP(context.Background(), "09125550000")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "09125550000", created.Username)
	assert.Equal(t, domain.RoleStudent, created.Role)
	assert.NotEmpty(t, created.PasswordHash)
}

func TestSendOTP_SecondIssueReplacesFirst(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	os := &mockOtpStore{}
	var codes []string
	os.On("Put", mock.Anything, mock.AnythingOfType("*domain.OtpCode")).
		Run(func(args mock.Arguments) {
			codes = append(codes, args.Get(1).(*domain.OtpCode).Code)
		}).
		Return(nil)

	sms := &mockSMSSender{}
	sms.On("SendSMS", mock.Anything, "09120000000", mock.AnythingOfType("string")).Return(nil)

	svc := newService(us, os, nil, nil, sms, nil)
	require.NoError(t, svc.SendOTP(context.Background(), "09120000000"))
	require.NoError(t, svc.SendOTP(context.Background(), "09120000000"))

	// Both writes hit the same key, so the second overwrites the first:
	// at most one live code per owner.
	require.Len(t, codes, 2)
	os.AssertNumberOfCalls(t, "Put", 2)
}

func TestSendOTP_SMSFailureIsDeliveryError(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	os := &mockOtpStore{}
	os.On("Put", mock.Anything, mock.AnythingOfType("*domain.OtpCode")).Return(nil)

	sms := &mockSMSSender{}
	sms.On("SendSMS", mock.Anything, "09120000000", mock.AnythingOfType("string")).
		Return(errors.New("sns unavailable"))

	svc := newService(us, os, nil, nil, sms, nil)
	err := svc.SendOTP(context.Background(), "09120000000")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDelivery))
	assert.False(t, errors.Is(err, domain.ErrBadRequest))
}

// --- VerifyOTP ---

func liveOtp(code string, age time.Duration) *domain.OtpCode {
	created := time.Now().UTC().Add(-age)
	return &domain.OtpCode{
		UserID:    "user-1",
		Code:      code,
		CreatedAt: created,
		ExpiresAt: created.Add(domain.OTPValidity).Unix(),
	}
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	svc := newService(nil, nil, nil, nil, nil, nil)

	_, err := svc.VerifyOTP(context.Background(), "", "123456")
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	_, err = svc.VerifyOTP(context.Background(), "09120000000", "")
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestVerifyOTP_UnknownUser(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(nil, domain.ErrNotFound)

	svc := newService(us, nil, nil, nil, nil, nil)
	_, err := svc.VerifyOTP(context.Background(), "09120000000", "123456")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVerifyOTP_NoStoredCode(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	os := &mockOtpStore{}
	os.On("Get", mock.Anything, "user-1").Return(nil, domain.ErrNotFound)

	svc := newService(us, os, nil, nil, nil, nil)
	_, err := svc.VerifyOTP(context.Background(), "09120000000", "123456")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVerifyOTP_WithinWindow(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	// Issued 90 seconds ago: still inside the 2-minute window.
	os := &mockOtpStore{}
	os.On("Get", mock.Anything, "user-1").Return(liveOtp("123456", 90*time.Second), nil)
	os.On("Delete", mock.Anything, "user-1").Return(nil)

	st := &mockStudentStore{}
	st.On("ExistsForUser", mock.Anything, "user-1").Return(false, nil)

	ss := &mockSessionStore{}
	var sess *domain.Session
	ss.On("Put", mock.Anything, mock.AnythingOfType("*domain.Session")).
		Run(func(args mock.Arguments) { sess = args.Get(1).(*domain.Session) }).
		Return(nil)

	jwt := &mockJWTSigner{}
	jwt.On("Sign", "user-1", "09120000000", domain.RoleStudent, mock.AnythingOfType("string")).
		Return("access-token", nil)

	svc := newService(us, os, st, ss, nil, jwt)
	result, err := svc.VerifyOTP(context.Background(), "09120000000", "123456")

	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "user-1", result.User.ID)
	assert.False(t, result.User.IsAdmin)
	assert.False(t, result.User.HasStudentInfo)

	require.NotNil(t, sess)
	assert.Equal(t, result.RefreshToken, sess.RefreshToken)
	assert.False(t, sess.Revoked)
	os.AssertCalled(t, "Delete", mock.Anything, "user-1")
}

func TestVerifyOTP_ExpiredJustPastWindow(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	// One second past the 2-minute window.
	os := &mockOtpStore{}
	os.On("Get", mock.Anything, "user-1").Return(liveOtp("123456", domain.OTPValidity+time.Second), nil)

	svc := newService(us, os, nil, nil, nil, nil)
	_, err := svc.VerifyOTP(context.Background(), "09120000000", "123456")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	os.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVerifyOTP_CodeMismatch(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	os := &mockOtpStore{}
	os.On("Get", mock.Anything, "user-1").Return(liveOtp("012345", time.Minute), nil)

	svc := newService(us, os, nil, nil, nil, nil)

	// Leading zero matters: "12345" is not "012345".
	_, err := svc.VerifyOTP(context.Background(), "09120000000", "12345")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	os.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVerifyOTP_SingleUse(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(existingUser(), nil)

	os := &mockOtpStore{}
	// First verify finds the code; after the delete the second finds nothing.
	os.On("Get", mock.Anything, "user-1").Return(liveOtp("123456", time.Minute), nil).Once()
	os.On("Get", mock.Anything, "user-1").Return(nil, domain.ErrNotFound).Once()
	os.On("Delete", mock.Anything, "user-1").Return(nil)

	st := &mockStudentStore{}
	st.On("ExistsForUser", mock.Anything, "user-1").Return(true, nil)

	ss := &mockSessionStore{}
	ss.On("Put", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil)

	jwt := &mockJWTSigner{}
	jwt.On("Sign", "user-1", "09120000000", domain.RoleStudent, mock.AnythingOfType("string")).
		Return("access-token", nil)

	svc := newService(us, os, st, ss, nil, jwt)

	_, err := svc.VerifyOTP(context.Background(), "09120000000", "123456")
	require.NoError(t, err)

	_, err = svc.VerifyOTP(context.Background(), "09120000000", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVerifyOTP_AdminFlag(t *testing.T) {
	admin := existingUser()
	admin.Role = domain.RoleAdmin

	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "09120000000").Return(admin, nil)

	os := &mockOtpStore{}
	os.On("Get", mock.Anything, "user-1").Return(liveOtp("123456", time.Minute), nil)
	os.On("Delete", mock.Anything, "user-1").Return(nil)

	st := &mockStudentStore{}
	st.On("ExistsForUser", mock.Anything, "user-1").Return(true, nil)

	ss := &mockSessionStore{}
	ss.On("Put", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil)

	jwt := &mockJWTSigner{}
	jwt.On("Sign", "user-1", "09120000000", domain.RoleAdmin, mock.AnythingOfType("string")).
		Return("access-token", nil)

	svc := newService(us, os, st, ss, nil, jwt)
	result, err := svc.VerifyOTP(context.Background(), "09120000000", "123456")

	require.NoError(t, err)
	assert.True(t, result.User.IsAdmin)
	assert.True(t, result.User.HasStudentInfo)
}
