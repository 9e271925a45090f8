package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/id"
	pkgotp "github.com/elearn-api/internal/pkg/otp"
	pkgtoken "github.com/elearn-api/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// VerifyResult is returned on successful OTP verification.
type VerifyResult struct {
	AccessToken  string
	RefreshToken string
	User         UserInfo
}

// UserInfo is the minimal identity payload included in the verify response.
type UserInfo struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	IsAdmin        bool   `json:"is_admin"`
	HasStudentInfo bool   `json:"has_student_info"`
}

type Service interface {
	// SendOTP issues a fresh code for the phone number, creating the account
	// on first contact, and delivers it over SMS.
	SendOTP(ctx context.Context, phoneNumber string) error
	// VerifyOTP checks the submitted code and, on success, consumes it and
	// mints a token pair.
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*VerifyResult, error)
}

type userStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type otpStore interface {
	Put(ctx context.Context, o *domain.OtpCode) error
	Get(ctx context.Context, userID string) (*domain.OtpCode, error)
	Delete(ctx context.Context, userID string) error
}

type studentStore interface {
	ExistsForUser(ctx context.Context, userID string) (bool, error)
}

type sessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type jwtSigner interface {
	Sign(userID, username, role, sessionID string) (string, error)
}

// ServiceDeps bundles the collaborators of the auth service.
type ServiceDeps struct {
	UserRepo        userStore
	OtpRepo         otpStore
	StudentRepo     studentStore
	SessionRepo     sessionStore
	SMSSender       smsSender
	JWTProvider     jwtSigner
	RefreshTokenDur time.Duration
}

type service struct {
	deps ServiceDeps
}

func NewService(deps ServiceDeps) Service {
	return &service{deps: deps}
}

func (s *service) SendOTP(ctx context.Context, phoneNumber string) error {
	if phoneNumber == "" {
		return fmt.Errorf("phone_number required: %w", domain.ErrBadRequest)
	}

	u, err := s.deps.UserRepo.GetByUsername(ctx, phoneNumber)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		// First contact: provision the account. The password is a random
		// placeholder nobody can log in with — the OTP is the credential.
		u, err = s.provisionUser(ctx, phoneNumber)
		if err != nil {
			return err
		}
	}

	code, err := pkgotp.NewCode(domain.OTPLength)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	// PutItem on PK user_id replaces any earlier code, so re-requesting
	// before verification always leaves exactly one live code.
	record := &domain.OtpCode{
		UserID:    u.UserID,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.OTPValidity).Unix(),
	}
	if err := s.deps.OtpRepo.Put(ctx, record); err != nil {
		return err
	}

	if err := s.deps.SMSSender.SendSMS(ctx, phoneNumber, "Your verification code: "+code); err != nil {
		return fmt.Errorf("send otp sms: %v: %w", err, domain.ErrDelivery)
	}
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, phoneNumber, code string) (*VerifyResult, error) {
	if phoneNumber == "" || code == "" {
		return nil, fmt.Errorf("phone_number and code required: %w", domain.ErrBadRequest)
	}

	u, err := s.deps.UserRepo.GetByUsername(ctx, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	record, err := s.deps.OtpRepo.Get(ctx, u.UserID)
	if err != nil {
		return nil, fmt.Errorf("no OTP found: %w", domain.ErrNotFound)
	}
	if record.Expired(time.Now()) {
		return nil, fmt.Errorf("OTP expired: %w", domain.ErrBadRequest)
	}
	// Exact string compare: "012345" and "12345" are different codes.
	if record.Code != code {
		return nil, fmt.Errorf("invalid OTP: %w", domain.ErrBadRequest)
	}

	// Single use: consume before minting tokens so a second verify sees 404.
	if err := s.deps.OtpRepo.Delete(ctx, u.UserID); err != nil {
		return nil, fmt.Errorf("consume otp: %w", err)
	}

	hasStudentInfo, err := s.deps.StudentRepo.ExistsForUser(ctx, u.UserID)
	if err != nil {
		slog.Warn("student info lookup failed", "user_id", u.UserID, "err", err)
	}

	refreshToken, err := pkgtoken.NewRefreshToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sess := &domain.Session{
		SessionID:        id.New(),
		UserID:           u.UserID,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: now.Add(s.deps.RefreshTokenDur).Unix(),
		Revoked:          false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.deps.SessionRepo.Put(ctx, sess); err != nil {
		return nil, err
	}

	access, err := s.deps.JWTProvider.Sign(u.UserID, u.Username, u.Role, sess.SessionID)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		AccessToken:  access,
		RefreshToken: refreshToken,
		User: UserInfo{
			ID:             u.UserID,
			Username:       u.Username,
			IsAdmin:        u.IsAdmin(),
			HasStudentInfo: hasStudentInfo,
		},
	}, nil
}

func (s *service) provisionUser(ctx context.Context, phoneNumber string) (*domain.User, error) {
	placeholder, err := pkgotp.NewPlaceholderPassword(12)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     phoneNumber,
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.deps.UserRepo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
