package domain

import "time"

// Session is created on successful OTP verification. The refresh token is an
// opaque random value looked up via the refresh_token-index GSI. Revocation is
// one-directional: once Revoked is set the session can never mint access
// tokens again, even before RefreshExpiresAt.
type Session struct {
	SessionID        string    `json:"id" dynamodbav:"session_id"`
	UserID           string    `json:"user_id" dynamodbav:"user_id"`
	RefreshToken     string    `json:"-" dynamodbav:"refresh_token"`
	RefreshExpiresAt int64     `json:"refresh_expires_at" dynamodbav:"refresh_expires_at"` // Unix seconds
	Revoked          bool      `json:"revoked" dynamodbav:"revoked"`
	CreatedAt        time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated" dynamodbav:"updated_at"`
}
