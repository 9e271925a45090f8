package domain

import "time"

// OTPValidity is the fixed window a code stays valid after creation,
// checked against the wall clock at verification time.
const OTPValidity = 2 * time.Minute

// OTPLength is the number of digits in a code. Leading zeros are significant,
// so codes are stored and compared as strings.
const OTPLength = 6

// OtpCode is the single live one-time code for a user.
// PK: user_id — writing a new code for the same user overwrites the old one,
// which is what enforces the at-most-one-live-code invariant.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL for housekeeping only;
// the authoritative validity check is CreatedAt + OTPValidity.
type OtpCode struct {
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Code      string    `json:"code" dynamodbav:"code"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}

// Expired reports whether the code is outside its validity window at the given instant.
func (o *OtpCode) Expired(now time.Time) bool {
	return now.After(o.CreatedAt.Add(OTPValidity))
}
