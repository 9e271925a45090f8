package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is an account keyed by phone number. Accounts are provisioned
// implicitly on the first OTP request: the username is the phone number and
// the password hash is a random unusable placeholder, because the OTP is the
// real authentication factor.
type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Username     string    `json:"username" dynamodbav:"username"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Role         string    `json:"role" dynamodbav:"role"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

// UpdateUserRequest carries optional fields for partial updates. Accounts are
// created through the OTP flow, so role promotion is the only admin write.
type UpdateUserRequest struct {
	Role *string `json:"role" validate:"omitempty,oneof=admin student"`
}

// IsAdmin reports whether the user holds elevated privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
