package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewCode generates a numeric one-time code of the given length.
// Leading zeros are preserved, so "004217" is a valid 6-digit code.
func NewCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

// NewPlaceholderPassword generates a random alphanumeric string used as the
// unusable credential for accounts provisioned during the OTP flow.
func NewPlaceholderPassword(n int) (string, error) {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		b[i] = letters[idx.Int64()]
	}
	return string(b), nil
}
