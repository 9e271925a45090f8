package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode_AlwaysSixDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestNewCode_OtherLengths(t *testing.T) {
	code, err := NewCode(4)
	require.NoError(t, err)
	assert.Len(t, code, 4)
}

func TestNewPlaceholderPassword_Length(t *testing.T) {
	pw, err := NewPlaceholderPassword(12)
	require.NoError(t, err)
	assert.Len(t, pw, 12)
}
