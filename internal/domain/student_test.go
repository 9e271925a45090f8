package domain_test

import (
	"testing"

	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudentInput() domain.StudentInfoInput {
	return domain.StudentInfoInput{
		UserID:   "user-1",
		IDCode:   "0012345678",
		Birthday: "2008-03-14",
		Year:     "ten",
		Gender:   "male",
	}
}

func TestStudentInfoInput_YearEnumeration(t *testing.T) {
	input := validStudentInput()
	require.NoError(t, validate.Struct(input))

	for _, year := range []string{"fourteen", "10", "Ten", ""} {
		input.Year = year
		assert.Error(t, validate.Struct(input), "year %q should be rejected", year)
	}
}

func TestUpdateStudentInfoRequest_YearEnumeration(t *testing.T) {
	bad := "zero"
	assert.Error(t, validate.Struct(domain.UpdateStudentInfoRequest{Year: &bad}))

	ok := "thirteen"
	assert.NoError(t, validate.Struct(domain.UpdateStudentInfoRequest{Year: &ok}))
}
