package domain

// StudentInfo stores additional profile data for a student, linked
// one-to-one with a user account.
type StudentInfo struct {
	StudentID string `json:"id" dynamodbav:"student_id"`
	UserID    string `json:"user_id" dynamodbav:"user_id"`
	IDCode    string `json:"id_code" dynamodbav:"id_code"`
	Birthday  string `json:"birthday" dynamodbav:"birthday"` // YYYY-MM-DD
	Year      string `json:"year" dynamodbav:"year"`
	Gender    string `json:"gender" dynamodbav:"gender"` // "male" | "female"
}

type StudentInfoInput struct {
	UserID   string `json:"user_id" validate:"required"`
	IDCode   string `json:"id_code" validate:"required,len=10"`
	Birthday string `json:"birthday" validate:"required"`
	// Year runs from first grade through the pre-university year.
	Year   string `json:"year" validate:"required,oneof=one two three four five six seven eight nine ten eleven twelve thirteen"`
	Gender string `json:"gender" validate:"required,oneof=male female"`
}

// UpdateStudentInfoRequest carries optional fields for partial updates.
type UpdateStudentInfoRequest struct {
	IDCode   *string `json:"id_code" validate:"omitempty,len=10"`
	Birthday *string `json:"birthday"`
	Year     *string `json:"year" validate:"omitempty,oneof=one two three four five six seven eight nine ten eleven twelve thirteen"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=male female"`
}
