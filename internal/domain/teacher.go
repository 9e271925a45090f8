package domain

// Teacher is a course instructor shown on the public catalog.
type Teacher struct {
	TeacherID string `json:"id" dynamodbav:"teacher_id"`
	FullName  string `json:"full_name" dynamodbav:"full_name"`
	About     string `json:"about" dynamodbav:"about"`
}

type TeacherInput struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	About    string `json:"about" validate:"required"`
}

// UpdateTeacherRequest carries optional fields for partial updates.
type UpdateTeacherRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	About    *string `json:"about"`
}
