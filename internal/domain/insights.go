package domain

import "time"

// Category groups courses on the public catalog.
type Category struct {
	CategoryID string `json:"id" dynamodbav:"category_id"`
	Title      string `json:"title" dynamodbav:"title"`
}

type CategoryInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

// FAQ is a question/answer pair attached to a course.
type FAQ struct {
	FAQID    string `json:"id" dynamodbav:"faq_id"`
	CourseID string `json:"course_id" dynamodbav:"course_id"`
	Question string `json:"question" dynamodbav:"question"`
	Answer   string `json:"answer" dynamodbav:"answer"`
}

type FAQInput struct {
	CourseID string `json:"course_id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Comment is a user comment on a course.
type Comment struct {
	CommentID string    `json:"id" dynamodbav:"comment_id"`
	CourseID  string    `json:"course_id" dynamodbav:"course_id"`
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Text      string    `json:"comment_text" dynamodbav:"comment_text"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

type CommentInput struct {
	CourseID string `json:"course_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	Text     string `json:"comment_text" validate:"required"`
}

// UpdateCategoryRequest carries optional fields for partial updates.
type UpdateCategoryRequest struct {
	Title *string `json:"title" validate:"omitempty,max=255"`
}

// UpdateFAQRequest carries optional fields for partial updates.
type UpdateFAQRequest struct {
	CourseID *string `json:"course_id"`
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// UpdateCommentRequest carries optional fields for partial updates.
type UpdateCommentRequest struct {
	Text *string `json:"comment_text"`
}
