package domain

// Course is the top-level catalog entity. Category and teacher links are
// stored as ID lists on the item; prices are in the smallest currency unit.
type Course struct {
	CourseID                string   `json:"id" dynamodbav:"course_id"`
	Title                   string   `json:"title" dynamodbav:"title"`
	Description             string   `json:"description" dynamodbav:"description"`
	BannerKey               string   `json:"banner_key,omitempty" dynamodbav:"banner_key"`
	HasInstallmentPayment   bool     `json:"has_installment_payment" dynamodbav:"has_installment_payment"`
	InstallmentPaymentCount int      `json:"installment_payment_count" dynamodbav:"installment_payment_count"`
	CurrentPrice            int64    `json:"current_price" dynamodbav:"current_price"`
	DiscountedPrice         int64    `json:"discounted_price" dynamodbav:"discounted_price"`
	TotalHours              int      `json:"total_hours" dynamodbav:"total_hours"`
	CategoryIDs             []string `json:"category_ids" dynamodbav:"category_ids"`
	TeacherIDs              []string `json:"teacher_ids" dynamodbav:"teacher_ids"`
}

type CourseInput struct {
	Title                   string   `json:"title" validate:"required,max=255"`
	Description             string   `json:"description" validate:"required"`
	BannerKey               string   `json:"banner_key"`
	HasInstallmentPayment   *bool    `json:"has_installment_payment"`
	InstallmentPaymentCount int      `json:"installment_payment_count" validate:"omitempty,min=1"`
	CurrentPrice            int64    `json:"current_price" validate:"min=0"`
	DiscountedPrice         int64    `json:"discounted_price" validate:"min=0"`
	TotalHours              int      `json:"total_hours" validate:"min=1"`
	CategoryIDs             []string `json:"category_ids"`
	TeacherIDs              []string `json:"teacher_ids"`
}

// Season is a named group of lessons inside a course.
type Season struct {
	SeasonID string `json:"id" dynamodbav:"season_id"`
	CourseID string `json:"course_id" dynamodbav:"course_id"`
	Name     string `json:"name" dynamodbav:"name"`
}

type SeasonInput struct {
	CourseID string `json:"course_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

// Lesson is a single video lesson inside a season.
type Lesson struct {
	LessonID        string `json:"id" dynamodbav:"lesson_id"`
	SeasonID        string `json:"season_id" dynamodbav:"season_id"`
	Title           string `json:"title" dynamodbav:"title"`
	VideoURL        string `json:"video_url" dynamodbav:"video_url"`
	DurationMinutes int    `json:"duration_minutes" dynamodbav:"duration_minutes"`
	IsFree          bool   `json:"is_free" dynamodbav:"is_free"`
}

type LessonInput struct {
	SeasonID        string `json:"season_id" validate:"required"`
	Title           string `json:"title" validate:"required,max=255"`
	VideoURL        string `json:"video_url" validate:"required,url"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	IsFree          *bool  `json:"is_free"`
}

// UpdateCourseRequest carries optional fields for partial updates.
type UpdateCourseRequest struct {
	Title                   *string   `json:"title" validate:"omitempty,max=255"`
	Description             *string   `json:"description"`
	BannerKey               *string   `json:"banner_key"`
	HasInstallmentPayment   *bool     `json:"has_installment_payment"`
	InstallmentPaymentCount *int      `json:"installment_payment_count" validate:"omitempty,min=1"`
	CurrentPrice            *int64    `json:"current_price" validate:"omitempty,min=0"`
	DiscountedPrice         *int64    `json:"discounted_price" validate:"omitempty,min=0"`
	TotalHours              *int      `json:"total_hours" validate:"omitempty,min=1"`
	CategoryIDs             *[]string `json:"category_ids"`
	TeacherIDs              *[]string `json:"teacher_ids"`
}

// UpdateSeasonRequest carries optional fields for partial updates.
type UpdateSeasonRequest struct {
	CourseID *string `json:"course_id"`
	Name     *string `json:"name" validate:"omitempty,max=100"`
}

// UpdateLessonRequest carries optional fields for partial updates.
type UpdateLessonRequest struct {
	SeasonID        *string `json:"season_id"`
	Title           *string `json:"title" validate:"omitempty,max=255"`
	VideoURL        *string `json:"video_url" validate:"omitempty,url"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1"`
	IsFree          *bool   `json:"is_free"`
}
