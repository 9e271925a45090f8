package domain

import "time"

// Textbook is a PDF document stored in S3 under PDFKey.
type Textbook struct {
	TextbookID  string    `json:"id" dynamodbav:"textbook_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	PDFKey      string    `json:"pdf_key" dynamodbav:"pdf_key"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type TextbookInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	// PDFBase64 carries the document body on create/update; optional on update.
	PDFBase64 string `json:"pdf_file,omitempty"`
}

// UpdateTextbookRequest carries optional fields for partial updates.
// A new PDF body replaces the stored object under the same key.
type UpdateTextbookRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	PDFBase64   *string `json:"pdf_file"`
}
