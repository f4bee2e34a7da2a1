package models

// EmailNotificationRequest is a single customer-facing email, typically an
// order receipt. Plain text is required; HTML is optional.
type EmailNotificationRequest struct {
	To          string `json:"to"      validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content" validate:"required"`
	HTMLContent string `json:"html_content,omitempty"`
}
