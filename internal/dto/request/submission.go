package request

import "strings"

type RequestOTPRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Email   string `json:"email" validate:"required,basic_email"`
	Country string `json:"country" validate:"required"`
}

// Trim strips surrounding whitespace so blank fields fail the required check
func (r *RequestOTPRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Contact = strings.TrimSpace(r.Contact)
	r.Email = strings.TrimSpace(r.Email)
	r.Country = strings.TrimSpace(r.Country)
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

func (r *VerifyOTPRequest) Trim() {
	r.Email = strings.TrimSpace(r.Email)
	r.OTP = strings.TrimSpace(r.OTP)
}

// SubmissionListRequest carries the admin listing query string
type SubmissionListRequest struct {
	PaginatedRequest
	Verified *bool
	Search   string
}
