package response

import (
	"time"

	"pricing-cms/internal/data/entity"
)

// VerifiedSubmissionResponse is returned once a code is confirmed
type VerifiedSubmissionResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// SubmissionResponse is the admin view. The OTP hash is never exposed.
type SubmissionResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Contact      string     `json:"contact"`
	Email        string     `json:"email"`
	Country      string     `json:"country"`
	Verified     bool       `json:"verified"`
	OTPPending   bool       `json:"otp_pending"`
	OTPExpiresAt *time.Time `json:"otp_expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func VerifiedSubmissionToResponse(s *entity.Submission) VerifiedSubmissionResponse {
	return VerifiedSubmissionResponse{
		Name:    s.Name,
		Email:   s.Email,
		Country: s.Country,
	}
}

func SubmissionToResponse(s *entity.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Contact:      s.Contact,
		Email:        s.Email,
		Country:      s.Country,
		Verified:     s.Verified,
		OTPPending:   s.HasPendingOTP(),
		OTPExpiresAt: s.OTPExpiresAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
