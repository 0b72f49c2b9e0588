package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOTP covers unknown email, no pending code and wrong code alike
	ErrInvalidOTP = errors.New("invalid OTP or email")
	ErrOTPExpired = errors.New("OTP has expired")

	ErrStorage            = errors.New("failed to process submission")
	ErrEmailDelivery      = errors.New("failed to send OTP email")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidID          = errors.New("invalid submission id")
)

// ValidationError is returned before any side effect when input is rejected
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d fields)", e.Message, len(e.Fields))
}
