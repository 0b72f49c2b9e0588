package entity

import "time"

// Submission is a pricing access request, one per normalized email.
// OTPHash and OTPExpiresAt are set together while a code is pending and
// cleared together once it is confirmed.
type Submission struct {
	BaseNoDelete
	Name         string     `db:"name"`
	Contact      string     `db:"contact"`
	Email        string     `db:"email"`
	Country      string     `db:"country"`
	OTPHash      *string    `db:"otp_hash"`
	OTPExpiresAt *time.Time `db:"otp_expires_at"`
	Verified     bool       `db:"verified"`
}

// HasPendingOTP reports whether a code is waiting to be confirmed
func (s *Submission) HasPendingOTP() bool {
	return s.OTPHash != nil && s.OTPExpiresAt != nil
}
