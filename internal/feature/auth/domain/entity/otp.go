package entity

import "time"

// OTPPurpose discriminates the two one-time-code flows. Each purpose owns an
// independent slot on the user record.
type OTPPurpose string

const (
	// OTPSignup verifies control of the email address during registration.
	OTPSignup OTPPurpose = "signup"
	// OTPReset authorizes a password reset.
	OTPReset OTPPurpose = "reset"
)

// OTPSlot is a view over one purpose's code state on a user record.
type OTPSlot struct {
	Hash    string
	Expires *time.Time
}

// Slot returns the code state for the given purpose.
func (u *User) Slot(p OTPPurpose) OTPSlot {
	if p == OTPReset {
		return OTPSlot{Hash: u.ResetOTPHash, Expires: u.ResetOTPExpires}
	}
	return OTPSlot{Hash: u.SignupOTPHash, Expires: u.SignupOTPExpires}
}

// SetSlot overwrites the code state for the given purpose, superseding any
// pending code for that purpose.
func (u *User) SetSlot(p OTPPurpose, hash string, expires *time.Time) {
	if p == OTPReset {
		u.ResetOTPHash = hash
		u.ResetOTPExpires = expires
		return
	}
	u.SignupOTPHash = hash
	u.SignupOTPExpires = expires
}

// ClearSlot empties the code state for the given purpose. Called exactly once
// on successful verification (single-use consumption).
func (u *User) ClearSlot(p OTPPurpose) {
	u.SetSlot(p, "", nil)
}
