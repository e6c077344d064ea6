package domain

// OtpPurpose names the flow an OTP challenge belongs to.
type OtpPurpose string

const (
	OtpPurposeRegister OtpPurpose = "register"
	OtpPurposeLogin    OtpPurpose = "login"
	OtpPurposeReset    OtpPurpose = "reset"
)

// OtpChallenge is held only while a login, registration, or password-reset
// flow is mid-verification. It is never persisted.
type OtpChallenge struct {
	Identifier string
	Message    string
	Purpose    OtpPurpose
}
