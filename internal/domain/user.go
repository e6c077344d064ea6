package domain

type UserID int64

// Profile is the cached snapshot of the signed-in user, mirrored locally
// so preferences (biometric lock, 2FA) survive process restarts.
type Profile struct {
	ID               UserID
	Username         string
	FirstName        string
	LastName         string
	Email            string
	Bio              string
	ProfilePicURL    string
	IsVerified       bool
	TwoFactorEnabled bool
	BiometricEnabled bool
	IsPrivate        bool
}

// UserSummary is the shape returned by list endpoints (followers,
// following, search).
type UserSummary struct {
	ID        UserID
	Username  string
	FirstName string
	LastName  string
	IsPrivate bool
}
