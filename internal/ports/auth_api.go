package ports

import (
	"context"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

// LoginResult is the outcome of a credential login. Either the session is
// present, or Requires2FA is set and the flow continues with Verify2FA.
type LoginResult struct {
	Session     domain.Session
	Profile     domain.Profile
	Requires2FA bool
	Detail      string
}

// RegisterResult echoes the server-assigned username together with the
// OTP delivery notice.
type RegisterResult struct {
	Username string
	Detail   string
}

// AuthAPI covers the unauthenticated endpoints: account creation,
// credential login, OTP verification, password reset, and the refresh
// exchange.
type AuthAPI interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (RegisterResult, error)
	VerifyOTP(ctx context.Context, username, code string) error
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Verify2FA(ctx context.Context, username, code string) (LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (domain.Session, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	PreviewUsername(ctx context.Context, firstName, lastName, email string) (string, error)
}
