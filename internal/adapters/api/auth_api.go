package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

// AuthAPI implements ports.AuthAPI over a Client without an auth
// transport: none of these endpoints require a bearer credential.
type AuthAPI struct {
	client *Client
}

var _ ports.AuthAPI = (*AuthAPI)(nil)

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type registerResponse struct {
	Detail   string `json:"detail"`
	Username string `json:"username"`
}

func (a *AuthAPI) Register(ctx context.Context, firstName, lastName, email, password string) (ports.RegisterResult, error) {
	var resp registerResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/register/", registerRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}, &resp)
	if err != nil {
		return ports.RegisterResult{}, err
	}

	return ports.RegisterResult{Username: resp.Username, Detail: resp.Detail}, nil
}

type verifyOTPRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

func (a *AuthAPI) VerifyOTP(ctx context.Context, username, code string) error {
	return a.client.do(ctx, http.MethodPost, "/auth/verify-otp/", verifyOTPRequest{Username: username, Code: code}, nil)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Bio              string `json:"bio"`
	ProfilePic       string `json:"profile_pic"`
	IsVerified       bool   `json:"is_verified"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
	BiometricEnabled bool   `json:"biometric_enabled"`
	IsPrivate        bool   `json:"is_private"`
}

type loginResponse struct {
	Access      string       `json:"access"`
	Refresh     string       `json:"refresh"`
	Detail      string       `json:"detail"`
	Requires2FA bool         `json:"requires_2fa"`
	User        *userPayload `json:"user"`
}

func (a *AuthAPI) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	var resp loginResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/login/", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return ports.LoginResult{}, err
	}

	return loginResultFrom(resp)
}

func (a *AuthAPI) Verify2FA(ctx context.Context, username, code string) (ports.LoginResult, error) {
	var resp loginResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/verify-2fa/", verifyOTPRequest{Username: username, Code: code}, &resp)
	if err != nil {
		return ports.LoginResult{}, err
	}

	return loginResultFrom(resp)
}

func loginResultFrom(resp loginResponse) (ports.LoginResult, error) {
	if resp.Requires2FA {
		return ports.LoginResult{Requires2FA: true, Detail: resp.Detail}, nil
	}

	session := domain.Session{AccessToken: resp.Access, RefreshToken: resp.Refresh}
	if !session.Valid() {
		return ports.LoginResult{}, errors.New("login response missing token pair")
	}

	result := ports.LoginResult{Session: session}
	if resp.User != nil {
		result.Profile = profileFrom(*resp.User)
	}

	return result, nil
}

func profileFrom(user userPayload) domain.Profile {
	return domain.Profile{
		ID:               domain.UserID(user.ID),
		Username:         user.Username,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Bio:              user.Bio,
		ProfilePicURL:    user.ProfilePic,
		IsVerified:       user.IsVerified,
		TwoFactorEnabled: user.TwoFactorEnabled,
		BiometricEnabled: user.BiometricEnabled,
		IsPrivate:        user.IsPrivate,
	}
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshToken exchanges the refresh token for a rotated pair. Some
// deployments rotate only the access token; the old refresh token is kept
// in that case.
func (a *AuthAPI) RefreshToken(ctx context.Context, refreshToken string) (domain.Session, error) {
	var resp refreshResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/token/refresh/", refreshRequest{Refresh: refreshToken}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{AccessToken: resp.Access, RefreshToken: resp.Refresh}
	if session.RefreshToken == "" {
		session.RefreshToken = refreshToken
	}
	if !session.Valid() {
		return domain.Session{}, errors.New("refresh response missing access token")
	}

	return session, nil
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetResponse struct {
	Detail string `json:"detail"`
}

func (a *AuthAPI) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var resp resetResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/reset-password/", resetRequest{Email: email}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Detail, nil
}

type resetConfirmRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

func (a *AuthAPI) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	return a.client.do(ctx, http.MethodPost, "/auth/reset-password/confirm/", resetConfirmRequest{
		Email:       email,
		Code:        code,
		NewPassword: newPassword,
	}, nil)
}

type usernamePreviewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type usernamePreviewResponse struct {
	Username string `json:"username"`
}

func (a *AuthAPI) PreviewUsername(ctx context.Context, firstName, lastName, email string) (string, error) {
	var resp usernamePreviewResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/username-preview/", usernamePreviewRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Username, nil
}
