package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/logger"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

// SessionSecretKey is where the credential pair lives in the secret store.
const SessionSecretKey = "snapfeed/session"

const refreshFlightKey = "session-refresh"

// SessionService owns the access/refresh credential pair. It is the only
// writer of the Session: login and the refresh exchange install a whole
// pair, logout removes it. The pair is mirrored into the secret store so
// it survives process restarts.
type SessionService struct {
	api      ports.AuthAPI
	store    ports.SecretStore
	profiles ports.ProfileRepository
	log      *logger.Logger

	mu        sync.RWMutex
	session   domain.Session
	challenge *domain.OtpChallenge

	refreshGroup singleflight.Group
}

func NewSessionService(api ports.AuthAPI, store ports.SecretStore, profiles ports.ProfileRepository, log *logger.Logger) *SessionService {
	if log == nil {
		log = logger.Discard()
	}

	return &SessionService{
		api:      api,
		store:    store,
		profiles: profiles,
		log:      log,
	}
}

// Restore loads a previously persisted session into memory. A missing or
// unreadable secret leaves the service signed out; it is not an error.
func (s *SessionService) Restore(ctx context.Context) {
	raw, err := s.store.Get(ctx, SessionSecretKey)
	if err != nil {
		return
	}

	session, err := decodeSession(raw)
	if err != nil || !session.Valid() {
		s.log.Warn("discarding unreadable session secret")
		_ = s.store.Delete(ctx, SessionSecretKey)
		return
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

// Authenticated reports whether a whole credential pair is held.
func (s *SessionService) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Valid()
}

// AccessToken returns the current bearer credential, if any. Used by the
// auth transport before each dispatch; no token means the request goes
// out unauthenticated and the server rejects it.
func (s *SessionService) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.Valid() {
		return "", false
	}
	return s.session.AccessToken, true
}

// RefreshAccessToken exchanges the refresh token for a new pair. At most
// one exchange is in flight at any time: concurrent callers wait on the
// same flight and observe the same outcome, so a single-use refresh token
// is never raced.
//
// A server-side rejection of the refresh token clears the session
// entirely (logout semantics). A network failure leaves the session
// untouched so a later attempt can still succeed.
func (s *SessionService) RefreshAccessToken(ctx context.Context) (string, error) {
	token, err, _ := s.refreshGroup.Do(refreshFlightKey, func() (any, error) {
		s.mu.RLock()
		refreshToken := s.session.RefreshToken
		s.mu.RUnlock()

		if refreshToken == "" {
			return "", domain.ErrNoSession
		}

		session, err := s.api.RefreshToken(ctx, refreshToken)
		if err != nil {
			if !domain.IsNetworkError(err) {
				s.log.Info("refresh token rejected, clearing session")
				s.clearSession(ctx)
			}
			return "", fmt.Errorf("refresh exchange: %w", err)
		}

		if err := s.installSession(ctx, session); err != nil {
			return "", err
		}

		return session.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

// Login authenticates with username/password. With 2FA enabled the server
// answers with a challenge instead of tokens; the caller finishes the
// flow with Verify2FA.
func (s *SessionService) Login(ctx context.Context, username, password string) (requires2FA bool, err error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return false, &domain.ValidationError{Message: "username and password are required"}
	}

	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}

	if result.Requires2FA {
		s.setChallenge(&domain.OtpChallenge{
			Identifier: username,
			Message:    result.Detail,
			Purpose:    domain.OtpPurposeLogin,
		})
		return true, nil
	}

	return false, s.completeSignIn(ctx, result)
}

// Verify2FA completes a login flow that answered with a 2FA challenge.
func (s *SessionService) Verify2FA(ctx context.Context, code string) error {
	challenge, ok := s.Challenge()
	if !ok || challenge.Purpose != domain.OtpPurposeLogin {
		return errors.New("no login verification outstanding")
	}

	result, err := s.api.Verify2FA(ctx, challenge.Identifier, code)
	if err != nil {
		return fmt.Errorf("verify 2fa: %w", err)
	}

	return s.completeSignIn(ctx, result)
}

func (s *SessionService) completeSignIn(ctx context.Context, result ports.LoginResult) error {
	if err := s.installSession(ctx, result.Session); err != nil {
		return err
	}
	s.setChallenge(nil)

	if s.profiles != nil && result.Profile.ID != 0 {
		if err := s.profiles.Save(ctx, result.Profile); err != nil {
			s.log.Warn("persist profile snapshot failed", "error", err)
		}
	}

	s.log.Info("signed in", "username", result.Profile.Username)
	return nil
}

// Register creates a new account; the server mails an OTP which the
// caller submits through VerifyOTP.
func (s *SessionService) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	result, err := s.api.Register(ctx, firstName, lastName, email, password)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	s.setChallenge(&domain.OtpChallenge{
		Identifier: result.Username,
		Message:    result.Detail,
		Purpose:    domain.OtpPurposeRegister,
	})

	return result.Username, nil
}

// VerifyOTP confirms a freshly registered account.
func (s *SessionService) VerifyOTP(ctx context.Context, code string) error {
	challenge, ok := s.Challenge()
	if !ok || challenge.Purpose != domain.OtpPurposeRegister {
		return errors.New("no registration verification outstanding")
	}

	if err := s.api.VerifyOTP(ctx, challenge.Identifier, code); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}

	s.setChallenge(nil)
	return nil
}

// VerifyAccount confirms an account registered in an earlier run, when
// no challenge survives in memory.
func (s *SessionService) VerifyAccount(ctx context.Context, username, code string) error {
	if strings.TrimSpace(username) == "" {
		return &domain.ValidationError{Message: "username is required"}
	}

	if err := s.api.VerifyOTP(ctx, username, code); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}

	s.setChallenge(nil)
	return nil
}

func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	detail, err := s.api.RequestPasswordReset(ctx, email)
	if err != nil {
		return "", fmt.Errorf("request password reset: %w", err)
	}

	s.setChallenge(&domain.OtpChallenge{
		Identifier: email,
		Message:    detail,
		Purpose:    domain.OtpPurposeReset,
	})

	return detail, nil
}

func (s *SessionService) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if err := s.api.ConfirmPasswordReset(ctx, email, code, newPassword); err != nil {
		return fmt.Errorf("confirm password reset: %w", err)
	}

	s.setChallenge(nil)
	return nil
}

func (s *SessionService) PreviewUsername(ctx context.Context, firstName, lastName, email string) (string, error) {
	return s.api.PreviewUsername(ctx, firstName, lastName, email)
}

// Challenge returns the pending OTP challenge, if a flow is
// mid-verification.
func (s *SessionService) Challenge() (domain.OtpChallenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.challenge == nil {
		return domain.OtpChallenge{}, false
	}
	return *s.challenge, true
}

// AbandonChallenge drops a pending OTP challenge without completing it.
func (s *SessionService) AbandonChallenge() {
	s.setChallenge(nil)
}

// Logout clears the session from memory, the secret store, and the
// profile snapshot. Idempotent; never fails.
func (s *SessionService) Logout(ctx context.Context) {
	s.clearSession(ctx)
	s.setChallenge(nil)
	if s.profiles != nil {
		if err := s.profiles.Clear(ctx); err != nil {
			s.log.Warn("clear profile snapshot failed", "error", err)
		}
	}
	s.log.Info("signed out")
}

func (s *SessionService) installSession(ctx context.Context, session domain.Session) error {
	if !session.Valid() {
		return errors.New("refusing to install a partial session")
	}

	// Persist first so a crash between the two steps leaves the durable
	// copy whole.
	if err := s.store.Put(ctx, SessionSecretKey, encodeSession(session)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return nil
}

func (s *SessionService) clearSession(ctx context.Context) {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.store.Delete(ctx, SessionSecretKey); err != nil {
		s.log.Warn("remove session secret failed", "error", err)
	}
}

func (s *SessionService) setChallenge(challenge *domain.OtpChallenge) {
	s.mu.Lock()
	s.challenge = challenge
	s.mu.Unlock()
}

func encodeSession(session domain.Session) string {
	payload, _ := json.Marshal(session)
	return string(payload)
}

func decodeSession(raw string) (domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return domain.Session{}, fmt.Errorf("decode session secret: %w", err)
	}
	return session, nil
}
