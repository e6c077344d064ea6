package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
	"github.com/bnema/snapfeed-cli/internal/ports/mocks"
)

func TestSessionServiceRestoreLoadsPersistedPair(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), SessionSecretKey).
		Return(`{"access":"access-1","refresh":"refresh-1"}`, nil)

	service.Restore(context.Background())

	require.True(t, service.Authenticated())
	token, ok := service.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "access-1", token)
}

func TestSessionServiceRestoreDiscardsCorruptSecret(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), SessionSecretKey).Return("not json", nil)
	store.EXPECT().Delete(mockAnyContext(), SessionSecretKey).Return(nil)

	service.Restore(context.Background())

	assert.False(t, service.Authenticated())
}

func TestSessionServiceRefreshWithoutSessionReturnsErrNoSession(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	_, err := service.RefreshAccessToken(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionServiceRefreshSingleFlightUnderConcurrentCallers(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), SessionSecretKey).
		Return(`{"access":"stale","refresh":"refresh-1"}`, nil)
	service.Restore(context.Background())

	rotated := domain.Session{AccessToken: "access-2", RefreshToken: "refresh-2"}
	release := make(chan struct{})
	var exchanges atomic.Int32

	api.EXPECT().RefreshToken(mockAnyContext(), "refresh-1").
		RunAndReturn(func(context.Context, string) (domain.Session, error) {
			exchanges.Add(1)
			<-release
			return rotated, nil
		}).Once()
	store.EXPECT().Put(mockAnyContext(), SessionSecretKey, encodeSession(rotated)).Return(nil).Once()

	const callers = 8
	tokens := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = service.RefreshAccessToken(context.Background())
		}(i)
	}

	// Let every caller join the in-flight exchange before it completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), exchanges.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "access-2", tokens[i])
	}
}

func TestSessionServiceRefreshRejectionClearsSession(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), SessionSecretKey).
		Return(`{"access":"stale","refresh":"refresh-1"}`, nil)
	service.Restore(context.Background())

	api.EXPECT().RefreshToken(mockAnyContext(), "refresh-1").
		Return(domain.Session{}, &domain.AuthorizationError{Status: 401, Message: "token blacklisted"})
	store.EXPECT().Delete(mockAnyContext(), SessionSecretKey).Return(nil)

	_, err := service.RefreshAccessToken(context.Background())
	require.Error(t, err)
	assert.False(t, service.Authenticated())
}

func TestSessionServiceRefreshNetworkFailureKeepsSession(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), SessionSecretKey).
		Return(`{"access":"stale","refresh":"refresh-1"}`, nil)
	service.Restore(context.Background())

	api.EXPECT().RefreshToken(mockAnyContext(), "refresh-1").
		Return(domain.Session{}, &domain.NetworkError{Op: "POST /auth/token/refresh/", Err: errors.New("connection refused")})

	_, err := service.RefreshAccessToken(context.Background())
	require.Error(t, err)
	assert.True(t, service.Authenticated(), "a network failure must not sign the user out")
}

func TestSessionServiceLoginInstallsSessionAndProfile(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	profiles := mocks.NewMockProfileRepository(t)
	service := NewSessionService(api, store, profiles, nil)

	session := domain.Session{AccessToken: "access-1", RefreshToken: "refresh-1"}
	profile := domain.Profile{ID: 7, Username: "ada.lovelace", BiometricEnabled: true}

	api.EXPECT().Login(mockAnyContext(), "ada.lovelace", "pw").
		Return(ports.LoginResult{Session: session, Profile: profile}, nil)
	store.EXPECT().Put(mockAnyContext(), SessionSecretKey, encodeSession(session)).Return(nil)
	profiles.EXPECT().Save(mockAnyContext(), profile).Return(nil)

	requires2FA, err := service.Login(context.Background(), "ada.lovelace", "pw")
	require.NoError(t, err)
	assert.False(t, requires2FA)
	assert.True(t, service.Authenticated())

	_, pending := service.Challenge()
	assert.False(t, pending)
}

func TestSessionServiceLoginRejectsBlankCredentials(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	_, err := service.Login(context.Background(), "  ", "pw")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestSessionServiceLoginWith2FACompletesThroughVerify(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	api.EXPECT().Login(mockAnyContext(), "ada.lovelace", "pw").
		Return(ports.LoginResult{Requires2FA: true, Detail: "OTP sent to your email."}, nil)

	requires2FA, err := service.Login(context.Background(), "ada.lovelace", "pw")
	require.NoError(t, err)
	require.True(t, requires2FA)
	assert.False(t, service.Authenticated(), "no tokens may be held before the 2FA step")

	challenge, pending := service.Challenge()
	require.True(t, pending)
	assert.Equal(t, domain.OtpPurposeLogin, challenge.Purpose)
	assert.Equal(t, "ada.lovelace", challenge.Identifier)

	session := domain.Session{AccessToken: "access-1", RefreshToken: "refresh-1"}
	api.EXPECT().Verify2FA(mockAnyContext(), "ada.lovelace", "123456").
		Return(ports.LoginResult{Session: session}, nil)
	store.EXPECT().Put(mockAnyContext(), SessionSecretKey, encodeSession(session)).Return(nil)

	require.NoError(t, service.Verify2FA(context.Background(), "123456"))
	assert.True(t, service.Authenticated())

	_, pending = service.Challenge()
	assert.False(t, pending)
}

func TestSessionServiceVerify2FAWithoutChallengeFails(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	err := service.Verify2FA(context.Background(), "123456")
	require.Error(t, err)
}

func TestSessionServiceRegisterThenVerifyOTP(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	api.EXPECT().Register(mockAnyContext(), "Ada", "Lovelace", "ada@example.com", "pw").
		Return(ports.RegisterResult{Username: "ada.lovelace", Detail: "Check your email."}, nil)

	username, err := service.Register(context.Background(), "Ada", "Lovelace", "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace", username)

	challenge, pending := service.Challenge()
	require.True(t, pending)
	assert.Equal(t, domain.OtpPurposeRegister, challenge.Purpose)

	api.EXPECT().VerifyOTP(mockAnyContext(), "ada.lovelace", "654321").Return(nil)
	require.NoError(t, service.VerifyOTP(context.Background(), "654321"))

	_, pending = service.Challenge()
	assert.False(t, pending)
}

func TestSessionServiceVerifyAccountWorksWithoutChallenge(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(api, store, nil, nil)

	api.EXPECT().VerifyOTP(mockAnyContext(), "ada.lovelace", "654321").Return(nil)

	require.NoError(t, service.VerifyAccount(context.Background(), "ada.lovelace", "654321"))

	require.Error(t, service.VerifyAccount(context.Background(), "  ", "654321"))
}

func TestSessionServiceLogoutIsIdempotent(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSecretStore(t)
	profiles := mocks.NewMockProfileRepository(t)
	service := NewSessionService(api, store, profiles, nil)

	session := domain.Session{AccessToken: "access-1", RefreshToken: "refresh-1"}
	api.EXPECT().Login(mockAnyContext(), "ada.lovelace", "pw").
		Return(ports.LoginResult{Session: session}, nil)
	store.EXPECT().Put(mockAnyContext(), SessionSecretKey, encodeSession(session)).Return(nil)

	_, err := service.Login(context.Background(), "ada.lovelace", "pw")
	require.NoError(t, err)

	store.EXPECT().Delete(mockAnyContext(), SessionSecretKey).Return(nil).Times(2)
	profiles.EXPECT().Clear(mockAnyContext()).Return(nil).Times(2)

	service.Logout(context.Background())
	assert.False(t, service.Authenticated())

	// A second logout with nothing left to clear must not fail.
	service.Logout(context.Background())
	assert.False(t, service.Authenticated())
}

func mockAnyContext() interface{} {
	return mock.Anything
}
