package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

func TestDecodeAPIErrorUnauthorized(t *testing.T) {
	err := decodeAPIError(http.StatusUnauthorized, []byte(`{"detail":"Token is invalid or expired"}`))

	var authErr *domain.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Equal(t, "Token is invalid or expired", authErr.Message)
}

func TestDecodeAPIErrorClassifiesConflicts(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		reason domain.ConflictReason
	}{
		{
			name:   "self follow",
			status: http.StatusBadRequest,
			body:   `{"error":"You cannot follow yourself."}`,
			reason: domain.ConflictSelfFollow,
		},
		{
			name:   "already following",
			status: http.StatusConflict,
			body:   `{"error":"You are already following this user."}`,
			reason: domain.ConflictAlreadyFollowing,
		},
		{
			name:   "request already sent",
			status: http.StatusConflict,
			body:   `{"detail":"Follow request already sent."}`,
			reason: domain.ConflictAlreadyRequested,
		},
		{
			name:   "not following",
			status: http.StatusBadRequest,
			body:   `{"error":"You are not following this user."}`,
			reason: domain.ConflictNotFollowing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeAPIError(tt.status, []byte(tt.body))

			reason, ok := domain.ConflictReasonOf(err)
			require.True(t, ok, "expected a recognized conflict, got %v", err)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestDecodeAPIErrorUnrecognizedMessageIsValidation(t *testing.T) {
	err := decodeAPIError(http.StatusBadRequest, []byte(`{"error":"Something odd happened."}`))

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	_, ok := domain.ConflictReasonOf(err)
	assert.False(t, ok)
}

func TestDecodeAPIErrorFieldMap(t *testing.T) {
	err := decodeAPIError(http.StatusBadRequest, []byte(`{"email":["This field is required."]}`))

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"This field is required."}, validation.Fields["email"])
}

func TestDecodeAPIErrorServerFailure(t *testing.T) {
	err := decodeAPIError(http.StatusInternalServerError, nil)
	require.Error(t, err)

	assert.False(t, domain.IsNetworkError(err))
	assert.False(t, domain.IsAuthorizationError(err))
}

func TestNewNetworkErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := newNetworkError(http.MethodPost, "/auth/login/", cause)

	assert.True(t, domain.IsNetworkError(err))
	assert.ErrorIs(t, err, cause)
}
