package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentials struct {
	token     atomic.Value
	refreshes atomic.Int32
	nextToken string
	refreshFn func(context.Context) (string, error)
}

func newFakeCredentials(current, next string) *fakeCredentials {
	creds := &fakeCredentials{nextToken: next}
	creds.token.Store(current)
	return creds
}

func (c *fakeCredentials) AccessToken() (string, bool) {
	token := c.token.Load().(string)
	return token, token != ""
}

func (c *fakeCredentials) RefreshAccessToken(ctx context.Context) (string, error) {
	c.refreshes.Add(1)
	if c.refreshFn != nil {
		return c.refreshFn(ctx)
	}
	c.token.Store(c.nextToken)
	return c.nextToken, nil
}

func TestAuthTransportInjectsBearer(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: &AuthTransport{Creds: newFakeCredentials("token-1", "")}}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "Bearer token-1", seen)
}

func TestAuthTransportRefreshesAndReplaysOn401(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.Header.Get("Authorization") != "Bearer token-2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"payload":true}`, string(body), "the replay must carry the original body")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	creds := newFakeCredentials("token-1", "token-2")
	client := &http.Client{Transport: &AuthTransport{Creds: creds}}

	resp, err := client.Post(server.URL, "application/json", strings.NewReader(`{"payload":true}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), requests.Load())
	assert.Equal(t, int32(1), creds.refreshes.Load())
}

func TestAuthTransportReplaysAtMostOnce(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	// The refresh "succeeds" but the server keeps rejecting: the second
	// 401 must reach the caller instead of looping.
	creds := newFakeCredentials("token-1", "token-2")
	client := &http.Client{Transport: &AuthTransport{Creds: creds}}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), requests.Load())
	assert.Equal(t, int32(1), creds.refreshes.Load())
}

func TestAuthTransportSurfacesOriginal401WhenRefreshFails(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := newFakeCredentials("token-1", "")
	creds.refreshFn = func(context.Context) (string, error) {
		return "", errors.New("refresh token rejected")
	}
	client := &http.Client{Transport: &AuthTransport{Creds: creds}}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), requests.Load(), "no replay without a fresh credential")
}

func TestAuthTransportSkipsHeaderWithoutToken(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: &AuthTransport{Creds: newFakeCredentials("", "")}}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Empty(t, seen)
}
