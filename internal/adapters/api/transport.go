package api

import (
	"context"
	"io"
	"net/http"
)

// Credentials is what the transport needs from the session layer: the
// current access token and a single-flight refresh exchange. Implemented
// by application.SessionService.
type Credentials interface {
	AccessToken() (string, bool)
	RefreshAccessToken(ctx context.Context) (string, error)
}

// AuthTransport injects the bearer credential into outgoing requests and,
// on a 401, performs one refresh-and-replay. The retry is structural:
// each logical request passes through RoundTrip once and the replay is a
// straight-line second dispatch, so no per-request mutable flag is needed
// and no request can loop.
type AuthTransport struct {
	Base  http.RoundTripper
	Creds Credentials
}

var _ http.RoundTripper = (*AuthTransport)(nil)

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	attempt := req.Clone(req.Context())
	token, ok := t.Creds.AccessToken()
	if ok {
		attempt.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base().RoundTrip(attempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// Refresh once; every concurrent 401 waits on the same exchange and
	// observes the same outcome.
	newToken, refreshErr := t.Creds.RefreshAccessToken(req.Context())
	if refreshErr != nil {
		// Refresh exhausted: the original 401 propagates to the caller.
		return resp, nil
	}

	replay := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return resp, nil
		}
		replay.Body = body
	}
	replay.Header.Set("Authorization", "Bearer "+newToken)

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return t.base().RoundTrip(replay)
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
