package domain

// Session is the access/refresh credential pair representing an
// authenticated device. Both tokens are opaque to the client.
type Session struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// Valid reports whether the pair is fully present. A session is either
// whole or absent; a half-written pair is never a valid rest state.
func (s Session) Valid() bool {
	return s.AccessToken != "" && s.RefreshToken != ""
}
