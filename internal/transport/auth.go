// Package transport provides the HTTP client used to talk to the upstream
// dataset, with token authentication and retry/backoff for rate limits.
package transport

import (
	"net/http"
	"os"
)

// Authenticator applies authentication to an outgoing request.
type Authenticator interface {
	// Apply adds authentication headers to the request.
	Apply(req *http.Request)
}

// NoAuth performs no authentication. Used for anonymous requests, which
// GitHub allows at a reduced rate limit.
type NoAuth struct{}

// Apply implements Authenticator.
func (a *NoAuth) Apply(_ *http.Request) {}

// TokenAuth authenticates with a GitHub personal access token.
type TokenAuth struct {
	Token string
}

// Apply implements Authenticator.
func (a *TokenAuth) Apply(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", "token "+a.Token)
	}
}

// FromEnv returns a TokenAuth when GITHUB_TOKEN is set, NoAuth otherwise.
func FromEnv() Authenticator {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &TokenAuth{Token: token}
	}
	return &NoAuth{}
}
