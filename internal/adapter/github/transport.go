package github

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
)

const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
)

// TransportConfig contains settings for building the API HTTP client.
type TransportConfig struct {
	Token     string        // optional personal access token
	Timeout   time.Duration // 0 leaves the transport defaults in place
	UserAgent string
	Base      http.RoundTripper // defaults to http.DefaultTransport
}

// NewHTTPClient builds the client used for all API calls: traced with
// OpenTelemetry, authenticated when a token is set, and carrying the headers
// GitHub expects on every request.
func NewHTTPClient(cfg TransportConfig) *http.Client {
	base := cfg.Base
	if base == nil {
		base = http.DefaultTransport
	}

	var rt http.RoundTripper = otelhttp.NewTransport(base)

	if cfg.Token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"}),
			Base:   rt,
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "gitscout"
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			base:      rt,
			userAgent: userAgent,
		},
	}
}

// headerTransport sets the GitHub API headers on each outgoing request.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Accept", acceptHeader)
	clone.Header.Set("X-GitHub-Api-Version", apiVersion)
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
