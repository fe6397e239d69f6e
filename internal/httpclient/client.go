package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"gitlab-api/internal/config"
	"gitlab-api/internal/logging"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = config.DefaultTimeoutSeconds * time.Second

// NewClient creates an *http.Client for talking to a GitLab server.
// The client timeout covers the whole exchange, including reading the body.
// Redirects are followed by the standard client policy.
func NewClient(cfg config.HTTPConfig) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.TLSSkipVerify,
		},
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if cfg.ForceHTTP1 {
		logging.Logf(logging.Info, "Forcing HTTP/1.1")
		// A non-nil empty map disables HTTP/2 negotiation via ALPN.
		transport.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
		transport.ForceAttemptHTTP2 = false
	}
	if cfg.TLSSkipVerify {
		logging.Logf(logging.Warning, "TLS certificate verification is DISABLED")
	}

	return &http.Client{
		Timeout:   cfg.Timeout(),
		Transport: transport,
	}
}
