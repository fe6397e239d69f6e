// Package executor performs the single authenticated GET a command needs
// and classifies the outcome.
package executor

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gitlab-api/internal/apperr"
	"gitlab-api/internal/auth"
	"gitlab-api/internal/config"
	"gitlab-api/internal/credentials"
	"gitlab-api/internal/logging"
	"gitlab-api/internal/util"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Option customizes an Invoker.
type Option func(*resty.Client)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *resty.Client) {
		if userAgent != "" {
			c.SetHeader("User-Agent", userAgent)
		}
	}
}

// Invoker sends GET requests to one GitLab server with one token.
type Invoker struct {
	client *resty.Client
}

// NewInvoker wraps httpClient for requests against creds.BaseURL.
func NewInvoker(httpClient *http.Client, creds credentials.Credentials, opts ...Option) *Invoker {
	token := creds.Token
	client := resty.NewWithClient(httpClient).
		SetBaseURL(creds.BaseURL).
		SetRetryCount(0).
		SetLogger(restyLogger{}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", config.DefaultUserAgent).
		SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
			return auth.ApplyAuthHeaders(req, token)
		})
	for _, opt := range opts {
		opt(client)
	}
	return &Invoker{client: client}
}

// Get fetches path and returns the response body, which is guaranteed to be
// valid JSON. Transport failures are NetworkErrors, non-2xx responses are
// HTTPErrors, and anything else is an UnexpectedError.
func (i *Invoker) Get(ctx context.Context, path string) ([]byte, error) {
	logging.Logf(logging.Debug, "Sending request: GET %s%s", i.client.BaseURL, path)

	resp, err := i.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		logging.Logf(logging.Debug, "Request failed: %v", err)
		return nil, classifyTransportError(err)
	}

	body := resp.Body()
	logging.Logf(logging.Debug, "Response Status: %d (%s)", resp.StatusCode(), resp.Time())
	logging.Logf(logging.Debug, "Response Body Snippet: %s", util.Snippet(body))

	if !resp.IsSuccess() {
		return nil, &apperr.HTTPError{
			StatusCode: resp.StatusCode(),
			Reason:     reasonPhrase(resp),
			Body:       body,
		}
	}
	if !gjson.ValidBytes(body) {
		return nil, apperr.Unexpected(util.ErrInvalidJSON)
	}
	logging.Logf(logging.Info, "Received %s", util.DescribeJSON(body))
	return body, nil
}

func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperr.Network(urlErr.Err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperr.Network(err)
	}
	return apperr.Unexpected(err)
}

// reasonPhrase extracts the reason from a status line such as "404 Not Found".
func reasonPhrase(resp *resty.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode())))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode())
	}
	return reason
}

// restyLogger routes resty's own diagnostics into the application log.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) {
	logging.Logf(logging.Error, "resty: "+strings.TrimSpace(format), v...)
}

func (restyLogger) Warnf(format string, v ...any) {
	logging.Logf(logging.Warning, "resty: "+strings.TrimSpace(format), v...)
}

func (restyLogger) Debugf(format string, v ...any) {
	logging.Logf(logging.Debug, "resty: "+strings.TrimSpace(format), v...)
}
