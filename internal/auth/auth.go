// Package auth applies GitLab private-token authentication to outgoing requests.
package auth

import (
	"errors"
	"net/http"
	"strings"
)

// PrivateTokenHeader carries the GitLab personal, project, or group access token.
const PrivateTokenHeader = "PRIVATE-TOKEN"

// ErrEmptyToken is returned when no token is available for a request.
var ErrEmptyToken = errors.New("private token is empty")

// ApplyAuthHeaders sets the PRIVATE-TOKEN header on req.
func ApplyAuthHeaders(req *http.Request, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	req.Header.Set(PrivateTokenHeader, token)
	return nil
}

// MaskToken hides all but the first four characters of token for log output.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return token[:visible] + strings.Repeat("*", len(token)-visible)
}
