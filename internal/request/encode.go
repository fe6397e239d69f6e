package request

import (
	"net/url"
	"strings"
)

// Encode percent-encodes s as a single opaque path segment. Every byte
// outside the unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~") is
// escaped, including '/'. Existing escapes are decoded first, so raw and
// pre-encoded inputs produce the same result.
func Encode(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	// QueryEscape escapes everything outside the unreserved set except
	// space, which it writes as '+'. A literal '+' is already %2B here.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
