// Package credentials resolves the GitLab base URL and private token from the
// process environment and an optional env file.
//
// Lookup is key-major: for each candidate key in priority order the
// environment is consulted before the file, and the first non-blank value
// wins. The environment is injected as a LookupFunc so callers decide whether
// the real process environment is read.
package credentials

import (
	"errors"
	"net/url"
	"strings"

	"gitlab-api/internal/apperr"
)

var (
	ErrMissingBaseURL = errors.New("missing base url")
	ErrMissingToken   = errors.New("missing token")
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// Candidate keys in priority order.
var (
	BaseURLKeys = []string{"gitlab_server", "GITLAB_SERVER"}
	TokenKeys   = []string{"access_token", "ACCESS_TOKEN", "GITLAB_TOKEN"}
)

// Credentials is a resolved base URL and token pair. Both fields are set.
type Credentials struct {
	BaseURL string
	Token   string
}

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// MapLookup serves lookups from a fixed map.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// Resolve picks the base URL and token from lookup and entries.
func Resolve(lookup LookupFunc, entries Entries) (Credentials, error) {
	if lookup == nil {
		lookup = MapLookup(nil)
	}

	baseURL := pick(lookup, entries, BaseURLKeys)
	if baseURL == "" {
		return Credentials{}, apperr.Configf("%w: set %s in the environment or env file", ErrMissingBaseURL, strings.Join(BaseURLKeys, "/"))
	}
	token := pick(lookup, entries, TokenKeys)
	if token == "" {
		return Credentials{}, apperr.Configf("%w: set %s in the environment or env file", ErrMissingToken, strings.Join(TokenKeys, "/"))
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if err := validateBaseURL(baseURL); err != nil {
		return Credentials{}, err
	}
	return Credentials{BaseURL: baseURL, Token: token}, nil
}

func pick(lookup LookupFunc, entries Entries, keys []string) string {
	for _, key := range keys {
		if v, ok := lookup(key); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
		if v, ok := entries[key]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func validateBaseURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return apperr.Configf("%w '%s': %v", ErrInvalidBaseURL, raw, err)
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return apperr.Configf("%w '%s': scheme must be http or https", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return apperr.Configf("%w '%s': host is empty", ErrInvalidBaseURL, raw)
	}
	return nil
}

// Resolver loads an env file and resolves credentials against it.
type Resolver struct {
	Lookup LookupFunc
	Load   func(path string) (Entries, error)
}

// NewResolver returns a Resolver reading env files from disk.
func NewResolver(lookup LookupFunc) *Resolver {
	return &Resolver{Lookup: lookup, Load: LoadEntries}
}

// Resolve loads envFile (if it exists) and resolves credentials.
func (r *Resolver) Resolve(envFile string) (Credentials, error) {
	load := r.Load
	if load == nil {
		load = LoadEntries
	}
	entries, err := load(envFile)
	if err != nil {
		return Credentials{}, err
	}
	return Resolve(r.Lookup, entries)
}
