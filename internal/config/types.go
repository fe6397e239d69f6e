package config

import "time"

// DefaultTimeoutSeconds bounds the whole request when no timeout is configured.
const DefaultTimeoutSeconds = 30

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "gitlab-api"

// Settings holds tool behaviour that is independent of the GitLab
// credentials: logging and HTTP transport options.
type Settings struct {
	Logging LoggingConfig `yaml:"logging"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"GITLAB_API_LOG_LEVEL"`
}

// HTTPConfig holds settings for the HTTP client.
type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"GITLAB_API_TIMEOUT_SECONDS"`
	TLSSkipVerify  bool   `yaml:"tls_skip_verify" env:"GITLAB_API_TLS_SKIP_VERIFY"`
	ForceHTTP1     bool   `yaml:"force_http1" env:"GITLAB_API_FORCE_HTTP1"`
	UserAgent      string `yaml:"user_agent" env:"GITLAB_API_USER_AGENT"`
}

// Timeout returns the configured request timeout.
func (c HTTPConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns settings with every default applied.
func Default() *Settings {
	s := &Settings{}
	applyDefaults(s)
	return s
}

func applyDefaults(s *Settings) {
	if s.Logging.Level == "" {
		s.Logging.Level = "warn"
	}
	if s.HTTP.TimeoutSeconds == 0 {
		s.HTTP.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if s.HTTP.UserAgent == "" {
		s.HTTP.UserAgent = DefaultUserAgent
	}
}
