package config

import (
	"fmt"
	"strings"
)

var knownLogLevels = []string{"none", "error", "warn", "warning", "info", "debug"}

// maxTimeoutSeconds caps the request timeout at ten minutes.
const maxTimeoutSeconds = 600

// isValidEnumValue checks if a value is present in a list of allowed values, ignoring case.
func isValidEnumValue(value string, allowedValues []string) bool {
	for _, allowed := range allowedValues {
		if strings.EqualFold(value, allowed) {
			return true
		}
	}
	return false
}

// ValidateConfigManually checks every setting and reports all problems at once.
func ValidateConfigManually(cfg *Settings) error {
	var allErrors []string
	allErrors = append(allErrors, validateLoggingConfig("Config.Logging", &cfg.Logging)...)
	allErrors = append(allErrors, validateHTTPConfig("Config.HTTP", &cfg.HTTP)...)
	if len(allErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(allErrors, "\n"))
	}
	return nil
}

func validateLoggingConfig(prefix string, cfg *LoggingConfig) []string {
	var errs []string
	if !isValidEnumValue(cfg.Level, knownLogLevels) {
		errs = append(errs, fmt.Sprintf("- %s.Level: invalid log level '%s', must be one of %v", prefix, cfg.Level, knownLogLevels))
	}
	return errs
}

func validateHTTPConfig(prefix string, cfg *HTTPConfig) []string {
	var errs []string
	if cfg.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Sprintf("- %s.TimeoutSeconds: must be positive", prefix))
	}
	if cfg.TimeoutSeconds > maxTimeoutSeconds {
		errs = append(errs, fmt.Sprintf("- %s.TimeoutSeconds: must be at most %d", prefix, maxTimeoutSeconds))
	}
	if strings.ContainsAny(cfg.UserAgent, "\r\n") {
		errs = append(errs, fmt.Sprintf("- %s.UserAgent: must be a single line", prefix))
	}
	return errs
}
