package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays settings with the GITLAB_API_* variables found in
// environ. Unset or empty variables leave the current value alone.
func parseEnv(settings *Settings, environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(settings, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
