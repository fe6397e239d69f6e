package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gitlab-api/internal/apperr"

	"gopkg.in/yaml.v3"
)

// LoadConfig builds the effective settings. The YAML file at filename is
// read when filename is not empty; variables in environ then override it.
// All failures are configuration errors.
func LoadConfig(filename string, environ map[string]string) (*Settings, error) {
	var settings Settings

	if filename != "" {
		fileBytes, err := os.ReadFile(filename)
		if err != nil {
			return nil, apperr.Configf("failed to read config file '%s': %w", filename, err)
		}
		if err := decodeYAML(fileBytes, &settings); err != nil {
			return nil, apperr.Configf("failed to parse YAML in '%s': %w", filename, err)
		}
	}

	if err := parseEnv(&settings, environ); err != nil {
		return nil, apperr.Config(err)
	}

	applyDefaults(&settings)

	if err := ValidateConfigManually(&settings); err != nil {
		return nil, apperr.Config(err)
	}
	return &settings, nil
}

func decodeYAML(b []byte, settings *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
