package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gitlab-api/internal/apperr"
)

// Entries holds the key/value pairs read from an env file.
type Entries map[string]string

// ParseEntries reads env-file lines of the form key=value or key:value.
// Blank lines and lines starting with '#' are ignored, as are lines with
// neither separator. When a key repeats, the last occurrence wins.
func ParseEntries(r io.Reader) (Entries, error) {
	entries := make(Entries)
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			key, value, ok = strings.Cut(line, ":")
		}
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		entries[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return entries, nil
}

// LoadEntries parses the env file at path. A missing file is not an error
// and yields no entries.
func LoadEntries(path string) (Entries, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entries{}, nil
		}
		return nil, apperr.Configf("failed to open env file '%s': %w", path, err)
	}
	defer f.Close()

	entries, err := ParseEntries(f)
	if err != nil {
		return nil, apperr.Configf("'%s': %w", path, err)
	}
	return entries, nil
}

// unquote strips one layer of matching single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
