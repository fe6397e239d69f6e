package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a payload is not a single valid JSON value.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

var windowsVarPattern = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

// ExpandEnvUniversal expands Unix-style ($VAR, ${VAR}) and Windows-style
// (%VAR%) variables using lookup. Unknown variables expand to "".
// A nil lookup reads the process environment.
func ExpandEnvUniversal(s string, lookup func(string) (string, bool)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) string {
		v, _ := lookup(name)
		return v
	}

	unixExpanded := os.Expand(s, get)
	return windowsVarPattern.ReplaceAllStringFunc(unixExpanded, func(match string) string {
		return get(match[1 : len(match)-1])
	})
}

// Snippet returns a short prefix of a byte slice, useful for logging.
func Snippet(b []byte) string {
	const maxLen = 200
	runes := []rune(string(b))
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return string(b)
}

// PrettyJSON validates body and re-indents it with two spaces per level,
// followed by a newline. Key order and string escapes are preserved.
func PrettyJSON(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DescribeJSON summarizes the shape of a JSON document for log lines.
func DescribeJSON(body []byte) string {
	result := gjson.ParseBytes(body)
	switch {
	case result.IsArray():
		return fmt.Sprintf("array of %d elements", len(result.Array()))
	case result.IsObject():
		fields := 0
		result.ForEach(func(_, _ gjson.Result) bool {
			fields++
			return true
		})
		return fmt.Sprintf("object with %d fields", fields)
	default:
		return result.Type.String()
	}
}
