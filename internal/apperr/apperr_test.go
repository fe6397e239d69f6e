package apperr

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitOK},
		{"config", Configf("--iid is required"), ExitUsage},
		{"wrapped config", fmt.Errorf("resolve: %w", Configf("missing token")), ExitUsage},
		{"http", &HTTPError{StatusCode: 404, Reason: "Not Found"}, ExitFailure},
		{"network", Network(errors.New("connection refused")), ExitFailure},
		{"unexpected", Unexpected(errors.New("bad json")), ExitFailure},
		{"plain", errors.New("boom"), ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}

func TestReport(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "http error includes status reason and body",
			err:      &HTTPError{StatusCode: 404, Reason: "Not Found", Body: []byte(`{"message":"404 Project Not Found"}`)},
			expected: "HTTP error 404: Not Found\n{\"message\":\"404 Project Not Found\"}\n",
		},
		{
			name:     "network error",
			err:      Network(errors.New("dial tcp: connection refused")),
			expected: "Network error: dial tcp: connection refused\n",
		},
		{
			name:     "config error",
			err:      Configf("missing base url"),
			expected: "Argument/config error: missing base url\n",
		},
		{
			name:     "unexpected error",
			err:      Unexpected(errors.New("response body is not valid JSON")),
			expected: "Execution error: response body is not valid JSON\n",
		},
		{
			name:     "unclassified error",
			err:      errors.New("boom"),
			expected: "Execution error: boom\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Report(&buf, tc.err)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestConstructorsKeepNil(t *testing.T) {
	assert.NoError(t, Config(nil))
	assert.NoError(t, Network(nil))
	assert.NoError(t, Unexpected(nil))
}

func TestConfigfWrapsSentinel(t *testing.T) {
	sentinel := errors.New("missing token")
	err := Configf("%w: set access_token", sentinel)
	assert.True(t, IsConfig(err))
	assert.ErrorIs(t, err, sentinel)
}
