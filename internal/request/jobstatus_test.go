package request

import (
	"testing"

	"gitlab-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobStatus(t *testing.T) {
	for _, status := range JobStatuses() {
		t.Run(string(status), func(t *testing.T) {
			parsed, err := ParseJobStatus(string(status))
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	for _, bad := range []string{"", "FAILED", "done", "waiting"} {
		t.Run("reject "+bad, func(t *testing.T) {
			_, err := ParseJobStatus(bad)
			require.Error(t, err)
			assert.True(t, apperr.IsConfig(err))
		})
	}
}

func TestParseJobStatuses(t *testing.T) {
	t.Run("empty input yields nil", func(t *testing.T) {
		statuses, err := ParseJobStatuses(nil)
		require.NoError(t, err)
		assert.Nil(t, statuses)
	})

	t.Run("order preserved", func(t *testing.T) {
		statuses, err := ParseJobStatuses([]string{"success", "failed", "manual"})
		require.NoError(t, err)
		assert.Equal(t, []JobStatus{JobSuccess, JobFailed, JobManual}, statuses)
	})

	t.Run("first invalid value reported", func(t *testing.T) {
		_, err := ParseJobStatuses([]string{"success", "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'nope'")
	})
}

func TestJobStatuses(t *testing.T) {
	statuses := JobStatuses()
	assert.Len(t, statuses, 13)
	statuses[0] = "mutated"
	assert.Equal(t, JobCanceled, JobStatuses()[0], "callers get a copy")
}
