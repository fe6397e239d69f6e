package request

import (
	"gitlab-api/internal/apperr"
)

// JobStatus is a GitLab CI job state usable as a pipeline-jobs scope.
type JobStatus string

const (
	JobCanceled           JobStatus = "canceled"
	JobCanceling          JobStatus = "canceling"
	JobCreated            JobStatus = "created"
	JobFailed             JobStatus = "failed"
	JobManual             JobStatus = "manual"
	JobPending            JobStatus = "pending"
	JobPreparing          JobStatus = "preparing"
	JobRunning            JobStatus = "running"
	JobScheduled          JobStatus = "scheduled"
	JobSkipped            JobStatus = "skipped"
	JobSuccess            JobStatus = "success"
	JobWaitingForCallback JobStatus = "waiting_for_callback"
	JobWaitingForResource JobStatus = "waiting_for_resource"
)

var jobStatuses = []JobStatus{
	JobCanceled,
	JobCanceling,
	JobCreated,
	JobFailed,
	JobManual,
	JobPending,
	JobPreparing,
	JobRunning,
	JobScheduled,
	JobSkipped,
	JobSuccess,
	JobWaitingForCallback,
	JobWaitingForResource,
}

// JobStatuses returns every accepted scope value in alphabetical order.
func JobStatuses() []JobStatus {
	out := make([]JobStatus, len(jobStatuses))
	copy(out, jobStatuses)
	return out
}

// Valid reports whether s is one of the known job states.
func (s JobStatus) Valid() bool {
	for _, known := range jobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseJobStatus validates a single scope value.
func ParseJobStatus(s string) (JobStatus, error) {
	status := JobStatus(s)
	if !status.Valid() {
		return "", apperr.Configf("invalid --scope '%s', must be one of %v", s, jobStatuses)
	}
	return status, nil
}

// ParseJobStatuses validates scope values, keeping their order.
func ParseJobStatuses(values []string) ([]JobStatus, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]JobStatus, 0, len(values))
	for _, v := range values {
		status, err := ParseJobStatus(v)
		if err != nil {
			return nil, err
		}
		out = append(out, status)
	}
	return out, nil
}
