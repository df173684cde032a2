package cloudtrace

import "fmt"

// ResultCode classifies the outcome of a single export call.
type ResultCode int

const (
	// Success means the whole batch was accepted by the Cloud Trace API.
	Success ResultCode = iota

	// FailedRetryable means the batch was not written because of a
	// transient condition. Submitting the same batch again may succeed.
	FailedRetryable

	// FailedNotRetryable means the batch can never be written as
	// configured. Submitting the same batch again cannot succeed.
	FailedNotRetryable
)

// String returns the stable label used in logs and metric dimensions.
func (c ResultCode) String() string {
	switch c {
	case Success:
		return "success"
	case FailedRetryable:
		return "retryable_failure"
	case FailedNotRetryable:
		return "non_retryable_failure"
	default:
		return fmt.Sprintf("result_code_%d", int(c))
	}
}

// Result describes the outcome of one export call. Err is nil exactly
// when Code is Success.
type Result struct {
	Code ResultCode
	Err  error
}
