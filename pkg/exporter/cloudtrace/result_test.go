package cloudtrace

import "testing"

func TestResultCode_String(t *testing.T) {
	tests := []struct {
		code ResultCode
		want string
	}{
		{Success, "success"},
		{FailedRetryable, "retryable_failure"},
		{FailedNotRetryable, "non_retryable_failure"},
		{ResultCode(42), "result_code_42"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ResultCode(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}
