package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestMsmeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MsmeError
		want string
	}{
		{
			name: "without cause",
			err:  NewError(STORE_NOT_FOUND, "enterprise not found"),
			want: "[STORE_NOT_FOUND] enterprise not found",
		},
		{
			name: "with cause",
			err:  WrapError(STORE_FETCH_FAILED, "fetch failed", errors.New("connection reset")),
			want: "[STORE_FETCH_FAILED] fetch failed: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMsmeError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError(STORE_SAVE_FAILED, "save failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestMsmeError_Is(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(STORE_DELETE_REFUSED, "category still referenced"))

	if !errors.Is(err, NewError(STORE_DELETE_REFUSED, "different message")) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, NewError(STORE_DELETE_FAILED, "category still referenced")) {
		t.Error("errors with different codes should not match")
	}
}

func TestNewRetryableError(t *testing.T) {
	err := NewRetryableError(STORE_FETCH_FAILED, "transient")
	if !err.Retryable {
		t.Error("NewRetryableError should mark the error retryable")
	}
	if NewError(STORE_FETCH_FAILED, "permanent").Retryable {
		t.Error("NewError should not mark the error retryable")
	}
}

func TestErrorCodeOf(t *testing.T) {
	code, ok := ErrorCodeOf(fmt.Errorf("wrapped: %w", NewError(CONFIG_NOT_FOUND, "missing")))
	if !ok || code != CONFIG_NOT_FOUND {
		t.Errorf("ErrorCodeOf() = %v, %v; want %v, true", code, ok, CONFIG_NOT_FOUND)
	}

	if _, ok := ErrorCodeOf(errors.New("plain")); ok {
		t.Error("ErrorCodeOf should return false for non-MsmeError")
	}
}
