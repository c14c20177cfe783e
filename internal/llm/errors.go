package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manoharask/msme/internal/types"
)

// LLM error codes follow the platform error pattern
const (
	// Provider errors
	ErrProviderNotFound     types.ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	ErrProviderInitFailed   types.ErrorCode = "LLM_PROVIDER_INIT_FAILED"
	ErrProviderUnavailable  types.ErrorCode = "LLM_PROVIDER_UNAVAILABLE"
	ErrProviderUnauthorized types.ErrorCode = "LLM_PROVIDER_UNAUTHORIZED"
	ErrProviderRateLimited  types.ErrorCode = "LLM_PROVIDER_RATE_LIMITED"

	// Request errors
	ErrInvalidRequest     types.ErrorCode = "LLM_INVALID_REQUEST"
	ErrInvalidMessage     types.ErrorCode = "LLM_INVALID_MESSAGE"
	ErrInvalidTemperature types.ErrorCode = "LLM_INVALID_TEMPERATURE"
	ErrInvalidInput       types.ErrorCode = "LLM_INVALID_INPUT"

	// Completion errors
	ErrCompletionFailed types.ErrorCode = "LLM_COMPLETION_FAILED"
	ErrInvalidResponse  types.ErrorCode = "LLM_INVALID_RESPONSE"
	ErrTimeoutExceeded  types.ErrorCode = "LLM_TIMEOUT_EXCEEDED"

	// Network errors
	ErrNetworkFailed  types.ErrorCode = "LLM_NETWORK_FAILED"
	ErrNetworkTimeout types.ErrorCode = "LLM_NETWORK_TIMEOUT"
)

// IsRetryable determines if an error is transient and may succeed on retry.
func IsRetryable(err error) bool {
	var msmeErr *types.MsmeError
	if !errors.As(err, &msmeErr) {
		return false
	}

	if msmeErr.Retryable {
		return true
	}

	switch msmeErr.Code {
	case ErrNetworkFailed, ErrNetworkTimeout, ErrProviderRateLimited,
		ErrProviderUnavailable, ErrTimeoutExceeded:
		return true
	default:
		return false
	}
}

// NewAuthError creates an authentication error for provider integration
func NewAuthError(provider string, err error) error {
	return NewProviderUnauthorizedError(provider, err)
}

// NewProviderError creates a generic provider error
func NewProviderError(provider string, err error) error {
	return types.WrapError(ErrCompletionFailed,
		fmt.Sprintf("provider '%s' completion failed", provider), err)
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(provider string, message string) error {
	return types.NewError(ErrInvalidInput, fmt.Sprintf("%s: %s", provider, message))
}

// NewProviderUnauthorizedError creates an unauthorized provider error
func NewProviderUnauthorizedError(providerName string, cause error) *types.MsmeError {
	return &types.MsmeError{
		Code:    ErrProviderUnauthorized,
		Message: fmt.Sprintf("provider '%s' authentication failed", providerName),
		Cause:   cause,
	}
}

// NewProviderUnavailableError creates a retryable error for when a provider is temporarily unavailable
func NewProviderUnavailableError(providerName string, cause error) *types.MsmeError {
	return &types.MsmeError{
		Code:      ErrProviderUnavailable,
		Message:   "provider temporarily unavailable: " + providerName,
		Retryable: true,
		Cause:     cause,
	}
}

// NewRateLimitError creates a retryable error for rate limiting
func NewRateLimitError(providerName string) *types.MsmeError {
	return &types.MsmeError{
		Code:      ErrProviderRateLimited,
		Message:   "rate limit exceeded for provider: " + providerName,
		Retryable: true,
		Cause:     nil,
	}
}

// NewProviderNotFoundError creates an error for when a provider is not found
func NewProviderNotFoundError(providerName string) *types.MsmeError {
	return types.NewError(ErrProviderNotFound, "provider not found: "+providerName)
}

// NewNetworkError creates a retryable error for network failures
func NewNetworkError(message string, cause error) *types.MsmeError {
	return &types.MsmeError{
		Code:      ErrNetworkFailed,
		Message:   message,
		Retryable: true,
		Cause:     cause,
	}
}

// NewTimeoutError creates a retryable error for timeout failures
func NewTimeoutError(message string) *types.MsmeError {
	return &types.MsmeError{
		Code:      ErrTimeoutExceeded,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// TranslateError translates generic errors into platform errors based on
// error message content.
func TranslateError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var msmeErr *types.MsmeError
	if errors.As(err, &msmeErr) {
		return err
	}

	errMsg := err.Error()
	lowerMsg := strings.ToLower(errMsg)

	switch {
	case strings.Contains(lowerMsg, "unauthorized") || strings.Contains(lowerMsg, "authentication") || strings.Contains(lowerMsg, "api key"):
		return NewProviderUnauthorizedError(provider, err)
	case strings.Contains(lowerMsg, "rate limit") || strings.Contains(lowerMsg, "too many requests"):
		return NewRateLimitError(provider)
	case strings.Contains(lowerMsg, "timeout") || strings.Contains(lowerMsg, "deadline"):
		return NewTimeoutError(errMsg)
	case strings.Contains(lowerMsg, "network") || strings.Contains(lowerMsg, "connection"):
		return NewNetworkError(errMsg, err)
	case strings.Contains(lowerMsg, "not found"):
		return NewProviderNotFoundError(provider)
	default:
		return NewProviderUnavailableError(provider, err)
	}
}
