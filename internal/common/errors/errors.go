// Package errors provides standardized error handling for the support agent.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Client input errors
	ErrCodeEmptyQuery     ErrorCode = "EMPTY_QUERY"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// Side-channel store errors
	ErrCodeFeatureLogAppendFailed ErrorCode = "FEATURE_LOG_APPEND_FAILED"
	ErrCodeFeatureLogUnavailable  ErrorCode = "FEATURE_LOG_UNAVAILABLE"

	// Best-effort collaborator errors (logged, never surfaced to callers)
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeSearchIndexFailed      ErrorCode = "SEARCH_INDEX_FAILED"
	ErrCodeCacheUnavailable       ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewEmptyQueryError creates a non-retryable client input error.
func NewEmptyQueryError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyQuery,
		Message:   "Query cannot be empty",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable client input error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request body failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeatureLogAppendFailedError creates a retryable store error. A feature
// request whose log append failed must not be acknowledged.
func NewFeatureLogAppendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeatureLogAppendFailed,
		Message:   "Failed to record feature request",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeatureLogUnavailableError creates a retryable store error.
func NewFeatureLogUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeatureLogUnavailable,
		Message:   "Feature request store unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification error.
func NewNotificationSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Failed to send escalation notification",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchIndexFailedError creates a retryable indexing error.
func NewSearchIndexFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchIndexFailed,
		Message:   "Failed to index feature request",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// GetErrorCategory maps an error code to a coarse category used in logs and
// metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeEmptyQuery, ErrCodeInvalidRequest:
		return "client"
	case ErrCodeFeatureLogAppendFailed, ErrCodeFeatureLogUnavailable:
		return "store"
	case ErrCodeNotificationSendFailed, ErrCodeSearchIndexFailed, ErrCodeCacheUnavailable:
		return "best_effort"
	default:
		return "internal"
	}
}

// IsRetryable reports whether the error carries a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
