package errors

import (
	"errors"
	"fmt"
	"time"
)

// AppError is the single typed error carried across every external-facing
// operation. Callers distinguish success from failure by error value and
// class by Code, never by inspecting result strings.
type AppError struct {
	Raw       error
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements the error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// CodeOf extracts the ErrorCode from an error chain, INTERNAL if absent
func CodeOf(err error) ErrorCode {
	var ae AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrorCode_INTERNAL
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal error",
		Timestamp: time.Now(),
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		Code:      ErrorCode_NOT_FOUND,
		Message:   fmt.Sprintf("%s not found", resource),
		Timestamp: time.Now(),
	}
}

// Configuration errors

func ErrConfigMissing(key string) AppError {
	return AppError{
		Code:      ErrorCode_CONFIG_MISSING,
		Message:   fmt.Sprintf("%s is required", key),
		Timestamp: time.Now(),
	}
}

func ErrFeatureDisabled(feature string) AppError {
	return AppError{
		Code:      ErrorCode_FEATURE_DISABLED,
		Message:   fmt.Sprintf("%s is not configured for this session", feature),
		Timestamp: time.Now(),
	}.WithDetail("feature", feature)
}

// LLM errors

func ErrLLMRequestFailed(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_LLM_REQUEST_FAILED,
		Message:   "LLM completion request failed",
		Timestamp: time.Now(),
	}
}

func ErrLLMEmptyResponse() AppError {
	return AppError{
		Code:      ErrorCode_LLM_EMPTY_RESPONSE,
		Message:   "LLM returned an empty response",
		Timestamp: time.Now(),
	}
}

// Collaborator errors

func ErrGitHubRequestFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_GITHUB_REQUEST_FAILED,
		Message:   fmt.Sprintf("GitHub request failed: %s", operation),
		Timestamp: time.Now(),
	}
}

func ErrJiraRequestFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_JIRA_REQUEST_FAILED,
		Message:   fmt.Sprintf("Jira request failed: %s", operation),
		Timestamp: time.Now(),
	}
}

// Transcript errors

func ErrTranscriptTooShort(length, minimum int) AppError {
	return AppError{
		Code:      ErrorCode_TRANSCRIPT_TOO_SHORT,
		Message:   fmt.Sprintf("transcript too short: %d characters (minimum: %d)", length, minimum),
		Timestamp: time.Now(),
	}
}

func ErrUnsupportedTranscriptFile(path string) AppError {
	return AppError{
		Code:      ErrorCode_TRANSCRIPT_UNSUPPORTED,
		Message:   "unsupported transcript file extension",
		Timestamp: time.Now(),
	}.WithDetail("path", path)
}

// Analysis and report errors

func ErrAnalysisFailed(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_ANALYSIS_FAILED,
		Message:   "transcript analysis failed",
		Timestamp: time.Now(),
	}
}

func ErrReportGenerationFailed(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_REPORT_GENERATION_FAILED,
		Message:   "failed to generate report",
		Timestamp: time.Now(),
	}
}

// Infrastructure errors

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_STORAGE_FAILED,
		Message:   fmt.Sprintf("storage operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_CACHE_FAILED,
		Message:   fmt.Sprintf("cache operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}

func ErrWatcherFailed(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_WATCHER_FAILED,
		Message:   "transcript directory watcher failed",
		Timestamp: time.Now(),
	}
}
