package errors

// ErrorCode identifies the failure class of an AppError
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_CONFIG_MISSING
	ErrorCode_FEATURE_DISABLED
	ErrorCode_LLM_REQUEST_FAILED
	ErrorCode_LLM_EMPTY_RESPONSE
	ErrorCode_GITHUB_REQUEST_FAILED
	ErrorCode_JIRA_REQUEST_FAILED
	ErrorCode_TRANSCRIPT_TOO_SHORT
	ErrorCode_TRANSCRIPT_UNSUPPORTED
	ErrorCode_ANALYSIS_FAILED
	ErrorCode_REPORT_GENERATION_FAILED
	ErrorCode_STORAGE_FAILED
	ErrorCode_CACHE_FAILED
	ErrorCode_WATCHER_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_CONFIG_MISSING:           "CONFIG_MISSING",
	ErrorCode_FEATURE_DISABLED:         "FEATURE_DISABLED",
	ErrorCode_LLM_REQUEST_FAILED:       "LLM_REQUEST_FAILED",
	ErrorCode_LLM_EMPTY_RESPONSE:       "LLM_EMPTY_RESPONSE",
	ErrorCode_GITHUB_REQUEST_FAILED:    "GITHUB_REQUEST_FAILED",
	ErrorCode_JIRA_REQUEST_FAILED:      "JIRA_REQUEST_FAILED",
	ErrorCode_TRANSCRIPT_TOO_SHORT:     "TRANSCRIPT_TOO_SHORT",
	ErrorCode_TRANSCRIPT_UNSUPPORTED:   "TRANSCRIPT_UNSUPPORTED",
	ErrorCode_ANALYSIS_FAILED:          "ANALYSIS_FAILED",
	ErrorCode_REPORT_GENERATION_FAILED: "REPORT_GENERATION_FAILED",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:             "CACHE_FAILED",
	ErrorCode_WATCHER_FAILED:           "WATCHER_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
