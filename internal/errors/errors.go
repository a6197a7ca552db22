package errors

import "fmt"

// ErrorCode represents an Atelier error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"        // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"              // 404
	ErrAlreadyExists  ErrorCode = "ALREADY_INITIALIZED"    // 409
	ErrScaffoldWrite  ErrorCode = "SCAFFOLD_WRITE_FAILURE" // 500, propagates unrecovered
	ErrAgentTimeout   ErrorCode = "AGENT_TIMEOUT"          // 504
	ErrAgentFailed    ErrorCode = "AGENT_FAILED"           // 502
	ErrInternal       ErrorCode = "INTERNAL"               // 500
)

// AtelierError represents a structured error with code, status, and details.
//
// Read-path problems (missing or unreadable files, unavailable tree listing)
// never become AtelierErrors; they are recovered locally as sentinel strings.
// Write-path and agent-invocation failures do.
type AtelierError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *AtelierError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *AtelierError {
	return &AtelierError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing resource.
func NewNotFound(identifier string) *AtelierError {
	return &AtelierError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewAlreadyInitialized creates a 409 error for scaffolding an initialized workspace.
func NewAlreadyInitialized(root string) *AtelierError {
	return &AtelierError{
		Code:    ErrAlreadyExists,
		Status:  409,
		Message: fmt.Sprintf("workspace already initialized: %s", root),
		Details: map[string]any{"root": root},
	}
}

// NewScaffoldWrite creates an error for a failed write during scaffold
// generation. Generation is fail-fast: the first write failure aborts the
// remaining catalog entries and may leave a partially written tree.
func NewScaffoldWrite(path string, err error) *AtelierError {
	return &AtelierError{
		Code:    ErrScaffoldWrite,
		Status:  500,
		Message: fmt.Sprintf("scaffold write failed at %s: %v", path, err),
		Details: map[string]any{"path": path},
	}
}

// NewAgentTimeout creates an error for an agent call that exceeded its deadline.
func NewAgentTimeout(timeoutSecs int) *AtelierError {
	return &AtelierError{
		Code:    ErrAgentTimeout,
		Status:  504,
		Message: fmt.Sprintf("agent call exceeded %d second timeout", timeoutSecs),
		Details: map[string]any{"timeout_secs": timeoutSecs},
	}
}

// NewAgentFailed creates an error for an agent invocation that could not run.
func NewAgentFailed(err error) *AtelierError {
	msg := "agent invocation failed"
	if err != nil {
		msg = fmt.Sprintf("agent invocation failed: %v", err)
	}
	return &AtelierError{
		Code:    ErrAgentFailed,
		Status:  502,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *AtelierError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &AtelierError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is an AtelierError with the given code.
func Is(err error, code ErrorCode) bool {
	if aErr, ok := err.(*AtelierError); ok {
		return aErr.Code == code
	}
	return false
}
