// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Agreement generation pipeline errors
const (
	ErrCodePropertyNotFound    ErrorCode = "PROPERTY_NOT_FOUND"
	ErrCodeSnapshotQueryFailed ErrorCode = "SNAPSHOT_QUERY_FAILED"

	ErrCodeTemplateNotFound         ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeTemplateValidationFailed ErrorCode = "TEMPLATE_VALIDATION_FAILED"

	ErrCodeSessionNotFound     ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionExpired      ErrorCode = "SESSION_EXPIRED"
	ErrCodeSessionStoreFailed  ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeSelectionIncomplete ErrorCode = "SELECTION_INCOMPLETE"
	ErrCodeInvalidAction       ErrorCode = "INVALID_ACTION"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"

	ErrCodeRenderFailed   ErrorCode = "RENDER_FAILED"
	ErrCodeExportFailed   ErrorCode = "EXPORT_FAILED"
	ErrCodeDeliveryFailed ErrorCode = "DELIVERY_FAILED"
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
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewPropertyNotFoundError creates a non-retryable property lookup error.
func NewPropertyNotFoundError(propertyID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePropertyNotFound,
		Message:   "Property not found",
		Details:   fmt.Sprintf("propertyId: %s", propertyID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotQueryFailedError creates a retryable property snapshot query error.
func NewSnapshotQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSnapshotQueryFailed,
		Message:   "Property snapshot query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Template not found in catalog",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateValidationFailedError creates a non-retryable template validation error.
func NewTemplateValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateValidationFailed,
		Message:   "Data validation failed for template",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable wizard session error.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Wizard session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionExpiredError creates a non-retryable wizard session expiry error.
func NewSessionExpiredError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionExpired,
		Message:   "Wizard session has expired",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session storage error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Wizard session storage error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSelectionIncompleteError creates a non-retryable wizard gating error.
func NewSelectionIncompleteError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSelectionIncomplete,
		Message:   "Required wizard selection is missing",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidActionError creates a non-retryable wizard action error.
func NewInvalidActionError(action string, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAction,
		Message:   "Wizard action not valid in current step",
		Details:   fmt.Sprintf("action: %s, %s", action, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", queryName, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(queryName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("query: %s", queryName),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderFailedError creates a non-retryable document render error.
func NewRenderFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderFailed,
		Message:   "Agreement document render failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExportFailedError creates a non-retryable print export error.
func NewExportFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeExportFailed,
		Message:   "Print export failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeliveryFailedError creates a retryable delivery error.
func NewDeliveryFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeliveryFailed,
		Message:   "Agreement delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes.
// The codes are intentionally identical on both sides.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodePropertyNotFound:         "PROPERTY_NOT_FOUND",
	ErrCodeSnapshotQueryFailed:      "SNAPSHOT_QUERY_FAILED",
	ErrCodeTemplateNotFound:         "TEMPLATE_NOT_FOUND",
	ErrCodeTemplateValidationFailed: "TEMPLATE_VALIDATION_FAILED",
	ErrCodeSessionNotFound:          "SESSION_NOT_FOUND",
	ErrCodeSessionExpired:           "SESSION_EXPIRED",
	ErrCodeSessionStoreFailed:       "SESSION_STORE_FAILED",
	ErrCodeSelectionIncomplete:      "SELECTION_INCOMPLETE",
	ErrCodeInvalidAction:            "INVALID_ACTION",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeQueryExecutionFailed:     "QUERY_EXECUTION_FAILED",
	ErrCodeQueryTimeout:             "QUERY_TIMEOUT",
	ErrCodeRenderFailed:             "RENDER_FAILED",
	ErrCodeExportFailed:             "EXPORT_FAILED",
	ErrCodeDeliveryFailed:           "DELIVERY_FAILED",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSnapshotQueryFailed,
		ErrCodeSessionStoreFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeDeliveryFailed:
		return 3 // Retryable technical errors

	case ErrCodeQueryTimeout:
		return 2 // Partial retry for timeouts

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PROPERTY") || strings.Contains(codeStr, "SNAPSHOT"):
		return "PROPERTY"
	case strings.Contains(codeStr, "TEMPLATE"):
		return "TEMPLATE"
	case strings.Contains(codeStr, "SESSION") || strings.Contains(codeStr, "SELECTION") || strings.Contains(codeStr, "ACTION"):
		return "WIZARD"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "RENDER") || strings.Contains(codeStr, "EXPORT"):
		return "DOCUMENT"
	case strings.Contains(codeStr, "DELIVERY"):
		return "DELIVERY"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
