package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the domain
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeAlreadyExists     = "ALREADY_EXISTS"
)

// Common domain errors
var (
	ErrNotFound          = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists     = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInsufficientStock = NewDomainError(CodeInsufficientStock, "Insufficient stock available")
)

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError creates a not-found error with the given message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewInsufficientStockError creates an insufficient-stock error with the given message
func NewInsufficientStockError(message string) *DomainError {
	return NewDomainError(CodeInsufficientStock, message)
}

func hasCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsValidationError returns true if err is a validation domain error
func IsValidationError(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsNotFound returns true if err is a not-found domain error
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsInsufficientStock returns true if err is an insufficient-stock domain error
func IsInsufficientStock(err error) bool {
	return hasCode(err, CodeInsufficientStock)
}
