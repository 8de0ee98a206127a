package headline

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known domain error categories for headline
// settings and their word overrides.
type ErrorCode string

const (
	ErrCodeInvalidNumericInput ErrorCode = "INVALID_NUMERIC_INPUT"
	ErrCodeDuplicateWord       ErrorCode = "DUPLICATE_WORD_OVERRIDE"
	ErrCodeUnknownWordID       ErrorCode = "UNKNOWN_STYLED_WORD_ID"
	ErrCodeInvalidDirection    ErrorCode = "INVALID_DIRECTION"
	ErrCodeUnknownFontFamily   ErrorCode = "UNKNOWN_FONT_FAMILY"
	ErrCodeInvalidFontWeight   ErrorCode = "INVALID_FONT_WEIGHT"
	ErrCodeInvalidStyleField   ErrorCode = "INVALID_STYLE_FIELD"
	ErrCodeInvalidEffect       ErrorCode = "INVALID_EFFECT"
)

// Sentinels usable with errors.Is. Matching compares codes only, so an error
// carrying extra context still matches its sentinel.
var (
	ErrInvalidNumericInput = &DomainError{Code: ErrCodeInvalidNumericInput, Message: "invalid numeric input"}
	ErrDuplicateWord       = &DomainError{Code: ErrCodeDuplicateWord, Message: "word override already exists"}
	ErrUnknownWordID       = &DomainError{Code: ErrCodeUnknownWordID, Message: "styled word not found"}
	ErrInvalidDirection    = &DomainError{Code: ErrCodeInvalidDirection, Message: "invalid gradient direction"}
	ErrUnknownFontFamily   = &DomainError{Code: ErrCodeUnknownFontFamily, Message: "unknown font family"}
	ErrInvalidFontWeight   = &DomainError{Code: ErrCodeInvalidFontWeight, Message: "unsupported font weight"}
	ErrInvalidStyleField   = &DomainError{Code: ErrCodeInvalidStyleField, Message: "unknown style field"}
	ErrInvalidEffect       = &DomainError{Code: ErrCodeInvalidEffect, Message: "unknown effect"}
)

// DomainError represents a typed error enriched with contextual data while
// remaining free from infrastructure dependencies.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if value, ok := e.Context["value"]; ok {
		msg = fmt.Sprintf("%s %q", msg, fmt.Sprint(value))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newNumericInputError(input string, cause error) *DomainError {
	return newDomainError(ErrCodeInvalidNumericInput, fmt.Sprintf("font size must be an integer in [%d, %d]", MinFontSize, MaxFontSize), cause, map[string]interface{}{
		"value": input,
	})
}

func newDirectionError(value string) *DomainError {
	return newDomainError(ErrCodeInvalidDirection, "invalid gradient direction", nil, map[string]interface{}{
		"value": value,
	})
}

// NewUnknownFontFamilyError reports a font-family key missing from the font table.
func NewUnknownFontFamilyError(key string) *DomainError {
	return newDomainError(ErrCodeUnknownFontFamily, "unknown font family", nil, map[string]interface{}{
		"value": key,
	})
}

func newFontWeightError(weight int) *DomainError {
	return newDomainError(ErrCodeInvalidFontWeight, "unsupported font weight", nil, map[string]interface{}{
		"value": weight,
	})
}

func newStyleFieldError(value string) *DomainError {
	return newDomainError(ErrCodeInvalidStyleField, "unknown style field", nil, map[string]interface{}{
		"value": value,
	})
}

func newEffectError(value string) *DomainError {
	return newDomainError(ErrCodeInvalidEffect, "unknown effect", nil, map[string]interface{}{
		"value": value,
	})
}
