package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds employee and manager identifiers.
const maxIDLength = 128

// ValidateEmployeeID validates an employee identifier.
//
// The rules are intentionally conservative because IDs end up in SVG element
// ids, DOT node names and cache keys:
//   - No empty IDs
//   - No control characters
//   - No surrounding whitespace
//   - Maximum length of 128 characters
func ValidateEmployeeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidEmployee, "employee id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidEmployee, "employee id too long (max %d characters)", maxIDLength)
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidEmployee, "employee id %q has surrounding whitespace", id)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidEmployee, "employee id contains invalid control characters")
		}
	}

	return nil
}

// ValidateProgress checks an onboarding progress percentage.
func ValidateProgress(p int) error {
	if p < 0 || p > 100 {
		return New(ErrCodeInvalidEmployee, "onboarding progress %d outside 0-100", p)
	}
	return nil
}

// ValidatePath validates a user supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
