package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// propertyNameRegex matches lower snake-case identifiers such as "outline_line_color".
var propertyNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// prefixRegex matches trait prefixes. Empty prefixes are allowed.
var prefixRegex = regexp.MustCompile(`^([a-z][a-z0-9_]*)?$`)

// classNameRegex matches entity class names such as "Plot" or "DataRange1d".
var classNameRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidatePropertyName validates an attribute name before it enters a schema.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 128 characters
//   - Lower snake-case only (letters, digits, underscore; leading letter)
func ValidatePropertyName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProperty, "property name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidProperty, "property name too long (max 128 characters)")
	}

	if !propertyNameRegex.MatchString(name) {
		return New(ErrCodeInvalidProperty, "invalid property name: %q", name)
	}

	return nil
}

// ValidatePrefix validates a trait prefix such as "outline_".
func ValidatePrefix(prefix string) error {
	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidMixin, "invalid mixin prefix: %q", prefix)
	}
	return nil
}

// ValidateClassName validates an entity class name.
func ValidateClassName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "class name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "class name contains invalid control characters")
		}
	}

	if !classNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid class name: %q", name)
	}

	return nil
}

// ValidatePath validates a user-supplied file path for the CLI.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "path contains invalid characters")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
