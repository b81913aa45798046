// Package validation checks admin and public form input before any entity
// mutation happens. Required-field checks only: email format is
// deliberately unchecked (any non-empty string joins the waitlist).
package validation

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Messages flattens errors into user-facing strings.
func Messages(errs []ValidationError) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return msgs
}

// required reports an error when value is empty or whitespace-only.
func required(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

// requiredFields validates field/value pairs in order.
func requiredFields(pairs ...[2]string) []ValidationError {
	var errs []ValidationError
	for _, p := range pairs {
		if err := required(p[0], p[1]); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

// ValidateNewsForm validates a news create/edit form.
func ValidateNewsForm(title, content string) []ValidationError {
	return requiredFields([2]string{"title", title}, [2]string{"content", content})
}

// ValidateFaqForm validates a FAQ create/edit form.
func ValidateFaqForm(question, answer string) []ValidationError {
	return requiredFields([2]string{"question", question}, [2]string{"answer", answer})
}

// ValidateResourceForm validates a resource create/edit form. Description
// and category are optional.
func ValidateResourceForm(title, resourceType, url string) []ValidationError {
	return requiredFields(
		[2]string{"title", title},
		[2]string{"resource_type", resourceType},
		[2]string{"url", url},
	)
}

// ValidateJoinForm validates a waitlist signup.
func ValidateJoinForm(email string) []ValidationError {
	return requiredFields([2]string{"email", email})
}
