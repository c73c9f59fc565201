// Package validation provides pure field and form validation for inquiry and
// booking submissions. No side effects; callers decide how to surface errors.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	digitRe = regexp.MustCompile(`\D`)
)

const dateLayout = "2006-01-02"

// ValidateEmail reports whether the value looks like an email address.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone accepts digits plus common formatting characters, and requires
// at least 10 digits once formatting is stripped.
func ValidatePhone(phone string) bool {
	if !phoneRe.MatchString(phone) {
		return false
	}
	digits := digitRe.ReplaceAllString(phone, "")
	return len(digits) >= 10
}

// ValidateRequired reports whether the value is non-empty after trimming.
func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidateMinLength reports whether the trimmed value has at least min characters.
func ValidateMinLength(value string, min int) bool {
	return len(strings.TrimSpace(value)) >= min
}

// ValidateMaxLength reports whether the trimmed value has at most max characters.
func ValidateMaxLength(value string, max int) bool {
	return len(strings.TrimSpace(value)) <= max
}

// ValidateDate reports whether the value parses as a calendar date.
func ValidateDate(value string) bool {
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

// ValidateDateRange passes trivially when either bound is absent; otherwise the
// start must not be after the end. Unparseable bounds fail the check.
func ValidateDateRange(start, end string) bool {
	if start == "" || end == "" {
		return true
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return false
	}
	return !s.After(e)
}

// Field describes one form field to validate. Rules are applied in a fixed
// precedence: required, then the type-specific check, then length constraints.
type Field struct {
	Name      string
	Label     string
	Value     string
	Type      string // "text", "email", "tel" or "date"
	Required  bool
	MinLength int
	MaxLength int
}

// Result aggregates per-field validation failures. Every failing rule for a
// field is recorded, in rule order; the UI surfaces only the first.
type Result struct {
	IsValid bool
	Errors  map[string][]string
}

// FirstError returns the first recorded message for a field, or "".
func (r Result) FirstError(field string) string {
	if msgs, ok := r.Errors[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ValidateFields runs every field through its rules and accumulates failures.
func ValidateFields(fields []Field) Result {
	errors := make(map[string][]string)

	for _, f := range fields {
		value := strings.TrimSpace(f.Value)
		var fieldErrors []string

		if f.Required && !ValidateRequired(value) {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s is required", f.label()))
		}

		if value != "" {
			switch f.Type {
			case "email":
				if !ValidateEmail(value) {
					fieldErrors = append(fieldErrors, "Please enter a valid email address")
				}
			case "tel":
				if !ValidatePhone(value) {
					fieldErrors = append(fieldErrors, "Please enter a valid phone number")
				}
			case "date":
				if !ValidateDate(value) {
					fieldErrors = append(fieldErrors, "Please enter a valid date")
				}
			}
		}

		if f.MinLength > 0 && value != "" && !ValidateMinLength(value, f.MinLength) {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s must be at least %d characters", f.label(), f.MinLength))
		}
		if f.MaxLength > 0 && value != "" && !ValidateMaxLength(value, f.MaxLength) {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s must be no more than %d characters", f.label(), f.MaxLength))
		}

		if len(fieldErrors) > 0 {
			errors[f.Name] = fieldErrors
		}
	}

	return Result{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}
	if f.Name != "" {
		return f.Name
	}
	return "This field"
}
