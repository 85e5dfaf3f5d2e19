package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Employee codes come from the fingerprint device as plain digit strings.
var employeeCodeRegex = regexp.MustCompile(`^\d{1,10}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

// Username validation: 3-50 chars, A-Z, a-z, 0-9, ., _, -
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// ValidateDateRange parses a [from, to] pair in "YYYY-MM-DD" format and
// rejects reversed ranges.
func ValidateDateRange(fromStr, toStr string) (from, to time.Time, errs ValidationErrors) {
	var ok bool
	from, ok = IsValidDate(fromStr)
	if !ok {
		errs = append(errs, ValidationError{Field: "date_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, ok = IsValidDate(toStr)
	if !ok {
		errs = append(errs, ValidationError{Field: "date_to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) == 0 && from.After(to) {
		errs = append(errs, ValidationError{Field: "date_from", Message: "must not be after date_to"})
	}
	return from, to, errs
}
