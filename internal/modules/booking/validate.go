package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// maxAdvanceMonths is the advance-booking window: a reservation may start at
// most this many calendar months after today (month arithmetic, not days).
const maxAdvanceMonths = 6

var nameRegexp = regexp.MustCompile(`^[A-Za-z\s'-]+$`)

// validateName applies the renter-name rules in order and returns the first
// failure. fieldName is the user-facing label ("First name", "Last name").
func validateName(name, fieldName string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return validationError(fmt.Sprintf("%s is required", fieldName))
	}
	if len(trimmed) < 2 {
		return validationError(fmt.Sprintf("%s must be at least 2 characters", fieldName))
	}
	if !nameRegexp.MatchString(trimmed) {
		return validationError(fmt.Sprintf("%s should contain only letters", fieldName))
	}
	letters := 0
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	// Rejects shapes like "--" or "' '" that pass the character class.
	if letters < 2 {
		return validationError(fmt.Sprintf("%s must contain at least 2 letters", fieldName))
	}
	return nil
}

// parseDate parses an ISO calendar date into midnight UTC.
func parseDate(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, validationError(fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", fieldName))
	}
	return t, nil
}

// validateDateRules runs the date rules shared by the availability check and
// the create path: ordering, no past start, advance window. today must
// already be truncated to day granularity.
func validateDateRules(today, start, end time.Time) error {
	if end.Before(start) {
		return validationError("End date must be after start date")
	}
	if start.Before(today) {
		return validationError("Start date cannot be in the past")
	}
	if start.After(today.AddDate(0, maxAdvanceMonths, 0)) {
		return validationError("Bookings can only be made up to 6 months in advance")
	}
	return nil
}
