package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"simple two-letter name", "Jo", ""},
		{"apostrophe", "O'Brien", ""},
		{"space", "Mary Jane", ""},
		{"hyphen", "Anne-Marie", ""},
		{"surrounding whitespace trimmed", "  Jo  ", ""},
		{"empty", "", "First name is required"},
		{"whitespace only", "   ", "First name is required"},
		{"too short", "J", "First name must be at least 2 characters"},
		{"digit", "J9", "First name should contain only letters"},
		{"punctuation only", "--", "First name must contain at least 2 letters"},
		{"apostrophe and space only", "' '", "First name must contain at least 2 letters"},
		{"one letter padded with hyphens", "-J-", "First name must contain at least 2 letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.input, "First name")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestValidateName_FieldLabel(t *testing.T) {
	err := validateName("", "Last name")
	require.Error(t, err)
	assert.Equal(t, "Last name is required", err.Error())
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2025-03-10", "startDate")
	require.NoError(t, err)
	assert.Equal(t, day(2025, 3, 10), got)

	_, err = parseDate("10/03/2025", "startDate")
	require.Error(t, err)
	assert.Equal(t, "startDate must be a valid date (YYYY-MM-DD)", err.Error())

	_, err = parseDate("not-a-date", "endDate")
	require.Error(t, err)
	assert.Equal(t, "endDate must be a valid date (YYYY-MM-DD)", err.Error())
}

func TestValidateDateRules(t *testing.T) {
	today := day(2025, 3, 1)

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    string
	}{
		{"future range", day(2025, 3, 10), day(2025, 3, 15), ""},
		{"same-day reservation", day(2025, 3, 10), day(2025, 3, 10), ""},
		{"start is today", today, day(2025, 3, 2), ""},
		{"start yesterday", day(2025, 2, 28), day(2025, 3, 2), "Start date cannot be in the past"},
		{"end before start", day(2025, 3, 15), day(2025, 3, 10), "End date must be after start date"},
		{"exactly six months ahead", day(2025, 9, 1), day(2025, 9, 3), ""},
		{"six months and a day", day(2025, 9, 2), day(2025, 9, 3), "Bookings can only be made up to 6 months in advance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDateRules(today, tt.start, tt.end)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

// Month arithmetic, not 180 days: Aug 31 + 6 months normalizes through
// Feb 31 to Mar 3 of the next year, so Mar 3 is the last legal start.
func TestValidateDateRules_MonthEndNormalization(t *testing.T) {
	today := day(2025, 8, 31)

	assert.NoError(t, validateDateRules(today, day(2026, 3, 3), day(2026, 3, 4)))

	err := validateDateRules(today, day(2026, 3, 4), day(2026, 3, 5))
	require.Error(t, err)
	assert.Equal(t, "Bookings can only be made up to 6 months in advance", err.Error())
}
