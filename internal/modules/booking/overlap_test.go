package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		exStart, exEnd, cStart, cEnd time.Time
		want                       bool
	}{
		{
			name:    "disjoint before",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 1), cEnd: day(2025, 3, 9),
			want: false,
		},
		{
			name:    "disjoint after",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 16), cEnd: day(2025, 3, 20),
			want: false,
		},
		{
			name:    "candidate start inside existing",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 14), cEnd: day(2025, 3, 20),
			want: true,
		},
		{
			name:    "candidate end inside existing",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 5), cEnd: day(2025, 3, 10),
			want: true,
		},
		{
			name:    "candidate contains existing",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 1), cEnd: day(2025, 3, 31),
			want: true,
		},
		{
			name:    "existing contains candidate",
			exStart: day(2025, 3, 1), exEnd: day(2025, 3, 31),
			cStart: day(2025, 3, 10), cEnd: day(2025, 3, 15),
			want: true,
		},
		{
			name:    "touching boundary: existing ends where candidate starts",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 15), cEnd: day(2025, 3, 20),
			want: true,
		},
		{
			name:    "touching boundary: candidate ends where existing starts",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 15),
			cStart: day(2025, 3, 5), cEnd: day(2025, 3, 10),
			want: true,
		},
		{
			name:    "same single day",
			exStart: day(2025, 3, 10), exEnd: day(2025, 3, 10),
			cStart: day(2025, 3, 10), cEnd: day(2025, 3, 10),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datesOverlap(tt.exStart, tt.exEnd, tt.cStart, tt.cEnd)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric: swapping the two ranges must not change
			// the answer.
			swapped := datesOverlap(tt.cStart, tt.cEnd, tt.exStart, tt.exEnd)
			assert.Equal(t, got, swapped)
		})
	}
}
