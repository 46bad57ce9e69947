package booking

import "time"

// datesOverlap reports whether two inclusive calendar-date ranges share at
// least one day. Boundaries touch = conflict: a booking ending on day D and
// one starting on day D overlap. Equivalent single inequality:
// candidateStart <= existingEnd && candidateEnd >= existingStart.
func datesOverlap(existingStart, existingEnd, candidateStart, candidateEnd time.Time) bool {
	return !candidateStart.After(existingEnd) && !candidateEnd.Before(existingStart)
}
