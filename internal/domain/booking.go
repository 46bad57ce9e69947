package domain

import "time"

// Booking is a confirmed assignment of one vehicle to one renter for an
// inclusive calendar-date range (StartDate <= EndDate, both at midnight UTC).
// Bookings are created by the reservation engine and never updated or
// deleted afterwards; there is no pending or cancelled state.
//
// Invariant: for any vehicle, the set of stored bookings is pairwise
// non-overlapping — no two bookings share a calendar date.
type Booking struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	VehicleID int64     `json:"vehicle_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty"`
}
