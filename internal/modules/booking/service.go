package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

// Service is the reservation engine: validation chain, overlap detection and
// the commit path. It is stateless; any number of request workers may share
// one instance.
type Service struct {
	bookings BookingRepository
	vehicles VehicleRepository

	// now is swapped in tests to pin boundary dates.
	now func() time.Time
}

func NewService(bookings BookingRepository, vehicles VehicleRepository) *Service {
	return &Service{
		bookings: bookings,
		vehicles: vehicles,
		now:      time.Now,
	}
}

// today truncates the server's local reference time to day granularity,
// normalized to UTC so it compares cleanly against parsed request dates.
func (s *Service) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckAvailability reports whether the vehicle is free for the inclusive
// range. It runs the date rules only — vehicle existence is not checked on
// this read-only path, mirroring the create/check asymmetry of the original
// API. Side-effect-free and lock-free.
func (s *Service) CheckAvailability(ctx context.Context, vehicleID int64, startDate, endDate string) (bool, error) {
	start, err := parseDate(startDate, "startDate")
	if err != nil {
		return false, err
	}
	end, err := parseDate(endDate, "endDate")
	if err != nil {
		return false, err
	}
	if err := validateDateRules(s.today(), start, end); err != nil {
		return false, err
	}

	existing, err := s.bookings.ListForVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		if datesOverlap(b.StartDate, b.EndDate, start, end) {
			return false, nil
		}
	}
	return true, nil
}

// CreateBooking runs the full validation chain, verifies the vehicle exists,
// rejects conflicting ranges and commits through the store's atomic
// insert-if-no-conflict. On success the booking is returned joined with its
// vehicle and vehicle type.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.FirstName == "" || req.LastName == "" || req.VehicleID == 0 ||
		req.StartDate == "" || req.EndDate == "" {
		return nil, validationError("All fields are required")
	}

	if err := validateName(req.FirstName, "First name"); err != nil {
		return nil, err
	}
	if err := validateName(req.LastName, "Last name"); err != nil {
		return nil, err
	}

	start, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}
	if err := validateDateRules(s.today(), start, end); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.FindByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	// Fast pre-check against the loaded bookings. The store rechecks under
	// the per-vehicle writer lock, so a concurrent create cannot slip past.
	existing, err := s.bookings.ListForVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if datesOverlap(b.StartDate, b.EndDate, start, end) {
			return nil, ErrConflict
		}
	}

	b := &domain.Booking{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		VehicleID: vehicle.ID,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.bookings.CreateIfNoConflict(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	b.Vehicle = vehicle
	return b, nil
}
