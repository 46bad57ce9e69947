package booking

import (
	"context"

	"vehiclerental/internal/domain"
)

// BookingRepository is the reservation store contract. CreateIfNoConflict
// must guarantee at most one committed writer per vehicle per conflicting
// range (see repository.BookingRepository for the concrete strategy) and
// report a lost race as repository.ErrBookingConflict.
type BookingRepository interface {
	ListForVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
	CreateIfNoConflict(ctx context.Context, b *domain.Booking) error
}

// VehicleRepository is the read-only catalog contract the engine needs.
type VehicleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}
