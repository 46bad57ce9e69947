package catalog

import (
	"context"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

// Service exposes the read-only vehicle catalog consumed by the booking
// wizard's first screens.
type Service struct {
	vehicleTypes *repository.VehicleTypeRepository
	vehicles     *repository.VehicleRepository
}

func NewService(
	vehicleTypes *repository.VehicleTypeRepository,
	vehicles *repository.VehicleRepository,
) *Service {
	return &Service{vehicleTypes: vehicleTypes, vehicles: vehicles}
}

func (s *Service) ListVehicleTypes(ctx context.Context, wheels int) ([]domain.VehicleType, error) {
	return s.vehicleTypes.ListByWheels(ctx, wheels)
}

func (s *Service) ListVehiclesByType(ctx context.Context, typeID int64) ([]domain.Vehicle, error) {
	return s.vehicles.ListByType(ctx, typeID)
}
