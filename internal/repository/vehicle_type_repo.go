package repository

import (
	"context"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
)

type VehicleTypeRepository struct {
	db *gorm.DB
}

func NewVehicleTypeRepository(db *gorm.DB) *VehicleTypeRepository {
	return &VehicleTypeRepository{db: db}
}

type vehicleTypeModel struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Name   string `gorm:"column:name;uniqueIndex"`
	Wheels int    `gorm:"column:wheels"`
}

func (vehicleTypeModel) TableName() string { return "vehicle_types" }

func toDomainVehicleType(m vehicleTypeModel) *domain.VehicleType {
	return &domain.VehicleType{
		ID:     m.ID,
		Name:   m.Name,
		Wheels: m.Wheels,
	}
}

func (r *VehicleTypeRepository) Create(ctx context.Context, t *domain.VehicleType) error {
	m := vehicleTypeModel{Name: t.Name, Wheels: t.Wheels}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainVehicleType(m)
	return nil
}

// ListByWheels returns the types with the given wheel count, sorted by name.
func (r *VehicleTypeRepository) ListByWheels(ctx context.Context, wheels int) ([]domain.VehicleType, error) {
	var rows []vehicleTypeModel
	tx := r.db.WithContext(ctx).
		Where("wheels = ?", wheels).
		Order("name ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.VehicleType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVehicleType(m))
	}
	return out, nil
}
