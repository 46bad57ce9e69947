package repository

import (
	"context"
	"errors"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
)

// ErrVehicleNotFound is returned when a referenced vehicle does not exist.
var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	Model         string `gorm:"column:model"`
	VehicleTypeID int64  `gorm:"column:vehicle_type_id;index"`

	VehicleType vehicleTypeModel `gorm:"foreignKey:VehicleTypeID"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	v := &domain.Vehicle{
		ID:            m.ID,
		Model:         m.Model,
		VehicleTypeID: m.VehicleTypeID,
	}
	if m.VehicleType.ID != 0 {
		v.VehicleType = toDomainVehicleType(m.VehicleType)
	}
	return v
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := vehicleModel{Model: v.Model, VehicleTypeID: v.VehicleTypeID}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	v.ID = m.ID
	return nil
}

// FindByID loads a vehicle together with its type.
func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).
		Preload("VehicleType").
		First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

// ListByType returns the vehicles of one type, sorted by model name.
func (r *VehicleRepository) ListByType(ctx context.Context, typeID int64) ([]domain.Vehicle, error) {
	var rows []vehicleModel
	tx := r.db.WithContext(ctx).
		Preload("VehicleType").
		Where("vehicle_type_id = ?", typeID).
		Order("model ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}
