package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"vehiclerental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrBookingConflict is returned when the requested date range overlaps an
// existing booking for the same vehicle.
var ErrBookingConflict = errors.New("booking dates conflict with an existing booking")

type BookingRepository struct {
	db *gorm.DB

	// Serializes check-then-insert per vehicle so two in-flight requests for
	// the same vehicle cannot both pass the conflict recheck. On PostgreSQL
	// the bookings_no_overlap exclusion constraint guards the invariant a
	// second time at the storage level.
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{
		db:    db,
		locks: make(map[int64]*sync.Mutex),
	}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	VehicleID int64     `gorm:"column:vehicle_id;index"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		VehicleID: m.VehicleID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		VehicleID: b.VehicleID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
	}
}

// ListForVehicle returns every booking stored for the vehicle.
func (r *BookingRepository) ListForVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("start_date ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) vehicleLock(vehicleID int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[vehicleID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[vehicleID] = l
	}
	return l
}

// CreateIfNoConflict inserts the booking unless its inclusive date range
// overlaps an existing booking for the same vehicle, in which case it
// returns ErrBookingConflict and writes nothing. The recheck and the insert
// run inside one transaction while holding the vehicle's lock, so only one
// in-flight reservation attempt per vehicle can commit past the check.
func (r *BookingRepository) CreateIfNoConflict(ctx context.Context, b *domain.Booking) error {
	lock := r.vehicleLock(b.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	m := toBookingModel(b)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		q := tx.Model(&bookingModel{}).
			Where("vehicle_id = ?", b.VehicleID).
			Where("start_date <= ? AND end_date >= ?", b.EndDate, b.StartDate).
			Count(&cnt)
		if q.Error != nil {
			return q.Error
		}
		if cnt > 0 {
			return ErrBookingConflict
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		// 23P01 exclusion_violation: a concurrent writer on another process
		// won the race; surface it as the same conflict outcome.
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return ErrBookingConflict
		}
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}
