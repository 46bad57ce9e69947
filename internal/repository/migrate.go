package repository

import (
	"gorm.io/gorm"
)

// Migrate creates the schema for all repository-owned tables. On PostgreSQL
// it additionally installs the exclusion constraint that makes overlapping
// bookings for one vehicle unrepresentable at the storage level.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&vehicleTypeModel{},
		&vehicleModel{},
		&bookingModel{},
	); err != nil {
		return err
	}
	return ensureNoOverlapConstraint(db)
}

// ensureNoOverlapConstraint backs the application-level conflict check with a
// daterange exclusion constraint. SQLite has no range types; there the
// per-vehicle serialization in BookingRepository.CreateIfNoConflict is the
// only writer guard, which is sufficient for a single-process deployment.
func ensureNoOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				vehicle_id WITH =,
				daterange(start_date::date, end_date::date, '[]') WITH &&
			)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
