package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/openpitch/field-booking/internal/config"
	"github.com/openpitch/field-booking/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Field{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// The slot constraints are the ultimate arbiter for concurrent
	// writes on the same field (application-level checks still race
	// between SELECT and INSERT).
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
        ALTER TABLE bookings
        DROP CONSTRAINT IF EXISTS bookings_no_overlap
    `)
	db.Exec(`
        ALTER TABLE bookings
        ADD CONSTRAINT bookings_no_overlap
        EXCLUDE USING gist (
            field_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        ) WHERE (status <> 'cancelled')
    `)

	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_booking_slot
        ON bookings (field_id, start_time, end_time)
        WHERE status <> 'cancelled'
    `)

	return db
}
