package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Field
// --------------------------------------------------

func (r *BookingGormRepository) GetField(
	ctx context.Context,
	fieldID uint,
) (*models.Field, error) {

	var f models.Field
	if err := r.db.WithContext(ctx).First(&f, fieldID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("field_not_found", "field not found")
		}
		return nil, err
	}
	return &f, nil
}

// --------------------------------------------------
// Booking (create / update)
// --------------------------------------------------

// CreateBooking serializes the overlap check and the insert against
// concurrent writers on the same field: the FOR UPDATE lock holds the
// field's occupying bookings for the duration of the transaction, and
// the exclusion constraint on (field_id, tstzrange) catches the residual
// race of two inserts that only conflict with each other.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, b.FieldID, b.StartTime, b.EndTime, 0); err != nil {
			return err
		}
		return tx.Create(b).Error
	})
}

// UpdateBooking applies the same overlap guard, excluding the booking
// being updated (a booking never conflicts with itself).
func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.Occupies(domain.Status(b.Status)) {
			if err := assertNoOverlap(tx, b.FieldID, b.StartTime, b.EndTime, b.ID); err != nil {
				return err
			}
		}
		return tx.Save(b).Error
	})
}

func assertNoOverlap(
	tx *gorm.DB,
	fieldID uint,
	start, end time.Time,
	excludeID uint,
) error {

	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"field_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			fieldID, domain.OccupyingStatuses(), end, start,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflicts []models.Booking
	if err := q.Find(&conflicts).Error; err != nil {
		return err
	}

	if len(conflicts) > 0 {
		return httperr.ErrConflict("time_conflict", "time slot already booked")
	}
	return nil
}

// --------------------------------------------------
// Booking (read / delete)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("User").
		First(&b, bookingID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID).Error
}

func (r *BookingGormRepository) ListScoped(
	ctx context.Context,
	scope access.BookingScope,
	requesterID uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("Field").
		Preload("User")

	switch scope {
	case access.ScopeAll:
		// admins see everything
	case access.ScopeOwnedFields:
		q = q.Joins("JOIN fields ON fields.id = bookings.field_id").
			Where("fields.owner_id = ?", requesterID)
	default:
		q = q.Where("bookings.user_id = ?", requesterID)
	}

	var bookings []models.Booking
	if err := q.Order("start_time DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListForField(
	ctx context.Context,
	fieldID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("field_id = ?", fieldID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) HasOverlap(
	ctx context.Context,
	fieldID uint,
	ivl domain.Interval,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"field_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			fieldID, domain.OccupyingStatuses(), ivl.End, ivl.Start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
