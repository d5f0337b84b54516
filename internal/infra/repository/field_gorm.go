package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domainbooking "github.com/openpitch/field-booking/internal/domain/booking"
	domain "github.com/openpitch/field-booking/internal/domain/field"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

type FieldGormRepository struct {
	db *gorm.DB
}

func NewFieldGormRepository(db *gorm.DB) *FieldGormRepository {
	return &FieldGormRepository{db: db}
}

func (r *FieldGormRepository) Create(ctx context.Context, f *models.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FieldGormRepository) Get(ctx context.Context, fieldID uint) (*models.Field, error) {
	var f models.Field
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&f, fieldID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("field_not_found", "field not found")
		}
		return nil, err
	}
	return &f, nil
}

func (r *FieldGormRepository) Update(ctx context.Context, f *models.Field) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete removes the field; dependent bookings go with it via the
// foreign-key cascade.
func (r *FieldGormRepository) Delete(ctx context.Context, fieldID uint) error {
	return r.db.WithContext(ctx).Delete(&models.Field{}, fieldID).Error
}

func (r *FieldGormRepository) List(ctx context.Context, activeOnly bool) ([]models.Field, error) {
	q := r.db.WithContext(ctx).Model(&models.Field{}).Preload("Owner")
	if activeOnly {
		q = q.Where("active = true")
	}

	var fields []models.Field
	if err := q.Order("id ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *FieldGormRepository) FutureBookings(
	ctx context.Context,
	fieldID uint,
	now time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where(
			"field_id = ? AND status IN ? AND end_time > ?",
			fieldID, domainbooking.OccupyingStatuses(), now,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *FieldGormRepository) ConflictingFieldIDs(
	ctx context.Context,
	ivl domainbooking.Interval,
) (map[uint]bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("field_id").
		Where(
			"status IN ? AND start_time < ? AND end_time > ?",
			domainbooking.OccupyingStatuses(), ivl.End, ivl.Start,
		).
		Pluck("field_id", &ids).Error; err != nil {
		return nil, err
	}

	conflicting := make(map[uint]bool, len(ids))
	for _, id := range ids {
		conflicting[id] = true
	}
	return conflicting, nil
}

// Compile-time check
var _ domain.Repository = (*FieldGormRepository)(nil)
