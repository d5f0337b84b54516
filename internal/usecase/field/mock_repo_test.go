package field

import (
	"context"
	"time"

	domainbooking "github.com/openpitch/field-booking/internal/domain/booking"
	domain "github.com/openpitch/field-booking/internal/domain/field"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

type mockFieldRepo struct {
	fields   []*models.Field
	bookings []models.Booking
}

var _ domain.Repository = (*mockFieldRepo)(nil)

func (m *mockFieldRepo) Create(_ context.Context, f *models.Field) error {
	f.ID = uint(len(m.fields) + 1)
	m.fields = append(m.fields, f)
	return nil
}

func (m *mockFieldRepo) Get(_ context.Context, fieldID uint) (*models.Field, error) {
	for _, f := range m.fields {
		if f.ID == fieldID {
			return f, nil
		}
	}
	return nil, httperr.ErrNotFound("field_not_found", "field not found")
}

func (m *mockFieldRepo) Update(_ context.Context, f *models.Field) error {
	for i, existing := range m.fields {
		if existing.ID == f.ID {
			m.fields[i] = f
			return nil
		}
	}
	return httperr.ErrNotFound("field_not_found", "field not found")
}

func (m *mockFieldRepo) Delete(_ context.Context, fieldID uint) error {
	for i, f := range m.fields {
		if f.ID == fieldID {
			m.fields = append(m.fields[:i], m.fields[i+1:]...)
			return nil
		}
	}
	return httperr.ErrNotFound("field_not_found", "field not found")
}

func (m *mockFieldRepo) List(_ context.Context, activeOnly bool) ([]models.Field, error) {
	var out []models.Field
	for _, f := range m.fields {
		if activeOnly && !f.Active {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFieldRepo) FutureBookings(_ context.Context, fieldID uint, now time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.FieldID != fieldID {
			continue
		}
		if !domainbooking.Occupies(domainbooking.Status(b.Status)) {
			continue
		}
		if b.EndTime.After(now) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockFieldRepo) ConflictingFieldIDs(_ context.Context, ivl domainbooking.Interval) (map[uint]bool, error) {
	out := map[uint]bool{}
	for _, b := range m.bookings {
		if !domainbooking.Occupies(domainbooking.Status(b.Status)) {
			continue
		}
		if domainbooking.Overlaps(ivl, domainbooking.NewInterval(b.StartTime, b.EndTime)) {
			out[b.FieldID] = true
		}
	}
	return out, nil
}
