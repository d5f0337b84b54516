package booking

import (
	"context"

	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

// mockRepo is an in-memory ledger backing the use case tests. Its
// conflict guard runs the same overlap predicate as the SQL one.
type mockRepo struct {
	fields   map[uint]*models.Field
	bookings []*models.Booking
	nextID   uint
}

var _ domain.Repository = (*mockRepo)(nil)

func newMockRepo(fields ...*models.Field) *mockRepo {
	m := &mockRepo{fields: map[uint]*models.Field{}, nextID: 1}
	for _, f := range fields {
		m.fields[f.ID] = f
	}
	return m
}

func (m *mockRepo) GetField(_ context.Context, fieldID uint) (*models.Field, error) {
	f, ok := m.fields[fieldID]
	if !ok {
		return nil, httperr.ErrNotFound("field_not_found", "field not found")
	}
	return f, nil
}

func (m *mockRepo) hasConflict(fieldID uint, ivl domain.Interval, excludeID uint) bool {
	for _, b := range m.bookings {
		if b.FieldID != fieldID || b.ID == excludeID {
			continue
		}
		if !domain.Occupies(domain.Status(b.Status)) {
			continue
		}
		if domain.Overlaps(ivl, domain.NewInterval(b.StartTime, b.EndTime)) {
			return true
		}
	}
	return false
}

func (m *mockRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if m.hasConflict(b.FieldID, domain.NewInterval(b.StartTime, b.EndTime), 0) {
		return httperr.ErrConflict("time_conflict", "time slot already booked")
	}
	b.ID = m.nextID
	m.nextID++
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *mockRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if domain.Occupies(domain.Status(b.Status)) &&
		m.hasConflict(b.FieldID, domain.NewInterval(b.StartTime, b.EndTime), b.ID) {
		return httperr.ErrConflict("time_conflict", "time slot already booked")
	}
	for i, existing := range m.bookings {
		if existing.ID == b.ID {
			m.bookings[i] = b
			return nil
		}
	}
	return httperr.ErrNotFound("booking_not_found", "booking not found")
}

func (m *mockRepo) GetBooking(_ context.Context, bookingID uint) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == bookingID {
			if f, ok := m.fields[b.FieldID]; ok {
				b.Field = *f
			}
			return b, nil
		}
	}
	return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
}

func (m *mockRepo) DeleteBooking(_ context.Context, bookingID uint) error {
	for i, b := range m.bookings {
		if b.ID == bookingID {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return httperr.ErrNotFound("booking_not_found", "booking not found")
}

func (m *mockRepo) ListScoped(_ context.Context, scope access.BookingScope, requesterID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		switch scope {
		case access.ScopeAll:
			out = append(out, *b)
		case access.ScopeOwnedFields:
			if f, ok := m.fields[b.FieldID]; ok && f.OwnerID == requesterID {
				out = append(out, *b)
			}
		case access.ScopeOwn:
			if b.UserID == requesterID {
				out = append(out, *b)
			}
		}
	}
	return out, nil
}

func (m *mockRepo) ListForField(_ context.Context, fieldID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.FieldID == fieldID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockRepo) HasOverlap(_ context.Context, fieldID uint, ivl domain.Interval) (bool, error) {
	return m.hasConflict(fieldID, ivl, 0), nil
}

// seed inserts a booking directly, skipping the conflict guard.
func (m *mockRepo) seed(b *models.Booking) *models.Booking {
	b.ID = m.nextID
	m.nextID++
	m.bookings = append(m.bookings, b)
	return b
}
