package booking

import (
	"context"
	"testing"
	"time"

	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, 9, 12, h, m, 0, 0, time.UTC)
}

func testFields() (*models.Field, *models.Field) {
	return &models.Field{ID: 1, OwnerID: 10, Name: "North Pitch"},
		&models.Field{ID: 2, OwnerID: 10, Name: "South Pitch"}
}

func TestCreateBookingConflict(t *testing.T) {
	fieldA, _ := testFields()
	repo := newMockRepo(fieldA)
	repo.seed(&models.Booking{
		UserID: 20, FieldID: fieldA.ID,
		StartTime: at(10, 0), EndTime: at(11, 0),
		Status: string(domain.StatusConfirmed),
	})

	uc := NewCreateBooking(repo, nil, nil)
	requester := access.Requester{ID: 21, Role: access.RoleRegular}

	tests := []struct {
		name       string
		start, end time.Time
		wantCode   string
	}{
		{"identical slot", at(10, 0), at(11, 0), "time_conflict"},
		{"overlapping tail", at(10, 30), at(11, 30), "time_conflict"},
		{"containing slot", at(9, 0), at(12, 0), "time_conflict"},
		{"contained slot", at(10, 15), at(10, 45), "time_conflict"},
		{"back to back after", at(11, 0), at(12, 0), ""},
		{"back to back before", at(9, 0), at(10, 0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), requester, CreateBookingInput{
				FieldID: fieldA.ID,
				Start:   tt.start,
				End:     tt.end,
			})
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Fatalf("got %v, want business error %q", err, tt.wantCode)
			}
		})
	}
}

func TestCreateBookingDifferentFieldsDoNotConflict(t *testing.T) {
	fieldA, fieldB := testFields()
	repo := newMockRepo(fieldA, fieldB)
	repo.seed(&models.Booking{
		UserID: 20, FieldID: fieldA.ID,
		StartTime: at(10, 0), EndTime: at(11, 0),
		Status: string(domain.StatusPending),
	})

	uc := NewCreateBooking(repo, nil, nil)
	requester := access.Requester{ID: 21, Role: access.RoleRegular}

	b, err := uc.Execute(context.Background(), requester, CreateBookingInput{
		FieldID: fieldB.ID,
		Start:   at(10, 0),
		End:     at(11, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.FieldID != fieldB.ID {
		t.Errorf("booking landed on field %d, want %d", b.FieldID, fieldB.ID)
	}
}

func TestCreateBookingCancelledSlotIsFree(t *testing.T) {
	fieldA, _ := testFields()
	repo := newMockRepo(fieldA)
	repo.seed(&models.Booking{
		UserID: 20, FieldID: fieldA.ID,
		StartTime: at(10, 0), EndTime: at(11, 0),
		Status: string(domain.StatusCancelled),
	})

	uc := NewCreateBooking(repo, nil, nil)
	requester := access.Requester{ID: 21, Role: access.RoleRegular}

	if _, err := uc.Execute(context.Background(), requester, CreateBookingInput{
		FieldID: fieldA.ID,
		Start:   at(10, 0),
		End:     at(11, 0),
	}); err != nil {
		t.Fatalf("cancelled booking should not hold the slot: %v", err)
	}
}

func TestCreateBookingOwnField(t *testing.T) {
	fieldA, _ := testFields()
	repo := newMockRepo(fieldA)

	uc := NewCreateBooking(repo, nil, nil)
	owner := access.Requester{ID: fieldA.OwnerID, Role: access.RoleOwner}

	_, err := uc.Execute(context.Background(), owner, CreateBookingInput{
		FieldID: fieldA.ID,
		Start:   at(10, 0),
		End:     at(11, 0),
	})
	if !httperr.IsBusiness(err, "own_field_booking") {
		t.Fatalf("got %v, want own_field_booking", err)
	}
}

func TestCreateBookingInvalidInterval(t *testing.T) {
	fieldA, _ := testFields()
	repo := newMockRepo(fieldA)

	uc := NewCreateBooking(repo, nil, nil)
	requester := access.Requester{ID: 21, Role: access.RoleRegular}

	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"zero length", at(10, 0), at(10, 0)},
		{"end before start", at(11, 0), at(10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), requester, CreateBookingInput{
				FieldID: fieldA.ID,
				Start:   tt.start,
				End:     tt.end,
			})
			if !httperr.IsBusiness(err, "invalid_interval") {
				t.Fatalf("got %v, want invalid_interval", err)
			}
		})
	}
}

func TestCreateBookingUnknownField(t *testing.T) {
	repo := newMockRepo()
	uc := NewCreateBooking(repo, nil, nil)
	requester := access.Requester{ID: 21, Role: access.RoleRegular}

	_, err := uc.Execute(context.Background(), requester, CreateBookingInput{
		FieldID: 99,
		Start:   at(10, 0),
		End:     at(11, 0),
	})
	if !httperr.IsBusiness(err, "field_not_found") {
		t.Fatalf("got %v, want field_not_found", err)
	}
}

func TestCreateBookingStartsPending(t *testing.T) {
	fieldA, _ := testFields()
	repo := newMockRepo(fieldA)
	uc := NewCreateBooking(repo, nil, nil)
	requester := access.Requester{ID: 21, Role: access.RoleRegular}

	b, err := uc.Execute(context.Background(), requester, CreateBookingInput{
		FieldID: fieldA.ID,
		Start:   at(10, 0),
		End:     at(11, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(domain.StatusPending) {
		t.Errorf("new booking status = %q, want %q", b.Status, domain.StatusPending)
	}
	if b.UserID != requester.ID {
		t.Errorf("booking user = %d, want requester %d", b.UserID, requester.ID)
	}
}
