package field

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openpitch/field-booking/internal/domain/access"
	domainbooking "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
}

func hoursFromNow(h int) time.Time {
	return fixedNow().Add(time.Duration(h) * time.Hour)
}

func TestDeleteFieldBlockedByFutureBookings(t *testing.T) {
	repo := &mockFieldRepo{
		fields: []*models.Field{{ID: 1, OwnerID: 10, Name: "North Pitch"}},
		bookings: []models.Booking{
			{ID: 1, FieldID: 1, UserID: 20, StartTime: hoursFromNow(1), EndTime: hoursFromNow(2), Status: string(domainbooking.StatusConfirmed)},
			{ID: 2, FieldID: 1, UserID: 21, StartTime: hoursFromNow(3), EndTime: hoursFromNow(4), Status: string(domainbooking.StatusPending)},
		},
	}

	uc := NewDeleteField(repo, nil)
	uc.now = fixedNow

	owner := access.Requester{ID: 10, Role: access.RoleOwner}
	err := uc.Execute(context.Background(), owner, 1)

	var upcoming *UpcomingBookingsError
	if !errors.As(err, &upcoming) {
		t.Fatalf("got %v, want UpcomingBookingsError", err)
	}
	if len(upcoming.Bookings) != 2 {
		t.Errorf("got %d conflicting bookings, want 2", len(upcoming.Bookings))
	}
	if len(repo.fields) != 1 {
		t.Error("field was deleted despite upcoming bookings")
	}
}

func TestDeleteFieldPastAndCancelledBookingsDoNotBlock(t *testing.T) {
	repo := &mockFieldRepo{
		fields: []*models.Field{{ID: 1, OwnerID: 10, Name: "North Pitch"}},
		bookings: []models.Booking{
			// Already over.
			{ID: 1, FieldID: 1, UserID: 20, StartTime: hoursFromNow(-3), EndTime: hoursFromNow(-2), Status: string(domainbooking.StatusConfirmed)},
			// Future but cancelled.
			{ID: 2, FieldID: 1, UserID: 21, StartTime: hoursFromNow(3), EndTime: hoursFromNow(4), Status: string(domainbooking.StatusCancelled)},
		},
	}

	uc := NewDeleteField(repo, nil)
	uc.now = fixedNow

	owner := access.Requester{ID: 10, Role: access.RoleOwner}
	if err := uc.Execute(context.Background(), owner, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.fields) != 0 {
		t.Error("field was not deleted")
	}
}

func TestDeleteFieldAdminBypassesGate(t *testing.T) {
	repo := &mockFieldRepo{
		fields: []*models.Field{{ID: 1, OwnerID: 10, Name: "North Pitch"}},
		bookings: []models.Booking{
			{ID: 1, FieldID: 1, UserID: 20, StartTime: hoursFromNow(1), EndTime: hoursFromNow(2), Status: string(domainbooking.StatusConfirmed)},
		},
	}

	uc := NewDeleteField(repo, nil)
	uc.now = fixedNow

	admin := access.Requester{ID: 1, Role: access.RoleAdmin}
	if err := uc.Execute(context.Background(), admin, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.fields) != 0 {
		t.Error("field was not deleted")
	}
}

func TestDeleteFieldForbidden(t *testing.T) {
	repo := &mockFieldRepo{
		fields: []*models.Field{{ID: 1, OwnerID: 10, Name: "North Pitch"}},
	}

	uc := NewDeleteField(repo, nil)
	uc.now = fixedNow

	tests := []struct {
		name      string
		requester access.Requester
	}{
		{"regular user", access.Requester{ID: 20, Role: access.RoleRegular}},
		{"another owner", access.Requester{ID: 11, Role: access.RoleOwner}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Execute(context.Background(), tt.requester, 1)
			if !httperr.IsBusiness(err, "forbidden") {
				t.Fatalf("got %v, want forbidden", err)
			}
		})
	}
}
