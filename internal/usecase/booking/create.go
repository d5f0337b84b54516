package booking

import (
	"context"
	"time"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/events"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	FieldID uint
	Start   time.Time
	End     time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	requester access.Requester,
	in CreateBookingInput,
) (*models.Booking, error) {

	ivl := domain.NewInterval(in.Start, in.End)
	if !ivl.Valid() {
		return nil, httperr.ErrValidation("invalid_interval", "end time must be after start time")
	}

	field, err := uc.repo.GetField(ctx, in.FieldID)
	if err != nil {
		return nil, err
	}

	if !access.CanCreateBooking(requester, field.OwnerID) {
		return nil, httperr.ErrValidation("own_field_booking", "cannot book your own field")
	}

	b := &models.Booking{
		UserID:    requester.ID,
		FieldID:   field.ID,
		StartTime: in.Start,
		EndTime:   in.End,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsExclusionConflict(err) {
			err = httperr.ErrConflict("time_conflict", "time slot already booked")
		}
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				UserID:   &requester.ID,
				Action:   "booking_conflict",
				Entity:   "booking",
				Metadata: map[string]any{"field_id": field.ID, "start": in.Start, "end": in.End},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.events.BookingCreated(ctx, events.BookingEvent{
		BookingID: b.ID,
		FieldID:   b.FieldID,
		UserID:    b.UserID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
	})

	return b, nil
}
