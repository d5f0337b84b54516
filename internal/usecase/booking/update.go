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

// BookingPatch carries the mutable booking attributes; nil means "leave
// unchanged".
type BookingPatch struct {
	Start  *time.Time
	End    *time.Time
	Status *string
}

type UpdateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Publisher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	requester access.Requester,
	bookingID uint,
	patch BookingPatch,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutateBooking(requester, b.Field.OwnerID) {
		return nil, httperr.ErrForbidden("forbidden", "not allowed to modify this booking")
	}

	wasOccupying := domain.Occupies(domain.Status(b.Status))

	if patch.Start != nil {
		b.StartTime = *patch.Start
	}
	if patch.End != nil {
		b.EndTime = *patch.End
	}
	if patch.Status != nil {
		if !domain.ValidStatus(domain.Status(*patch.Status)) {
			return nil, httperr.ErrValidation("invalid_status", "invalid booking status")
		}
		b.Status = *patch.Status
	}

	ivl := domain.NewInterval(b.StartTime, b.EndTime)
	if !ivl.Valid() {
		return nil, httperr.ErrValidation("invalid_interval", "end time must be after start time")
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		if httperr.IsExclusionConflict(err) {
			err = httperr.ErrConflict("time_conflict", "time slot already booked")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	if wasOccupying && domain.Status(b.Status) == domain.StatusCancelled {
		uc.events.BookingCancelled(ctx, events.BookingEvent{
			BookingID: b.ID,
			FieldID:   b.FieldID,
			UserID:    b.UserID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		})
	}

	return b, nil
}
