package field

import (
	"context"
	"time"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/field"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

// UpcomingBookingsError blocks field deletion while occupying bookings
// end in the future. It carries the conflicting bookings so the API can
// show the caller exactly what must be cancelled first.
type UpcomingBookingsError struct {
	Bookings []models.Booking
}

func (e *UpcomingBookingsError) Error() string {
	return "field has upcoming bookings"
}

type DeleteField struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewDeleteField(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteField {
	return &DeleteField{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *DeleteField) Execute(
	ctx context.Context,
	requester access.Requester,
	fieldID uint,
) error {

	f, err := uc.repo.Get(ctx, fieldID)
	if err != nil {
		return err
	}

	future, err := uc.repo.FutureBookings(ctx, fieldID, uc.now())
	if err != nil {
		return err
	}

	if !access.CanDeleteField(requester, f.OwnerID, len(future) > 0) {
		// The owner passes the mutation check but is gated by the
		// upcoming bookings; everyone else is plainly forbidden.
		if access.CanMutateField(requester, f.OwnerID) {
			return &UpcomingBookingsError{Bookings: future}
		}
		return httperr.ErrForbidden("forbidden", "not allowed to delete this field")
	}

	if err := uc.repo.Delete(ctx, fieldID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "field_deleted",
		Entity:   "field",
		EntityID: &fieldID,
	})

	return nil
}
