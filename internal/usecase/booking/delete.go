package booking

import (
	"context"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a booking. The ledger itself has no delete guard; who
// may call this is decided entirely by the capability check.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	requester access.Requester,
	bookingID uint,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if !access.CanMutateBooking(requester, b.Field.OwnerID) {
		return httperr.ErrForbidden("forbidden", "not allowed to delete this booking")
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
