package booking

import (
	"context"

	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns one booking, visible to admins, the booked field's
// owner and the booker.
func (uc *GetBooking) Execute(
	ctx context.Context,
	requester access.Requester,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !access.CanViewBooking(requester, b.Field.OwnerID, b.UserID) {
		return nil, httperr.ErrForbidden("forbidden", "not allowed to view this booking")
	}

	return b, nil
}
