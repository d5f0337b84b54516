package booking

import (
	"context"

	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

type ListFieldBookings struct {
	repo domain.Repository
}

func NewListFieldBookings(repo domain.Repository) *ListFieldBookings {
	return &ListFieldBookings{repo: repo}
}

// Execute lists every booking on one field, visible to admins and the
// field's owner only.
func (uc *ListFieldBookings) Execute(
	ctx context.Context,
	requester access.Requester,
	fieldID uint,
) ([]models.Booking, error) {

	field, err := uc.repo.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutateBooking(requester, field.OwnerID) {
		return nil, httperr.ErrForbidden("forbidden", "not allowed to view bookings for this field")
	}

	return uc.repo.ListForField(ctx, fieldID)
}
