package field

import (
	"context"

	"github.com/openpitch/field-booking/internal/domain/access"
	domainbooking "github.com/openpitch/field-booking/internal/domain/booking"
	domain "github.com/openpitch/field-booking/internal/domain/field"
	"github.com/openpitch/field-booking/internal/dto"
)

type GetField struct {
	repo     domain.Repository
	bookings domainbooking.Repository
}

func NewGetField(
	repo domain.Repository,
	bookings domainbooking.Repository,
) *GetField {
	return &GetField{
		repo:     repo,
		bookings: bookings,
	}
}

// Execute returns one field with its derived availability for an
// optional candidate interval. Requester may be nil (public read);
// admins and the field's owner additionally get the field's bookings
// embedded in the detail.
func (uc *GetField) Execute(
	ctx context.Context,
	requester *access.Requester,
	fieldID uint,
	ivl *domainbooking.Interval,
) (*dto.FieldDetail, error) {

	f, err := uc.repo.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	detail := &dto.FieldDetail{
		FieldListItem: dto.FieldListItem{Field: *f},
	}

	if ivl != nil {
		overlap, err := uc.bookings.HasOverlap(ctx, fieldID, *ivl)
		if err != nil {
			return nil, err
		}
		available := !overlap
		detail.Available = &available
	}

	if requester != nil && access.CanMutateBooking(*requester, f.OwnerID) {
		bookings, err := uc.bookings.ListForField(ctx, fieldID)
		if err != nil {
			return nil, err
		}
		detail.Bookings = bookings
	}

	return detail, nil
}
