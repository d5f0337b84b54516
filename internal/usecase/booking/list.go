package booking

import (
	"context"

	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns the booking collection scoped by the requester's role
// before any per-object consideration: admins see all bookings, owners
// the bookings on their fields, regular users their own.
func (uc *ListBookings) Execute(
	ctx context.Context,
	requester access.Requester,
) ([]models.Booking, error) {
	return uc.repo.ListScoped(ctx, access.ScopeFor(requester), requester.ID)
}
