package booking

import (
	"context"

	"github.com/openpitch/field-booking/internal/domain/access"
	"github.com/openpitch/field-booking/internal/models"
)

type Repository interface {
	// -------- Field lookups --------
	GetField(
		ctx context.Context,
		fieldID uint,
	) (*models.Field, error)

	// -------- Booking (create / update with conflict guard) --------
	// CreateBooking and UpdateBooking run the overlap check and the
	// write inside one transaction, locking the field's occupying
	// bookings so concurrent requests on the same field serialize.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read / delete) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		bookingID uint,
	) error

	ListScoped(
		ctx context.Context,
		scope access.BookingScope,
		requesterID uint,
	) ([]models.Booking, error)

	ListForField(
		ctx context.Context,
		fieldID uint,
	) ([]models.Booking, error)

	// -------- Availability --------
	HasOverlap(
		ctx context.Context,
		fieldID uint,
		ivl Interval,
	) (bool, error)
}
