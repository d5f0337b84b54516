package field

import (
	"context"
	"time"

	"github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.Field) error
	Get(ctx context.Context, fieldID uint) (*models.Field, error)
	Update(ctx context.Context, f *models.Field) error
	Delete(ctx context.Context, fieldID uint) error

	List(ctx context.Context, activeOnly bool) ([]models.Field, error)

	// FutureBookings returns the occupying bookings on a field whose end
	// time is strictly after now. A non-empty result blocks deletion for
	// everyone but admins.
	FutureBookings(
		ctx context.Context,
		fieldID uint,
		now time.Time,
	) ([]models.Booking, error)

	// ConflictingFieldIDs returns the set of field IDs with at least one
	// occupying booking overlapping the candidate interval. Used to
	// annotate (and optionally filter) catalog listings.
	ConflictingFieldIDs(
		ctx context.Context,
		ivl booking.Interval,
	) (map[uint]bool, error)
}
