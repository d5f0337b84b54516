package dto

import "github.com/openpitch/field-booking/internal/models"

// FieldListItem is a catalog entry: the field plus derived, read-time
// attributes. Distance is present only when the caller supplied a
// coordinate; Available only when a candidate interval was supplied.
type FieldListItem struct {
	models.Field

	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	Available      *bool    `json:"available,omitempty"`
}

// FieldDetail extends a catalog entry with the bookings visible to
// admins and the field's owner.
type FieldDetail struct {
	FieldListItem

	Bookings []models.Booking `json:"bookings,omitempty"`
}
