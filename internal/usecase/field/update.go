package field

import (
	"context"

	"gorm.io/datatypes"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/domain/access"
	domain "github.com/openpitch/field-booking/internal/domain/field"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/models"
)

// FieldPatch carries the mutable field attributes; nil means "leave
// unchanged".
type FieldPatch struct {
	Name          *string
	Address       *string
	ContactNumber *string
	Description   *string
	PricePerHour  *float64
	Longitude     *float64
	Latitude      *float64
	Facilities    map[string]any
	Active        *bool
}

type UpdateField struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateField(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateField {
	return &UpdateField{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateField) Execute(
	ctx context.Context,
	requester access.Requester,
	fieldID uint,
	patch FieldPatch,
) (*models.Field, error) {

	f, err := uc.repo.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutateField(requester, f.OwnerID) {
		return nil, httperr.ErrForbidden("forbidden", "not allowed to modify this field")
	}

	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Address != nil {
		f.Address = *patch.Address
	}
	if patch.ContactNumber != nil {
		f.ContactNumber = *patch.ContactNumber
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.PricePerHour != nil {
		if *patch.PricePerHour < 0 {
			return nil, httperr.ErrValidation("invalid_price", "hourly price must not be negative")
		}
		f.PricePerHour = *patch.PricePerHour
	}
	if patch.Longitude != nil {
		if *patch.Longitude < -180 || *patch.Longitude > 180 {
			return nil, httperr.ErrValidation("invalid_longitude", "longitude must be between -180 and 180")
		}
		f.Longitude = *patch.Longitude
	}
	if patch.Latitude != nil {
		if *patch.Latitude < -90 || *patch.Latitude > 90 {
			return nil, httperr.ErrValidation("invalid_latitude", "latitude must be between -90 and 90")
		}
		f.Latitude = *patch.Latitude
	}
	if patch.Facilities != nil {
		f.Facilities = datatypes.JSONMap(patch.Facilities)
	}
	if patch.Active != nil {
		f.Active = *patch.Active
	}

	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "field_updated",
		Entity:   "field",
		EntityID: &f.ID,
	})

	return f, nil
}
