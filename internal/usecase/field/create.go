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

// ======================================================
// INPUT
// ======================================================

type CreateFieldInput struct {
	Name          string
	Address       string
	ContactNumber string
	Description   string
	PricePerHour  float64
	Longitude     float64
	Latitude      float64
	Facilities    map[string]any
}

// ======================================================
// USE CASE
// ======================================================

type CreateField struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateField(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateField {
	return &CreateField{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateField) Execute(
	ctx context.Context,
	requester access.Requester,
	in CreateFieldInput,
) (*models.Field, error) {

	if !access.CanCreateField(requester) {
		return nil, httperr.ErrForbidden("forbidden", "only field owners can create fields")
	}

	if in.Name == "" {
		return nil, httperr.ErrValidation("missing_name", "field name is required")
	}
	if in.PricePerHour < 0 {
		return nil, httperr.ErrValidation("invalid_price", "hourly price must not be negative")
	}

	f := &models.Field{
		OwnerID:       requester.ID, // always the requester, never the payload
		Name:          in.Name,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Description:   in.Description,
		PricePerHour:  in.PricePerHour,
		Longitude:     in.Longitude,
		Latitude:      in.Latitude,
		Facilities:    datatypes.JSONMap(in.Facilities),
		Active:        true,
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "field_created",
		Entity:   "field",
		EntityID: &f.ID,
	})

	return f, nil
}
