package field

import (
	"context"
	"sort"

	"github.com/paulmach/orb"

	domainbooking "github.com/openpitch/field-booking/internal/domain/booking"
	domain "github.com/openpitch/field-booking/internal/domain/field"
	"github.com/openpitch/field-booking/internal/dto"
	"github.com/openpitch/field-booking/internal/geo"
)

// ======================================================
// INPUT
// ======================================================

type ListFieldsInput struct {
	// Coordinate, when present, adds a derived distance to every entry
	// and orders the catalog by ascending distance.
	Coordinate *orb.Point

	// Interval, when present, annotates every entry with advertised
	// availability for that candidate slot. Availability is recomputed
	// on every read; it is never persisted.
	Interval *domainbooking.Interval

	ActiveOnly bool

	// AvailableOnly drops entries with a conflicting booking instead of
	// just annotating them. Requires Interval.
	AvailableOnly bool
}

// ======================================================
// USE CASE
// ======================================================

type ListFields struct {
	repo domain.Repository
}

func NewListFields(repo domain.Repository) *ListFields {
	return &ListFields{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListFields) Execute(
	ctx context.Context,
	in ListFieldsInput,
) ([]dto.FieldListItem, error) {

	fields, err := uc.repo.List(ctx, in.ActiveOnly)
	if err != nil {
		return nil, err
	}

	var conflicting map[uint]bool
	if in.Interval != nil {
		conflicting, err = uc.repo.ConflictingFieldIDs(ctx, *in.Interval)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.FieldListItem, 0, len(fields))
	for _, f := range fields {
		item := dto.FieldListItem{Field: f}

		if in.Interval != nil {
			available := !conflicting[f.ID]
			if in.AvailableOnly && !available {
				continue
			}
			item.Available = &available
		}

		if in.Coordinate != nil {
			d := geo.DistanceMeters(*in.Coordinate, f.Longitude, f.Latitude)
			item.DistanceMeters = &d
		}

		items = append(items, item)
	}

	// Without a caller coordinate the catalog keeps its natural order.
	if in.Coordinate != nil {
		sort.SliceStable(items, func(i, j int) bool {
			return *items[i].DistanceMeters < *items[j].DistanceMeters
		})
	}

	return items, nil
}
