package field

import (
	"context"
	"testing"

	"github.com/paulmach/orb"

	domainbooking "github.com/openpitch/field-booking/internal/domain/booking"
	"github.com/openpitch/field-booking/internal/models"
)

func catalogRepo() *mockFieldRepo {
	return &mockFieldRepo{
		fields: []*models.Field{
			{ID: 1, OwnerID: 10, Name: "Far Pitch", Longitude: 0.05, Latitude: 0, Active: true},
			{ID: 2, OwnerID: 10, Name: "Near Pitch", Longitude: 0.01, Latitude: 0, Active: true},
			{ID: 3, OwnerID: 11, Name: "Mid Pitch", Longitude: 0.03, Latitude: 0, Active: true},
			{ID: 4, OwnerID: 11, Name: "Closed Pitch", Longitude: 0.02, Latitude: 0, Active: false},
		},
		bookings: []models.Booking{
			{ID: 1, FieldID: 3, UserID: 20, StartTime: hoursFromNow(1), EndTime: hoursFromNow(2), Status: string(domainbooking.StatusConfirmed)},
		},
	}
}

func TestListFieldsNaturalOrderWithoutCoordinate(t *testing.T) {
	uc := NewListFields(catalogRepo())

	items, err := uc.Execute(context.Background(), ListFieldsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 4 {
		t.Fatalf("got %d fields, want 4", len(items))
	}
	for i, wantID := range []uint{1, 2, 3, 4} {
		if items[i].ID != wantID {
			t.Errorf("items[%d].ID = %d, want %d (natural order)", i, items[i].ID, wantID)
		}
		if items[i].DistanceMeters != nil {
			t.Errorf("items[%d] has a distance without a caller coordinate", i)
		}
		if items[i].Available != nil {
			t.Errorf("items[%d] has availability without a candidate interval", i)
		}
	}
}

func TestListFieldsOrdersByDistance(t *testing.T) {
	uc := NewListFields(catalogRepo())
	caller := orb.Point{0, 0}

	items, err := uc.Execute(context.Background(), ListFieldsInput{Coordinate: &caller})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []uint{2, 4, 3, 1}
	if len(items) != len(wantOrder) {
		t.Fatalf("got %d fields, want %d", len(items), len(wantOrder))
	}
	for i, wantID := range wantOrder {
		if items[i].ID != wantID {
			t.Errorf("items[%d].ID = %d, want %d (ascending distance)", i, items[i].ID, wantID)
		}
		if items[i].DistanceMeters == nil {
			t.Fatalf("items[%d] missing distance", i)
		}
	}
	for i := 1; i < len(items); i++ {
		if *items[i].DistanceMeters < *items[i-1].DistanceMeters {
			t.Errorf("distances not ascending at index %d", i)
		}
	}
}

func TestListFieldsAvailabilityAnnotation(t *testing.T) {
	uc := NewListFields(catalogRepo())
	ivl := domainbooking.NewInterval(hoursFromNow(1), hoursFromNow(2))

	items, err := uc.Execute(context.Background(), ListFieldsInput{Interval: &ivl})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := map[uint]bool{}
	for _, it := range items {
		if it.Available == nil {
			t.Fatalf("field %d missing availability", it.ID)
		}
		byID[it.ID] = *it.Available
	}

	if byID[3] {
		t.Error("field 3 has an overlapping booking, want available=false")
	}
	for _, id := range []uint{1, 2, 4} {
		if !byID[id] {
			t.Errorf("field %d has no overlapping booking, want available=true", id)
		}
	}
}

func TestListFieldsAvailableOnly(t *testing.T) {
	uc := NewListFields(catalogRepo())
	ivl := domainbooking.NewInterval(hoursFromNow(1), hoursFromNow(2))

	items, err := uc.Execute(context.Background(), ListFieldsInput{
		Interval:      &ivl,
		AvailableOnly: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, it := range items {
		if it.ID == 3 {
			t.Error("field 3 should be filtered out")
		}
	}
	if len(items) != 3 {
		t.Errorf("got %d fields, want 3", len(items))
	}
}

func TestListFieldsActiveOnly(t *testing.T) {
	uc := NewListFields(catalogRepo())

	items, err := uc.Execute(context.Background(), ListFieldsInput{ActiveOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, it := range items {
		if !it.Active {
			t.Errorf("inactive field %d in active-only listing", it.ID)
		}
	}
	if len(items) != 3 {
		t.Errorf("got %d fields, want 3", len(items))
	}
}

// Availability is derived on read, so asking twice must not change the
// answer.
func TestListFieldsAvailabilityIsIdempotent(t *testing.T) {
	uc := NewListFields(catalogRepo())
	ivl := domainbooking.NewInterval(hoursFromNow(1), hoursFromNow(2))

	first, err := uc.Execute(context.Background(), ListFieldsInput{Interval: &ivl})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), ListFieldsInput{Interval: &ivl})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result size changed between reads: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if *first[i].Available != *second[i].Available {
			t.Errorf("availability of field %d changed between reads", first[i].ID)
		}
	}
}
