package search

import (
	"context"
	"testing"

	"github.com/raayanhq/raayan/internal/normalize"
)

func TestMockFindRestaurantsAll(t *testing.T) {
	m := NewMock()
	raw, err := m.FindRestaurants(context.Background(), "Hyderabad", "")
	if err != nil {
		t.Fatalf("FindRestaurants: %v", err)
	}

	payload, ok := normalize.ExtractJSON(raw)
	if !ok {
		t.Fatal("mock response must contain valid JSON")
	}
	offers := normalize.FoodOffers(payload, "")
	if len(offers) != 7 {
		t.Fatalf("expected the full catalog of 7 offers, got %d", len(offers))
	}
}

func TestMockFindRestaurantsFilter(t *testing.T) {
	m := NewMock()
	raw, err := m.FindRestaurants(context.Background(), "Hyderabad", "bawarchi")
	if err != nil {
		t.Fatalf("FindRestaurants: %v", err)
	}

	payload, ok := normalize.ExtractJSON(raw)
	if !ok {
		t.Fatal("mock response must contain valid JSON")
	}
	offers := normalize.FoodOffers(payload, "Bawarchi")
	if len(offers) != 3 {
		t.Fatalf("expected 3 Bawarchi offers, got %d", len(offers))
	}
	for _, off := range offers {
		if off.Restaurant != "Bawarchi" {
			t.Errorf("filter leaked %q", off.Restaurant)
		}
	}
}

func TestMockFindBuses(t *testing.T) {
	m := NewMock()
	raw, err := m.FindBuses(context.Background(), "Hyderabad", "Bangalore", "2026-09-15")
	if err != nil {
		t.Fatalf("FindBuses: %v", err)
	}

	payload, ok := normalize.ExtractJSON(raw)
	if !ok {
		t.Fatal("mock response must contain valid JSON")
	}
	offers := normalize.TravelOffers(payload)
	if len(offers) != 6 {
		t.Fatalf("expected 6 bus offers, got %d", len(offers))
	}
	for _, off := range offers {
		if off.Price <= 0 || off.Seats <= 0 {
			t.Errorf("offer missing economics: %+v", off)
		}
	}
}
