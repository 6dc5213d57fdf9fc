package normalize

import (
	"testing"
)

func TestFoodOffersDefaultsEverything(t *testing.T) {
	offers := FoodOffers([]byte(`[{}]`), "Paradise Biryani")
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}

	off := offers[0]
	if off.Platform != "Swiggy" {
		t.Errorf("platform default: got %q", off.Platform)
	}
	if off.Restaurant != "Paradise Biryani" {
		t.Errorf("restaurant should fall back to the search term, got %q", off.Restaurant)
	}
	if off.DeliveryFee != 40 || off.ETA != 35 || off.Rating != 4.0 {
		t.Errorf("numeric defaults wrong: fee=%f eta=%f rating=%f", off.DeliveryFee, off.ETA, off.Rating)
	}
	if off.FreeDeliveryAbove != 199 || off.NewUserDiscount != 50 || off.PlatformFee != 5 {
		t.Errorf("discount defaults wrong: %+v", off)
	}
	if off.MinOrderDiscount.MinOrder != 300 || off.MinOrderDiscount.Discount != 15 {
		t.Errorf("min-order default wrong: %+v", off.MinOrderDiscount)
	}
	if off.AvailableItems == nil || len(off.AvailableItems) != 0 {
		t.Errorf("menu should default to an empty slice, got %v", off.AvailableItems)
	}
}

func TestFoodOffersRepairsWrongTypes(t *testing.T) {
	raw := []byte(`[{
		"platform": "Zomato",
		"restaurant": "Bawarchi",
		"deliveryFee": "forty",
		"eta": "soon",
		"rating": "high",
		"minOrderDiscount": "none",
		"availableItems": "unavailable"
	}]`)

	offers := FoodOffers(raw, "")
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}

	off := offers[0]
	if off.Platform != "Zomato" || off.Restaurant != "Bawarchi" {
		t.Errorf("valid strings must survive: %+v", off)
	}
	if off.DeliveryFee != 40 || off.ETA != 35 || off.Rating != 4.0 {
		t.Errorf("string-typed numbers must be defaulted: %+v", off)
	}
	if off.MinOrderDiscount.MinOrder != 300 {
		t.Errorf("scalar minOrderDiscount must be defaulted: %+v", off.MinOrderDiscount)
	}
	if len(off.AvailableItems) != 0 {
		t.Errorf("non-array menu must become empty: %v", off.AvailableItems)
	}
}

func TestFoodOffersRepairsMenuItems(t *testing.T) {
	raw := []byte(`[{
		"restaurant": "Mehfil",
		"availableItems": [
			{"name": "Chicken Biryani", "price": 320, "category": "Biryani"},
			{"price": "cheap"},
			"not an object"
		]
	}]`)

	offers := FoodOffers(raw, "")
	items := offers[0].AvailableItems
	if len(items) != 3 {
		t.Fatalf("no menu item may be dropped, got %d", len(items))
	}
	if items[0].Name != "Chicken Biryani" || items[0].Price != 320 {
		t.Errorf("valid item mangled: %+v", items[0])
	}
	if items[1].Name != "Item" || items[1].Price != 200 || items[1].Category != "Main Course" {
		t.Errorf("partial item not defaulted: %+v", items[1])
	}
	if items[2].Name != "Item" || items[2].Price != 200 {
		t.Errorf("scalar item not defaulted: %+v", items[2])
	}
}

func TestFoodOffersPreserveOrder(t *testing.T) {
	raw := []byte(`[
		{"restaurant": "First"},
		{"restaurant": "Second"},
		{"restaurant": "Third"}
	]`)

	offers := FoodOffers(raw, "")
	want := []string{"First", "Second", "Third"}
	if len(offers) != len(want) {
		t.Fatalf("no candidate may be dropped, got %d", len(offers))
	}
	for i, name := range want {
		if offers[i].Restaurant != name {
			t.Errorf("order changed at %d: got %q", i, offers[i].Restaurant)
		}
	}
}

func TestFoodOffersObjectRoot(t *testing.T) {
	raw := []byte(`{"restaurants": [{"restaurant": "Wrapped"}]}`)
	offers := FoodOffers(raw, "")
	if len(offers) != 1 || offers[0].Restaurant != "Wrapped" {
		t.Errorf("object-wrapped array not unwrapped: %+v", offers)
	}
}

func TestFoodOffersUndecodable(t *testing.T) {
	if offers := FoodOffers([]byte(`"just a string"`), ""); offers != nil {
		t.Errorf("non-array payload must yield nil, got %v", offers)
	}
}

func TestTravelOffersDefaults(t *testing.T) {
	offers := TravelOffers([]byte(`[{}]`))
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}

	off := offers[0]
	if off.Platform != "RedBus" || off.Operator != "Unknown Operator" || off.BusType != "AC Sleeper" {
		t.Errorf("string defaults wrong: %+v", off)
	}
	if off.Price != 800 || off.Rating != 4.0 || off.Seats != 10 {
		t.Errorf("numeric defaults wrong: %+v", off)
	}
	if off.Duration != "8h 30m" || off.Departure != "22:00" || off.Arrival != "06:30" {
		t.Errorf("schedule defaults wrong: %+v", off)
	}
}

func TestExtractJSONFenced(t *testing.T) {
	content := "Here are the options:\n```json\n[{\"operator\": \"VRL\"}]\n```\nLet me know if you need more."

	raw, ok := ExtractJSON(content)
	if !ok {
		t.Fatal("expected JSON to be extracted from the fenced block")
	}
	offers := TravelOffers(raw)
	if len(offers) != 1 || offers[0].Operator != "VRL" {
		t.Errorf("fenced extraction produced %+v", offers)
	}
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	content := `Sure! The results are [{"restaurant": "Bawarchi"}] based on current listings.`

	raw, ok := ExtractJSON(content)
	if !ok {
		t.Fatal("expected the embedded array to be extracted")
	}
	offers := FoodOffers(raw, "")
	if len(offers) != 1 || offers[0].Restaurant != "Bawarchi" {
		t.Errorf("prose extraction produced %+v", offers)
	}
}

func TestExtractJSONNoJSON(t *testing.T) {
	if _, ok := ExtractJSON("I could not find any delivery options for that area."); ok {
		t.Error("expected no JSON to be found")
	}
	if _, ok := ExtractJSON("broken [ {\"a\": } ] json"); ok {
		t.Error("invalid JSON must not be accepted")
	}
}
