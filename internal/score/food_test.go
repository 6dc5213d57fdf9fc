package score

import (
	"testing"

	"github.com/raayanhq/raayan/internal/domain"
)

func thaliMenu(price float64) []domain.MenuItem {
	return []domain.MenuItem{{Name: "Veg Thali", Price: price, Category: "Main Course"}}
}

func twoOfferInput() FoodInput {
	return FoodInput{
		Offers: []domain.FoodOffer{
			{
				Platform: "Swiggy", Restaurant: "Offer A",
				DeliveryFee: 40, ETA: 30, Rating: 4.5,
				FreeDeliveryAbove: 199, NewUserDiscount: 50,
				MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 300, Discount: 15},
				PlatformFee:      5,
				AvailableItems:   thaliMenu(300),
			},
			{
				Platform: "Zomato", Restaurant: "Offer B",
				DeliveryFee: 35, ETA: 45, Rating: 4.0,
				FreeDeliveryAbove: 400, NewUserDiscount: 0,
				MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 500, Discount: 10},
				PlatformFee:      3,
				AvailableItems:   thaliMenu(300),
			},
		},
		Cart:      []domain.CartLine{{Name: "Veg Thali", Quantity: 1}},
		IsNewUser: true,
	}
}

func TestFoodDiscountStack(t *testing.T) {
	out, err := Food(twoOfferInput())
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}

	pick := out.Recommendation.Pick
	if pick.Restaurant != "Offer A" {
		t.Fatalf("expected Offer A to rank first, got %s", pick.Restaurant)
	}

	// A: free delivery (300 >= 199), 15% min-order discount (45) plus flat 50
	// => 300 + 0 + 5 - 95 = 210.
	if !pick.IsFreeDelivery || pick.DeliveryFee != 0 {
		t.Errorf("expected free delivery for A, got fee %f", pick.DeliveryFee)
	}
	if pick.NewUserDiscountAmount != 50 {
		t.Errorf("expected new user discount 50, got %f", pick.NewUserDiscountAmount)
	}
	if pick.MinOrderDiscountAmount != 45 {
		t.Errorf("expected min-order discount 45, got %f", pick.MinOrderDiscountAmount)
	}
	if pick.FinalPrice != 210 {
		t.Errorf("expected final price 210 for A, got %f", pick.FinalPrice)
	}

	// B: paid delivery (300 < 400), no discounts => 300 + 35 + 3 = 338.
	var b domain.ScoredFoodOffer
	for _, s := range out.Results {
		if s.Restaurant == "Offer B" {
			b = s
		}
	}
	if b.IsFreeDelivery || b.DeliveryFee != 35 {
		t.Errorf("expected B delivery fee 35, got %f", b.DeliveryFee)
	}
	if b.FinalPrice != 338 {
		t.Errorf("expected final price 338 for B, got %f", b.FinalPrice)
	}

	// Recompute the composite by hand: maxFinal=338, maxEta=45.
	// A: 0.5*(1-210/438) + 0.3*(1-30/45) + 0.2*0.9 = 0.540274 -> 54
	// B: 0.5*(1-338/438) + 0.3*0       + 0.2*0.8 = 0.274155 -> 27
	if pick.Score != 54 {
		t.Errorf("expected score 54 for A, got %d", pick.Score)
	}
	if b.Score != 27 {
		t.Errorf("expected score 27 for B, got %d", b.Score)
	}

	if out.Recommendation.Savings != 128 {
		t.Errorf("expected savings 128, got %f", out.Recommendation.Savings)
	}
	if out.Recommendation.TimeSaved != 15 {
		t.Errorf("expected time saved 15, got %f", out.Recommendation.TimeSaved)
	}
}

func TestFoodFreeDeliveryThreshold(t *testing.T) {
	in := twoOfferInput()
	out, err := Food(in)
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}

	for _, s := range out.Results {
		free := s.Subtotal >= s.FreeDeliveryAbove
		if free != s.IsFreeDelivery {
			t.Errorf("%s: free-delivery flag %v does not match threshold", s.Restaurant, s.IsFreeDelivery)
		}
		if free && s.DeliveryFee != 0 {
			t.Errorf("%s: expected zero delivery fee, got %f", s.Restaurant, s.DeliveryFee)
		}
	}
}

func TestFoodFinalPriceClamped(t *testing.T) {
	in := FoodInput{
		Offers: []domain.FoodOffer{{
			Platform: "Swiggy", Restaurant: "Cheap Eats",
			DeliveryFee: 40, ETA: 30, Rating: 4.0,
			FreeDeliveryAbove: 199, NewUserDiscount: 500,
			MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 300, Discount: 15},
			PlatformFee:      5,
			AvailableItems:   thaliMenu(100),
		}},
		IsNewUser: true,
	}

	out, err := Food(in)
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}
	if got := out.Results[0].FinalPrice; got != 0 {
		t.Errorf("expected final price clamped to 0, got %f", got)
	}
}

func TestFoodEmptyCartFallback(t *testing.T) {
	in := twoOfferInput()
	in.Cart = nil

	out, err := Food(in)
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}

	for _, s := range out.Results {
		if s.Subtotal != 300 {
			t.Errorf("%s: expected first-item subtotal 300, got %f", s.Restaurant, s.Subtotal)
		}
		if len(s.ItemsOrdered) != 1 || s.ItemsOrdered[0].Quantity != 1 {
			t.Errorf("%s: expected exactly one unit of the first menu item", s.Restaurant)
		}
		if s.ItemsOrdered[0].Name != "Veg Thali" {
			t.Errorf("%s: fallback picked %s", s.Restaurant, s.ItemsOrdered[0].Name)
		}
	}
}

func TestFoodUnmatchedCartLinesSkipped(t *testing.T) {
	in := twoOfferInput()
	in.Cart = []domain.CartLine{
		{Name: "Veg Thali", Quantity: 2},
		{Name: "Not On The Menu", Quantity: 5},
	}

	out, err := Food(in)
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}
	for _, s := range out.Results {
		if s.Subtotal != 600 {
			t.Errorf("%s: expected subtotal 600 from matched lines only, got %f", s.Restaurant, s.Subtotal)
		}
		if len(s.ItemsOrdered) != 1 {
			t.Errorf("%s: unmatched line should not be resolved", s.Restaurant)
		}
	}
}

func TestFoodRankingAndBounds(t *testing.T) {
	out, err := Food(twoOfferInput())
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}

	for i := 1; i < len(out.Results); i++ {
		if out.Results[i-1].Score < out.Results[i].Score {
			t.Errorf("results not sorted descending at %d", i)
		}
	}
	if out.Recommendation.Pick.Score != out.Results[0].Score {
		t.Error("pick is not the top-ranked result")
	}
	for _, s := range out.Results {
		if s.Score < 0 || s.Score > 100 {
			t.Errorf("%s: score %d out of [0,100]", s.Restaurant, s.Score)
		}
	}
}

func TestFoodIdempotent(t *testing.T) {
	first, err := Food(twoOfferInput())
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}
	second, err := Food(twoOfferInput())
	if err != nil {
		t.Fatalf("Food failed: %v", err)
	}

	if len(first.Results) != len(second.Results) {
		t.Fatal("result lengths differ between identical calls")
	}
	for i := range first.Results {
		if first.Results[i].Score != second.Results[i].Score ||
			first.Results[i].FinalPrice != second.Results[i].FinalPrice {
			t.Errorf("result %d differs between identical calls", i)
		}
	}
	if first.Recommendation.Reasoning != second.Recommendation.Reasoning {
		t.Error("reasoning differs between identical calls")
	}
}

func TestFoodEmptyOffers(t *testing.T) {
	if _, err := Food(FoodInput{}); err != domain.ErrNoOffers {
		t.Errorf("expected ErrNoOffers, got %v", err)
	}
}
