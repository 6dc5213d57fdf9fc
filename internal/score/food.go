// Package score ranks normalized offers and selects the best one. Scores
// are normalized against the extremes of the current candidate set, so they
// express relative ranking within one comparison and are not comparable
// across calls.
package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/raayanhq/raayan/internal/domain"
)

// Composite weights and the price-denominator padding. The padding keeps
// the most expensive offer's price score above zero and the scale stable
// when all prices are close.
const (
	weightPrice  = 0.5
	weightTime   = 0.3
	weightRating = 0.2
	pricePadding = 100
)

type FoodInput struct {
	Offers    []domain.FoodOffer
	Cart      []domain.CartLine
	IsNewUser bool
}

// Food applies the food policy: resolve the cart against each offer's menu,
// work out the delivery and discount economics, score, rank, and extract a
// recommendation. Offers must be non-empty.
func Food(in FoodInput) (*domain.FoodAnalysis, error) {
	if len(in.Offers) == 0 {
		return nil, domain.ErrNoOffers
	}

	scored := make([]domain.ScoredFoodOffer, 0, len(in.Offers))
	var maxETA float64
	for _, off := range in.Offers {
		if off.ETA > maxETA {
			maxETA = off.ETA
		}
		scored = append(scored, priceOut(off, in.Cart, in.IsNewUser))
	}

	var maxFinal float64
	for _, s := range scored {
		if s.FinalPrice > maxFinal {
			maxFinal = s.FinalPrice
		}
	}

	for i := range scored {
		priceScore := 1 - scored[i].FinalPrice/(maxFinal+pricePadding)
		timeScore := 0.0
		if maxETA > 0 {
			timeScore = 1 - scored[i].ETA/maxETA
		}
		ratingScore := scored[i].Rating / 5
		scored[i].Score = compose(priceScore, timeScore, ratingScore)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	pick := scored[0]

	return &domain.FoodAnalysis{
		Results: scored,
		Recommendation: domain.FoodRecommendation{
			Pick:      pick,
			Reasoning: foodReasoning(pick, scored),
			Savings:   math.Round(maxFinal - pick.FinalPrice),
			TimeSaved: math.Round(maxETA - pick.ETA),
		},
	}, nil
}

// priceOut resolves the cart and computes one offer's bill: subtotal,
// delivery-fee waiver, the discount stack, and the clamped final price.
func priceOut(off domain.FoodOffer, cart []domain.CartLine, isNewUser bool) domain.ScoredFoodOffer {
	var subtotal float64
	var items []domain.OrderedItem

	for _, line := range cart {
		for _, mi := range off.AvailableItems {
			if mi.Name == line.Name {
				subtotal += mi.Price * float64(line.Quantity)
				items = append(items, domain.OrderedItem{MenuItem: mi, Quantity: line.Quantity})
				break
			}
		}
	}

	// An empty or fully-unmatched cart falls back to one unit of the first
	// menu item, so every offer keeps a non-zero, comparable price.
	if subtotal == 0 && len(off.AvailableItems) > 0 {
		first := off.AvailableItems[0]
		subtotal = first.Price
		items = append(items, domain.OrderedItem{MenuItem: first, Quantity: 1})
	}

	deliveryFee := off.DeliveryFee
	if subtotal >= off.FreeDeliveryAbove {
		deliveryFee = 0
	}

	var newUserAmount float64
	if isNewUser {
		newUserAmount = off.NewUserDiscount
	}

	var minOrderAmount float64
	if subtotal >= off.MinOrderDiscount.MinOrder {
		minOrderAmount = math.Round(subtotal * off.MinOrderDiscount.Discount / 100)
	}

	totalDiscount := newUserAmount + minOrderAmount
	finalPrice := math.Max(0, subtotal+deliveryFee+off.PlatformFee-totalDiscount)

	s := domain.ScoredFoodOffer{FoodOffer: off}
	s.DeliveryFee = deliveryFee
	s.ItemsOrdered = items
	s.Subtotal = math.Round(subtotal)
	s.IsFreeDelivery = deliveryFee == 0
	s.NewUserDiscountAmount = newUserAmount
	s.MinOrderDiscountAmount = minOrderAmount
	s.TotalDiscount = totalDiscount
	s.FinalPrice = math.Round(finalPrice)
	s.AmountToFreeDelivery = math.Max(0, off.FreeDeliveryAbove-subtotal)
	return s
}

func compose(priceScore, timeScore, ratingScore float64) int {
	raw := weightPrice*priceScore + weightTime*timeScore + weightRating*ratingScore
	return int(math.Round(raw * 100))
}

// foodReasoning templates the justification, concatenating only the clauses
// that apply to the pick.
func foodReasoning(pick domain.ScoredFoodOffer, all []domain.ScoredFoodOffer) string {
	var b strings.Builder
	b.WriteString("Best value choice. ")

	if pick.IsFreeDelivery {
		saved := float64(DefaultSavedDeliveryFee)
		for _, s := range all {
			if !s.IsFreeDelivery {
				saved = s.DeliveryFee
				break
			}
		}
		fmt.Fprintf(&b, "Free delivery (saves ₹%.0f). ", saved)
	} else if pick.AmountToFreeDelivery > 0 {
		fmt.Fprintf(&b, "Add ₹%.0f more for free delivery. ", pick.AmountToFreeDelivery)
	}

	if pick.NewUserDiscountAmount > 0 {
		fmt.Fprintf(&b, "New user offer: flat ₹%.0f off. ", pick.NewUserDiscountAmount)
	}

	if pick.MinOrderDiscountAmount > 0 {
		fmt.Fprintf(&b, "%.0f%% off on orders above ₹%.0f (saves ₹%.0f). ",
			pick.MinOrderDiscount.Discount, pick.MinOrderDiscount.MinOrder, pick.MinOrderDiscountAmount)
	}

	fmt.Fprintf(&b, "Delivery in %.0f mins. Rated %.1f. Total savings: ₹%.0f.",
		pick.ETA, pick.Rating, pick.TotalDiscount)
	return b.String()
}

// DefaultSavedDeliveryFee is quoted in the reasoning when every offer in the
// set qualified for free delivery and there is no real fee to cite.
const DefaultSavedDeliveryFee = 40
