package score

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/raayanhq/raayan/internal/domain"
)

// Journey durations arrive as "<H>h <M>m" strings. A duration that does not
// parse falls back to this, matching the normalizer's default duration.
const fallbackDurationMinutes = 510

// Price at or above which an option is described as premium rather than
// budget-friendly, in INR.
const premiumPriceThreshold = 800

var durationRE = regexp.MustCompile(`(\d+)\s*h\s*(\d+)\s*m`)

// DurationMinutes parses a "<H>h <M>m" journey duration into total minutes.
func DurationMinutes(s string) (float64, bool) {
	m := durationRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return float64(hours*60 + mins), true
}

// Travel applies the bus policy: no cart and no discount stack, just price,
// journey time, and rating under the shared weights. Offers must be
// non-empty.
//
// TimeSaved in the recommendation is always zero for travel; the food policy
// computes a real figure and this asymmetry is carried over deliberately,
// pending product clarification.
func Travel(offers []domain.TravelOffer) (*domain.TravelAnalysis, error) {
	if len(offers) == 0 {
		return nil, domain.ErrNoOffers
	}

	durations := make([]float64, len(offers))
	var maxPrice, maxDuration float64
	for i, off := range offers {
		d, ok := DurationMinutes(off.Duration)
		if !ok {
			d = fallbackDurationMinutes
		}
		durations[i] = d
		if d > maxDuration {
			maxDuration = d
		}
		if off.Price > maxPrice {
			maxPrice = off.Price
		}
	}

	scored := make([]domain.ScoredTravelOffer, 0, len(offers))
	for i, off := range offers {
		priceScore := 0.0
		if maxPrice > 0 {
			priceScore = 1 - off.Price/maxPrice
		}
		timeScore := 0.0
		if maxDuration > 0 {
			timeScore = 1 - durations[i]/maxDuration
		}
		ratingScore := off.Rating / 5
		scored = append(scored, domain.ScoredTravelOffer{
			TravelOffer: off,
			Score:       compose(priceScore, timeScore, ratingScore),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	pick := scored[0]

	return &domain.TravelAnalysis{
		Results: scored,
		Recommendation: domain.TravelRecommendation{
			Pick:      pick,
			Reasoning: travelReasoning(pick),
			Savings:   math.Round(maxPrice - pick.Price),
			TimeSaved: 0,
		},
	}, nil
}

func travelReasoning(pick domain.ScoredTravelOffer) string {
	tier := "premium"
	if pick.Price < premiumPriceThreshold {
		tier = "budget-friendly"
	}
	return fmt.Sprintf(
		"This bus offers the best combination: ₹%.0f (%s), %s journey time, departs at %s, %d seats available, and a %.1f rating. %s for comfortable travel.",
		pick.Price, tier, pick.Duration, pick.Departure, pick.Seats, pick.Rating, pick.BusType)
}
