package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/raayanhq/raayan/internal/domain"
)

// Savings estimate applied when a booking carries no comparison data.
const estimatedSavingsRate = 0.15

const defaultWindowDays = 30

// SpendSummary aggregates a user's completed bookings over an optional
// window.
func (s *Service) SpendSummary(ctx context.Context, userID string, start, end *time.Time) (*domain.SpendSummary, error) {
	bookings, err := s.repo.ListCompletedBookings(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	summary := summarizeSpend(bookings, start, end)
	return &summary, nil
}

func (s *Service) SavingsAnalysis(ctx context.Context, userID string) (*domain.SavingsAnalysis, error) {
	bookings, err := s.repo.ListCompletedBookings(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	analysis := analyzeSavings(bookings)
	return &analysis, nil
}

func (s *Service) TopPlatforms(ctx context.Context, userID string) ([]domain.PlatformSpend, error) {
	bookings, err := s.repo.ListCompletedBookings(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return rankPlatforms(bookings), nil
}

func summarizeSpend(bookings []domain.Booking, start, end *time.Time) domain.SpendSummary {
	var sum domain.SpendSummary
	for _, b := range bookings {
		sum.TotalSpend += b.FinalPrice
		sum.TotalBookings++
		switch b.Category {
		case domain.CategoryFood:
			sum.FoodSpend += b.FinalPrice
			sum.FoodBookings++
		case domain.CategoryTravel:
			sum.BusSpend += b.FinalPrice
			sum.BusBookings++
		}
	}

	days := float64(defaultWindowDays)
	if start != nil && end != nil {
		days = math.Max(1, math.Ceil(end.Sub(*start).Hours()/24))
	}
	sum.DailyAverage = sum.TotalSpend / days
	return sum
}

// bookingAlternatives is the slice of compared offers stored alongside a
// booking.
type bookingAlternatives struct {
	AllOptions []struct {
		FinalPrice float64 `json:"finalPrice"`
		Price      float64 `json:"price"`
	} `json:"allOptions"`
}

// analyzeSavings compares each booking's final price against the average of
// the alternatives it was chosen from. Bookings without usable comparison
// data get a flat estimate.
func analyzeSavings(bookings []domain.Booking) domain.SavingsAnalysis {
	var out domain.SavingsAnalysis
	out.BookingCount = len(bookings)

	for _, b := range bookings {
		out.TotalWith += b.FinalPrice

		var alt bookingAlternatives
		if err := json.Unmarshal([]byte(b.BookingData), &alt); err == nil && len(alt.AllOptions) > 0 {
			var sum float64
			for _, opt := range alt.AllOptions {
				price := opt.FinalPrice
				if price == 0 {
					price = opt.Price
				}
				sum += price
			}
			avg := sum / float64(len(alt.AllOptions))
			if saved := avg - b.FinalPrice; saved > 0 {
				out.TotalSavings += saved
			}
			out.TotalWithout += avg
			continue
		}

		out.TotalWithout += b.FinalPrice * (1 + estimatedSavingsRate)
		out.TotalSavings += b.FinalPrice * estimatedSavingsRate
	}

	if out.TotalWithout > 0 {
		out.SavingsPercentage = out.TotalSavings / out.TotalWithout * 100
	}
	return out
}

func rankPlatforms(bookings []domain.Booking) []domain.PlatformSpend {
	stats := make(map[string]*domain.PlatformSpend)
	for _, b := range bookings {
		p, ok := stats[b.Platform]
		if !ok {
			p = &domain.PlatformSpend{Platform: b.Platform}
			stats[b.Platform] = p
		}
		p.Spend += b.FinalPrice
		p.Count++
	}

	out := make([]domain.PlatformSpend, 0, len(stats))
	for _, p := range stats {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spend > out[j].Spend })
	return out
}
