package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/raayanhq/raayan/internal/domain"
)

// Platform home pages for redirect generation. Unknown platforms fall back
// to a plain web search.
var platformURLs = map[string]string{
	"Swiggy":     "https://www.swiggy.com",
	"Zomato":     "https://www.zomato.com",
	"Uber Eats":  "https://www.ubereats.com",
	"EatSure":    "https://www.eatsure.com",
	"RedBus":     "https://www.redbus.in",
	"AbhiBus":    "https://www.abhibus.com",
	"MakeMyTrip": "https://www.makemytrip.com",
}

const fallbackURL = "https://www.google.com"

type CreateBookingRequest struct {
	UserID      string
	Category    domain.Category
	Platform    string
	Restaurant  string
	Operator    string
	Location    string
	Source      string
	Destination string
	FinalPrice  float64
	BookingData string
}

// CreateBooking records a pending booking with a fresh reference and the
// platform redirect URL the UI should send the user to.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("invalid category %q", req.Category)
	}

	b := &domain.Booking{
		Reference:   uuid.NewString(),
		UserID:      req.UserID,
		Category:    req.Category,
		Platform:    req.Platform,
		Restaurant:  req.Restaurant,
		Operator:    req.Operator,
		FinalPrice:  req.FinalPrice,
		BookingData: req.BookingData,
		RedirectURL: RedirectURL(req.Platform, req.Category, req.Restaurant, req.Source, req.Destination),
		Status:      domain.BookingPending,
	}

	id, err := s.repo.InsertBooking(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	return b, nil
}

func (s *Service) UpdateBookingStatus(ctx context.Context, userID string, id int64, status domain.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid booking status %q", status)
	}
	return s.repo.UpdateBookingStatus(ctx, userID, id, status)
}

func (s *Service) ConfirmBooking(ctx context.Context, userID string, id int64) error {
	return s.repo.UpdateBookingStatus(ctx, userID, id, domain.BookingCompleted)
}

func (s *Service) CancelBooking(ctx context.Context, userID string, id int64) error {
	return s.repo.UpdateBookingStatus(ctx, userID, id, domain.BookingCancelled)
}

func (s *Service) GetBooking(ctx context.Context, userID string, id int64) (*domain.Booking, error) {
	return s.repo.GetBooking(ctx, userID, id)
}

func (s *Service) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.repo.ListBookings(ctx, userID, bookingHistoryLimit)
}

// RedirectURL builds the hand-off URL for a platform. Each platform has its
// own search URL shape; anything unknown gets the platform home page or a
// generic search.
func RedirectURL(platform string, category domain.Category, restaurant, source, destination string) string {
	base, known := platformURLs[platform]
	if !known {
		base = fallbackURL
	}

	switch {
	case category == domain.CategoryFood && restaurant != "":
		q := url.QueryEscape(restaurant)
		switch platform {
		case "Swiggy":
			return base + "/restaurants/" + q
		default:
			return base + "/search?q=" + q
		}
	case category == domain.CategoryTravel && source != "" && destination != "":
		src := url.QueryEscape(source)
		dst := url.QueryEscape(destination)
		switch platform {
		case "RedBus":
			return base + "/bus-tickets/" + src + "-to-" + dst
		case "AbhiBus":
			return base + "/search?source=" + src + "&destination=" + dst
		case "MakeMyTrip":
			return base + "/bus-tickets/" + src + "-" + dst
		default:
			return base
		}
	}
	return base
}
