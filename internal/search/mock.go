package search

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/raayanhq/raayan/internal/domain"
)

// Mock serves a fixed catalog so the service runs without a provider key.
// Responses go through the same JSON path as live ones.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) FindRestaurants(_ context.Context, _, restaurant string) (string, error) {
	needle := strings.ToLower(restaurant)
	matches := make([]domain.FoodOffer, 0, len(mockFoodOffers))
	for _, off := range mockFoodOffers {
		if needle == "" || strings.Contains(strings.ToLower(off.Restaurant), needle) {
			matches = append(matches, off)
		}
	}
	raw, err := json.Marshal(matches)
	return string(raw), err
}

func (m *Mock) FindBuses(_ context.Context, _, _, _ string) (string, error) {
	raw, err := json.Marshal(mockTravelOffers)
	return string(raw), err
}

var mockFoodOffers = []domain.FoodOffer{
	{
		Platform: "Swiggy", Restaurant: "Paradise Biryani",
		DeliveryFee: 40, ETA: 35, Rating: 4.5, FreeDeliveryAbove: 199,
		NewUserDiscount: 50, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 300, Discount: 15}, PlatformFee: 5,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 320, Category: "Biryani"},
			{Name: "Mutton Biryani", Price: 380, Category: "Biryani"},
			{Name: "Veg Biryani", Price: 250, Category: "Biryani"},
			{Name: "Raita", Price: 60, Category: "Sides"},
		},
	},
	{
		Platform: "Swiggy", Restaurant: "Bawarchi",
		DeliveryFee: 30, ETA: 40, Rating: 4.3, FreeDeliveryAbove: 249,
		NewUserDiscount: 60, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 350, Discount: 20}, PlatformFee: 5,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 280, Category: "Biryani"},
			{Name: "Mutton Biryani", Price: 350, Category: "Biryani"},
			{Name: "Chicken 65", Price: 180, Category: "Starters"},
		},
	},
	{
		Platform: "Zomato", Restaurant: "Paradise Biryani",
		DeliveryFee: 35, ETA: 30, Rating: 4.5, FreeDeliveryAbove: 299,
		NewUserDiscount: 75, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 400, Discount: 25}, PlatformFee: 3,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 330, Category: "Biryani"},
			{Name: "Mutton Biryani", Price: 390, Category: "Biryani"},
			{Name: "Veg Biryani", Price: 260, Category: "Biryani"},
			{Name: "Gulab Jamun", Price: 80, Category: "Desserts"},
		},
	},
	{
		Platform: "Zomato", Restaurant: "Bawarchi",
		DeliveryFee: 25, ETA: 38, Rating: 4.3, FreeDeliveryAbove: 199,
		NewUserDiscount: 50, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 300, Discount: 15}, PlatformFee: 3,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 290, Category: "Biryani"},
			{Name: "Paneer Tikka", Price: 220, Category: "Starters"},
		},
	},
	{
		Platform: "EatSure", Restaurant: "Paradise Biryani",
		DeliveryFee: 20, ETA: 45, Rating: 4.4, FreeDeliveryAbove: 149,
		NewUserDiscount: 100, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 250, Discount: 10}, PlatformFee: 2,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 310, Category: "Biryani"},
			{Name: "Mutton Biryani", Price: 370, Category: "Biryani"},
			{Name: "Egg Biryani", Price: 200, Category: "Biryani"},
		},
	},
	{
		Platform: "Uber Eats", Restaurant: "Paradise Biryani",
		DeliveryFee: 50, ETA: 32, Rating: 4.5, FreeDeliveryAbove: 399,
		NewUserDiscount: 40, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 500, Discount: 30}, PlatformFee: 8,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 340, Category: "Biryani"},
			{Name: "Mutton Biryani", Price: 400, Category: "Biryani"},
			{Name: "Chicken Kebab", Price: 240, Category: "Starters"},
		},
	},
	{
		Platform: "Uber Eats", Restaurant: "Bawarchi",
		DeliveryFee: 45, ETA: 42, Rating: 4.2, FreeDeliveryAbove: 349,
		NewUserDiscount: 50, MinOrderDiscount: domain.MinOrderDiscount{MinOrder: 400, Discount: 20}, PlatformFee: 8,
		AvailableItems: []domain.MenuItem{
			{Name: "Chicken Biryani", Price: 295, Category: "Biryani"},
			{Name: "Fish Fry", Price: 260, Category: "Starters"},
		},
	},
}

var mockTravelOffers = []domain.TravelOffer{
	{Platform: "RedBus", Operator: "VRL Travels", BusType: "AC Sleeper", Price: 850, Duration: "8h 30m", Departure: "22:30", Arrival: "07:00", Rating: 4.2, Seats: 12},
	{Platform: "RedBus", Operator: "SRS Travels", BusType: "AC Semi-Sleeper", Price: 720, Duration: "9h 15m", Departure: "23:00", Arrival: "08:15", Rating: 4.0, Seats: 8},
	{Platform: "AbhiBus", Operator: "VRL Travels", BusType: "AC Sleeper", Price: 830, Duration: "8h 30m", Departure: "22:30", Arrival: "07:00", Rating: 4.2, Seats: 15},
	{Platform: "AbhiBus", Operator: "Orange Travels", BusType: "AC Sleeper", Price: 780, Duration: "8h 45m", Departure: "22:00", Arrival: "06:45", Rating: 4.3, Seats: 10},
	{Platform: "MakeMyTrip", Operator: "VRL Travels", BusType: "AC Sleeper", Price: 870, Duration: "8h 30m", Departure: "22:30", Arrival: "07:00", Rating: 4.2, Seats: 9},
	{Platform: "MakeMyTrip", Operator: "Kallada Travels", BusType: "AC Sleeper", Price: 920, Duration: "8h 15m", Departure: "23:30", Arrival: "07:45", Rating: 4.4, Seats: 6},
}
