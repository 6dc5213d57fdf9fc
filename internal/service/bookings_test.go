package service

import (
	"testing"

	"github.com/raayanhq/raayan/internal/domain"
)

func TestRedirectURLFood(t *testing.T) {
	tests := []struct {
		platform   string
		restaurant string
		want       string
	}{
		{"Swiggy", "Paradise Biryani", "https://www.swiggy.com/restaurants/Paradise+Biryani"},
		{"Zomato", "Bawarchi", "https://www.zomato.com/search?q=Bawarchi"},
		{"Uber Eats", "Mehfil", "https://www.ubereats.com/search?q=Mehfil"},
		{"EatSure", "Paradise Biryani", "https://www.eatsure.com/search?q=Paradise+Biryani"},
		{"NoSuchApp", "Bawarchi", "https://www.google.com/search?q=Bawarchi"},
	}
	for _, tt := range tests {
		got := RedirectURL(tt.platform, domain.CategoryFood, tt.restaurant, "", "")
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestRedirectURLTravel(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"RedBus", "https://www.redbus.in/bus-tickets/Hyderabad-to-Bangalore"},
		{"AbhiBus", "https://www.abhibus.com/search?source=Hyderabad&destination=Bangalore"},
		{"MakeMyTrip", "https://www.makemytrip.com/bus-tickets/Hyderabad-Bangalore"},
		{"Paytm", "https://www.google.com"},
	}
	for _, tt := range tests {
		got := RedirectURL(tt.platform, domain.CategoryTravel, "", "Hyderabad", "Bangalore")
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestRedirectURLMissingDetails(t *testing.T) {
	if got := RedirectURL("Swiggy", domain.CategoryFood, "", "", ""); got != "https://www.swiggy.com" {
		t.Errorf("food without a restaurant should land on the home page, got %q", got)
	}
	if got := RedirectURL("RedBus", domain.CategoryTravel, "", "Hyderabad", ""); got != "https://www.redbus.in" {
		t.Errorf("travel without a destination should land on the home page, got %q", got)
	}
}
