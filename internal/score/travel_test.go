package score

import (
	"strings"
	"testing"

	"github.com/raayanhq/raayan/internal/domain"
)

func TestTravelScoring(t *testing.T) {
	offers := []domain.TravelOffer{
		{Platform: "RedBus", Operator: "VRL Travels", BusType: "AC Sleeper",
			Price: 850, Duration: "8h 30m", Departure: "22:30", Arrival: "07:00", Rating: 4.2, Seats: 12},
		{Platform: "RedBus", Operator: "SRS Travels", BusType: "AC Semi-Sleeper",
			Price: 720, Duration: "9h 15m", Departure: "23:00", Arrival: "08:15", Rating: 4.0, Seats: 8},
	}

	out, err := Travel(offers)
	if err != nil {
		t.Fatalf("Travel failed: %v", err)
	}

	// By hand, maxPrice=850, maxDuration=555:
	// X (850, 510m, 4.2): 0.5*0 + 0.3*(1-510/555) + 0.2*0.84 = 0.192324 -> 19
	// Y (720, 555m, 4.0): 0.5*(1-720/850) + 0.3*0 + 0.2*0.80 = 0.236471 -> 24
	var x, y domain.ScoredTravelOffer
	for _, s := range out.Results {
		switch s.Operator {
		case "VRL Travels":
			x = s
		case "SRS Travels":
			y = s
		}
	}
	if x.Score != 19 {
		t.Errorf("expected score 19 for the 850 option, got %d", x.Score)
	}
	if y.Score != 24 {
		t.Errorf("expected score 24 for the 720 option, got %d", y.Score)
	}

	if out.Recommendation.Pick.Operator != "SRS Travels" {
		t.Fatalf("expected SRS Travels to win, got %s", out.Recommendation.Pick.Operator)
	}
	if out.Recommendation.Savings != 130 {
		t.Errorf("expected savings 130, got %f", out.Recommendation.Savings)
	}
	if out.Recommendation.TimeSaved != 0 {
		t.Errorf("travel policy must report zero time saved, got %f", out.Recommendation.TimeSaved)
	}
}

func TestTravelReasoningTiers(t *testing.T) {
	out, err := Travel([]domain.TravelOffer{
		{Platform: "RedBus", Operator: "Solo", BusType: "AC Sleeper",
			Price: 720, Duration: "9h 15m", Departure: "23:00", Rating: 4.0, Seats: 8},
	})
	if err != nil {
		t.Fatalf("Travel failed: %v", err)
	}
	if !strings.Contains(out.Recommendation.Reasoning, "budget-friendly") {
		t.Errorf("expected budget tier below 800, got %q", out.Recommendation.Reasoning)
	}

	out, err = Travel([]domain.TravelOffer{
		{Platform: "RedBus", Operator: "Solo", BusType: "Volvo Multi-Axle",
			Price: 1200, Duration: "8h 0m", Departure: "21:00", Rating: 4.5, Seats: 20},
	})
	if err != nil {
		t.Fatalf("Travel failed: %v", err)
	}
	if !strings.Contains(out.Recommendation.Reasoning, "premium") {
		t.Errorf("expected premium tier at 1200, got %q", out.Recommendation.Reasoning)
	}
}

func TestTravelRankingSorted(t *testing.T) {
	out, err := Travel([]domain.TravelOffer{
		{Operator: "A", Price: 900, Duration: "8h 30m", Rating: 4.0, Seats: 5},
		{Operator: "B", Price: 700, Duration: "9h 0m", Rating: 4.2, Seats: 9},
		{Operator: "C", Price: 800, Duration: "8h 0m", Rating: 4.4, Seats: 7},
	})
	if err != nil {
		t.Fatalf("Travel failed: %v", err)
	}
	for i := 1; i < len(out.Results); i++ {
		if out.Results[i-1].Score < out.Results[i].Score {
			t.Errorf("results not sorted descending at %d", i)
		}
	}
	if out.Recommendation.Pick.Operator != out.Results[0].Operator {
		t.Error("pick is not the top-ranked result")
	}
}

func TestTravelEmptyOffers(t *testing.T) {
	if _, err := Travel(nil); err != domain.ErrNoOffers {
		t.Errorf("expected ErrNoOffers, got %v", err)
	}
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"8h 30m", 510, true},
		{"9h 15m", 555, true},
		{"12h 5m", 725, true},
		{"10h0m", 600, true},
		{"overnight", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := DurationMinutes(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("DurationMinutes(%q) = %f, %v; want %f, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
