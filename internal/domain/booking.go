package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingRedirected BookingStatus = "redirected"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingRedirected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking tracks a hand-off to an external platform. BookingData carries the
// scored offer plus the alternatives it was compared against, so the savings
// analysis can later reconstruct what the user would otherwise have paid.
type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"reference"`
	UserID      string        `json:"user_id"`
	Category    Category      `json:"category"`
	Platform    string        `json:"platform"`
	Restaurant  string        `json:"restaurant,omitempty"`
	Operator    string        `json:"operator,omitempty"`
	FinalPrice  float64       `json:"final_price"`
	BookingData string        `json:"booking_data"`
	RedirectURL string        `json:"redirect_url"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
