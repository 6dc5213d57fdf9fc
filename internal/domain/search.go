package domain

import "time"

type Category string

const (
	CategoryFood   Category = "food"
	CategoryTravel Category = "travel"
)

func (c Category) Valid() bool {
	return c == CategoryFood || c == CategoryTravel
}

// SavedSearch is one entry in a user's comparison history. Results and
// Recommendation are stored as the JSON the comparison produced.
type SavedSearch struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Category       Category  `json:"category"`
	Query          string    `json:"query"`
	Results        string    `json:"results"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}
