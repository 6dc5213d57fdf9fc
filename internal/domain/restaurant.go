package domain

// Restaurant is a catalog entry used for autocomplete suggestions.
type Restaurant struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Cuisine   string   `json:"cuisine"`
	Rating    float64  `json:"rating"`
	Area      string   `json:"area"`
	City      string   `json:"city"`
	Image     string   `json:"image,omitempty"`
	Platforms []string `json:"platforms"`
}

type Location struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	FullName string `json:"full_name"`
}
