package domain

// MenuItem is a single dish on a restaurant's delivery menu.
type MenuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
}

// MinOrderDiscount is a percentage discount unlocked above a minimum subtotal.
type MinOrderDiscount struct {
	MinOrder float64 `json:"minOrder"`
	Discount float64 `json:"discount"`
}

// FoodOffer is one platform/restaurant candidate with its pricing and
// logistics attributes. Instances always come out of the normalizer with
// every field populated.
type FoodOffer struct {
	Platform          string           `json:"platform"`
	Restaurant        string           `json:"restaurant"`
	Address           string           `json:"address,omitempty"`
	DeliveryFee       float64          `json:"deliveryFee"`
	ETA               float64          `json:"eta"`
	Rating            float64          `json:"rating"`
	FreeDeliveryAbove float64          `json:"freeDeliveryAbove"`
	NewUserDiscount   float64          `json:"newUserDiscount"`
	MinOrderDiscount  MinOrderDiscount `json:"minOrderDiscount"`
	PlatformFee       float64          `json:"platformFee"`
	AvailableItems    []MenuItem       `json:"availableItems"`
}

// TravelOffer is one platform/operator bus candidate.
type TravelOffer struct {
	Platform  string  `json:"platform"`
	Operator  string  `json:"operator"`
	BusType   string  `json:"type"`
	Price     float64 `json:"price"`
	Duration  string  `json:"duration"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
	Rating    float64 `json:"rating"`
	Seats     int     `json:"seats"`
}

// CartLine references a menu item of the chosen restaurant by exact name.
type CartLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderedItem is a cart line resolved against an offer's menu.
type OrderedItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// ScoredFoodOffer augments a FoodOffer with the computed cart economics and
// the composite score. The embedded DeliveryFee holds the fee actually
// charged, after the free-delivery waiver.
type ScoredFoodOffer struct {
	FoodOffer
	ItemsOrdered           []OrderedItem `json:"itemsOrdered"`
	Subtotal               float64       `json:"subtotal"`
	IsFreeDelivery         bool          `json:"isFreeDelivery"`
	NewUserDiscountAmount  float64       `json:"newUserDiscountAmount"`
	MinOrderDiscountAmount float64       `json:"minOrderDiscountAmount"`
	TotalDiscount          float64       `json:"totalDiscount"`
	FinalPrice             float64       `json:"finalPrice"`
	AmountToFreeDelivery   float64       `json:"amountToFreeDelivery"`
	Score                  int           `json:"raayanScore"`
}

type ScoredTravelOffer struct {
	TravelOffer
	Score int `json:"raayanScore"`
}

// FoodRecommendation is the top-ranked offer with a generated justification.
// Savings is measured against the most expensive comparable offer, TimeSaved
// against the slowest.
type FoodRecommendation struct {
	Pick      ScoredFoodOffer `json:"pick"`
	Reasoning string          `json:"reasoning"`
	Savings   float64         `json:"savings"`
	TimeSaved float64         `json:"timeSaved"`
}

// FoodAnalysis is the full scorer output: every offer scored and ranked,
// plus the extracted recommendation.
type FoodAnalysis struct {
	Results        []ScoredFoodOffer  `json:"results"`
	Recommendation FoodRecommendation `json:"recommendation"`
}

// TravelRecommendation mirrors FoodRecommendation for the bus policy.
// TimeSaved is always zero there; the travel policy does not compute it.
type TravelRecommendation struct {
	Pick      ScoredTravelOffer `json:"pick"`
	Reasoning string            `json:"reasoning"`
	Savings   float64           `json:"savings"`
	TimeSaved float64           `json:"timeSaved"`
}

type TravelAnalysis struct {
	Results        []ScoredTravelOffer  `json:"results"`
	Recommendation TravelRecommendation `json:"recommendation"`
}
