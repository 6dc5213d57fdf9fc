package domain

// SpendSummary aggregates a user's completed bookings over a window.
type SpendSummary struct {
	TotalSpend    float64 `json:"total_spend"`
	FoodSpend     float64 `json:"food_spend"`
	BusSpend      float64 `json:"bus_spend"`
	TotalBookings int     `json:"total_bookings"`
	FoodBookings  int     `json:"food_bookings"`
	BusBookings   int     `json:"bus_bookings"`
	DailyAverage  float64 `json:"daily_average"`
}

// SavingsAnalysis compares what the user paid against the average price of
// the alternatives recorded with each booking.
type SavingsAnalysis struct {
	TotalSavings      float64 `json:"total_savings"`
	TotalWithout      float64 `json:"total_without"`
	TotalWith         float64 `json:"total_with"`
	SavingsPercentage float64 `json:"savings_percentage"`
	BookingCount      int     `json:"booking_count"`
}

// PlatformSpend is per-platform aggregate spend for the breakdown view.
type PlatformSpend struct {
	Platform string  `json:"platform"`
	Spend    float64 `json:"spend"`
	Count    int     `json:"count"`
}
