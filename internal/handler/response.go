package handler

import "github.com/raayanhq/raayan/internal/domain"

type CompareMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type FoodCompareResponse struct {
	Results        []domain.ScoredFoodOffer  `json:"results"`
	Recommendation domain.FoodRecommendation `json:"recommendation"`
	Metadata       CompareMeta               `json:"metadata"`
}

type TravelCompareResponse struct {
	Results        []domain.ScoredTravelOffer  `json:"results"`
	Recommendation domain.TravelRecommendation `json:"recommendation"`
	Metadata       CompareMeta                 `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
