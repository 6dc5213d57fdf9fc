package service

import (
	"context"

	"github.com/raayanhq/raayan/internal/domain"
)

// SuggestRestaurants powers the search-box autocomplete.
func (s *Service) SuggestRestaurants(ctx context.Context, query, city string) ([]domain.Restaurant, error) {
	return s.repo.SearchRestaurants(ctx, query, city, autocompleteLimit)
}

func (s *Service) SuggestLocations(ctx context.Context, query string) ([]domain.Location, error) {
	if len(query) < 2 {
		return nil, nil
	}
	return s.repo.SearchLocations(ctx, query, locationSuggestLimit)
}
