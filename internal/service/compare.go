package service

import (
	"context"
	"fmt"
	"log"

	"github.com/raayanhq/raayan/internal/domain"
	"github.com/raayanhq/raayan/internal/normalize"
	"github.com/raayanhq/raayan/internal/observability"
	"github.com/raayanhq/raayan/internal/score"
)

type FoodCompareRequest struct {
	Location   string
	Restaurant string
	Cart       []domain.CartLine
	IsNewUser  bool
}

type FoodCompareResult struct {
	Analysis *domain.FoodAnalysis
	CacheHit bool
}

type TravelCompareRequest struct {
	Source      string
	Destination string
	Date        string
}

type TravelCompareResult struct {
	Analysis *domain.TravelAnalysis
	CacheHit bool
}

// CompareFood fetches candidates (cache first, then the search provider),
// normalizes them, and scores them against the request's cart. The cache
// holds normalized offers, so a changed cart or new-user flag re-scores
// without hitting the provider again.
func (s *Service) CompareFood(ctx context.Context, req FoodCompareRequest) (*FoodCompareResult, error) {
	observability.ComparisonsTotal.WithLabelValues(string(domain.CategoryFood)).Inc()

	offers, err := s.cache.GetFoodOffers(ctx, req.Location, req.Restaurant)
	if err != nil {
		log.Printf("[service] food cache get error: %v", err)
	}
	cacheHit := len(offers) > 0
	if cacheHit {
		observability.SearchCacheHits.WithLabelValues(string(domain.CategoryFood)).Inc()
	} else {
		observability.SearchCacheMisses.WithLabelValues(string(domain.CategoryFood)).Inc()

		offers, err = s.searchFoodOffers(ctx, req.Location, req.Restaurant)
		if err != nil {
			return nil, err
		}
		if len(offers) == 0 {
			return nil, domain.ErrNoOffers
		}
		if cacheErr := s.cache.SetFoodOffers(ctx, req.Location, req.Restaurant, offers); cacheErr != nil {
			log.Printf("[service] food cache set error: %v", cacheErr)
		}
	}

	analysis, err := score.Food(score.FoodInput{
		Offers:    offers,
		Cart:      req.Cart,
		IsNewUser: req.IsNewUser,
	})
	if err != nil {
		return nil, err
	}
	return &FoodCompareResult{Analysis: analysis, CacheHit: cacheHit}, nil
}

func (s *Service) searchFoodOffers(ctx context.Context, location, restaurant string) ([]domain.FoodOffer, error) {
	content, err := s.searcher.FindRestaurants(ctx, location, restaurant)
	if err != nil {
		observability.ProviderSearches.WithLabelValues(string(domain.CategoryFood), "error").Inc()
		return nil, fmt.Errorf("restaurant search: %w", err)
	}
	observability.ProviderSearches.WithLabelValues(string(domain.CategoryFood), "ok").Inc()

	raw, ok := normalize.ExtractJSON(content)
	if !ok {
		// Unparsable response means zero candidates, not an internal error.
		log.Printf("[service] no JSON found in restaurant search response")
		return nil, nil
	}
	return normalize.FoodOffers(raw, restaurant), nil
}

// CompareTravel mirrors CompareFood for intercity buses.
func (s *Service) CompareTravel(ctx context.Context, req TravelCompareRequest) (*TravelCompareResult, error) {
	observability.ComparisonsTotal.WithLabelValues(string(domain.CategoryTravel)).Inc()

	offers, err := s.cache.GetTravelOffers(ctx, req.Source, req.Destination, req.Date)
	if err != nil {
		log.Printf("[service] travel cache get error: %v", err)
	}
	cacheHit := len(offers) > 0
	if cacheHit {
		observability.SearchCacheHits.WithLabelValues(string(domain.CategoryTravel)).Inc()
	} else {
		observability.SearchCacheMisses.WithLabelValues(string(domain.CategoryTravel)).Inc()

		offers, err = s.searchTravelOffers(ctx, req.Source, req.Destination, req.Date)
		if err != nil {
			return nil, err
		}
		if len(offers) == 0 {
			return nil, domain.ErrNoOffers
		}
		if cacheErr := s.cache.SetTravelOffers(ctx, req.Source, req.Destination, req.Date, offers); cacheErr != nil {
			log.Printf("[service] travel cache set error: %v", cacheErr)
		}
	}

	analysis, err := score.Travel(offers)
	if err != nil {
		return nil, err
	}
	return &TravelCompareResult{Analysis: analysis, CacheHit: cacheHit}, nil
}

// ClearSearchCache drops every cached search so the next comparison hits
// the provider again.
func (s *Service) ClearSearchCache(ctx context.Context) error {
	return s.cache.ClearSearches(ctx)
}

func (s *Service) searchTravelOffers(ctx context.Context, source, destination, date string) ([]domain.TravelOffer, error) {
	content, err := s.searcher.FindBuses(ctx, source, destination, date)
	if err != nil {
		observability.ProviderSearches.WithLabelValues(string(domain.CategoryTravel), "error").Inc()
		return nil, fmt.Errorf("bus search: %w", err)
	}
	observability.ProviderSearches.WithLabelValues(string(domain.CategoryTravel), "ok").Inc()

	raw, ok := normalize.ExtractJSON(content)
	if !ok {
		log.Printf("[service] no JSON found in bus search response")
		return nil, nil
	}
	return normalize.TravelOffers(raw), nil
}
