package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/raayanhq/raayan/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// Cache stores normalized search results in Redis so repeated comparisons
// for the same route or restaurant skip the search provider. Scoring inputs
// (cart, new-user flag) are not part of the key: offers are cached before
// scoring and re-scored per request.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func foodKey(location, restaurant string) string {
	return fmt.Sprintf("search:food:%s:%s", strings.ToLower(location), strings.ToLower(restaurant))
}

func busKey(source, destination, date string) string {
	return fmt.Sprintf("search:bus:%s:%s:%s", strings.ToLower(source), strings.ToLower(destination), date)
}

// GetFoodOffers returns the cached offers for a search, or nil on a miss.
func (c *Cache) GetFoodOffers(ctx context.Context, location, restaurant string) ([]domain.FoodOffer, error) {
	val, err := c.client.Get(ctx, foodKey(location, restaurant)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get food offers from cache: %w", err)
	}

	var offers []domain.FoodOffer
	if err := json.Unmarshal([]byte(val), &offers); err != nil {
		return nil, fmt.Errorf("unmarshal cached food offers: %w", err)
	}
	return offers, nil
}

func (c *Cache) SetFoodOffers(ctx context.Context, location, restaurant string, offers []domain.FoodOffer) error {
	val, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshal food offers: %w", err)
	}
	if err := c.client.Set(ctx, foodKey(location, restaurant), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set food offers in cache: %w", err)
	}
	return nil
}

func (c *Cache) GetTravelOffers(ctx context.Context, source, destination, date string) ([]domain.TravelOffer, error) {
	val, err := c.client.Get(ctx, busKey(source, destination, date)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get travel offers from cache: %w", err)
	}

	var offers []domain.TravelOffer
	if err := json.Unmarshal([]byte(val), &offers); err != nil {
		return nil, fmt.Errorf("unmarshal cached travel offers: %w", err)
	}
	return offers, nil
}

func (c *Cache) SetTravelOffers(ctx context.Context, source, destination, date string, offers []domain.TravelOffer) error {
	val, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshal travel offers: %w", err)
	}
	if err := c.client.Set(ctx, busKey(source, destination, date), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set travel offers in cache: %w", err)
	}
	return nil
}

// ClearSearches drops every cached search result.
func (c *Cache) ClearSearches(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "search:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
