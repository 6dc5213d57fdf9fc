package repository

import (
	"context"
	"fmt"

	"github.com/raayanhq/raayan/internal/domain"
)

// SearchRestaurants matches the catalog by name or cuisine for autocomplete.
// An empty query lists the city's restaurants by rating.
func (r *Repository) SearchRestaurants(ctx context.Context, query, city string, limit int) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, cuisine, rating, area, city, image, platforms
		 FROM restaurants
		 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR cuisine ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR lower(city) = lower($2))
		 ORDER BY rating DESC
		 LIMIT $3`,
		query, city, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query restaurants %q: %w", query, err)
	}
	defer rows.Close()

	var items []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		err := rows.Scan(&rest.ID, &rest.Name, &rest.Cuisine, &rest.Rating,
			&rest.Area, &rest.City, &rest.Image, &rest.Platforms)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		items = append(items, rest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over restaurants: %w", err)
	}
	return items, nil
}

// SearchLocations returns matching serviceable cities.
func (r *Repository) SearchLocations(ctx context.Context, query string, limit int) ([]domain.Location, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, city, state, full_name
		 FROM locations
		 WHERE full_name ILIKE '%' || $1 || '%' OR city ILIKE '%' || $1 || '%'
		 ORDER BY full_name
		 LIMIT $2`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query locations %q: %w", query, err)
	}
	defer rows.Close()

	var items []domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.Name, &loc.City, &loc.State, &loc.FullName); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		items = append(items, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over locations: %w", err)
	}
	return items, nil
}

// CountRestaurants is used at startup to decide whether to seed the catalog.
func (r *Repository) CountRestaurants(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count restaurants: %w", err)
	}
	return total, nil
}
