package seeds

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setup loads the autocomplete catalog: cities and a starter set of
// restaurants across the supported platforms.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	// Truncate existing data before insert
	log.Println("[seed] truncating existing catalog")
	if _, err := pool.Exec(ctx, `
		TRUNCATE restaurants, locations RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting locations")
	if err := seedLocations(ctx, pool); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	log.Println("[seed] inserting restaurants")
	if err := seedRestaurants(ctx, pool); err != nil {
		return fmt.Errorf("seed restaurants: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

type location struct {
	name, city, state string
}

func seedLocations(ctx context.Context, pool *pgxpool.Pool) error {
	locations := []location{
		{"Hyderabad", "Hyderabad", "Telangana"},
		{"Secunderabad", "Secunderabad", "Telangana"},
		{"Visakhapatnam", "Visakhapatnam", "Andhra Pradesh"},
		{"Bangalore", "Bangalore", "Karnataka"},
		{"Mumbai", "Mumbai", "Maharashtra"},
		{"Delhi", "Delhi", "NCR"},
		{"Chennai", "Chennai", "Tamil Nadu"},
		{"Pune", "Pune", "Maharashtra"},
		{"Kolkata", "Kolkata", "West Bengal"},
	}

	rows := []string{}
	args := []any{}
	for i, l := range locations {
		base := i * 4
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, l.name, l.city, l.state, l.name+", "+l.state)
	}

	query := "INSERT INTO locations (name, city, state, full_name) VALUES " + strings.Join(rows, ", ")
	_, err := pool.Exec(ctx, query, args...)
	return err
}

type restaurant struct {
	name, cuisine string
	rating        float64
	area, city    string
	platforms     []string
}

func seedRestaurants(ctx context.Context, pool *pgxpool.Pool) error {
	restaurants := []restaurant{
		{"Paradise Biryani", "Biryani, Indian", 4.5, "Secunderabad", "Hyderabad", []string{"Swiggy", "Zomato", "EatSure", "Uber Eats"}},
		{"Bawarchi", "Biryani, Hyderabadi", 4.3, "RTC X Roads", "Hyderabad", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"Shah Ghouse", "Biryani, Mughlai", 4.4, "Tolichowki", "Hyderabad", []string{"Swiggy", "Zomato"}},
		{"Cafe Bahar", "Biryani, Indian", 4.2, "Basheer Bagh", "Hyderabad", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"Mehfil", "North Indian, Biryani", 4.1, "Banjara Hills", "Hyderabad", []string{"Swiggy", "Zomato"}},
		{"Pista House", "Biryani, Haleem", 4.3, "Charminar", "Hyderabad", []string{"Swiggy", "Zomato", "EatSure"}},
		{"Chutneys", "South Indian, Breakfast", 4.4, "Somajiguda", "Hyderabad", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"Ulavacharu", "Andhra, South Indian", 4.3, "Madhapur", "Hyderabad", []string{"Swiggy", "Zomato"}},
		{"Barbeque Nation", "BBQ, North Indian", 4.4, "Banjara Hills", "Hyderabad", []string{"Swiggy", "Zomato"}},
		{"Domino's Pizza", "Pizza, Fast Food", 4.0, "Multiple Locations", "Hyderabad", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"McDonald's", "Burgers, Fast Food", 4.1, "Multiple Locations", "Hyderabad", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"KFC", "Chicken, Fast Food", 4.0, "Multiple Locations", "Hyderabad", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"Subway", "Sandwiches, Healthy", 3.9, "Multiple Locations", "Hyderabad", []string{"Swiggy", "Zomato"}},
		{"Pizza Hut", "Pizza, Italian", 4.1, "Multiple Locations", "Bangalore", []string{"Swiggy", "Zomato", "Uber Eats"}},
		{"Mainland China", "Chinese, Asian", 4.3, "Banjara Hills", "Hyderabad", []string{"Swiggy", "Zomato", "EatSure"}},
		{"Taco Bell", "Mexican, Fast Food", 3.9, "Multiple Locations", "Bangalore", []string{"Swiggy", "Zomato"}},
	}

	rows := []string{}
	args := []any{}
	for i, r := range restaurants {
		base := i * 6
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, r.name, r.cuisine, r.rating, r.area, r.city, r.platforms)
	}

	query := "INSERT INTO restaurants (name, cuisine, rating, area, city, platforms) VALUES " + strings.Join(rows, ", ")
	_, err := pool.Exec(ctx, query, args...)
	return err
}
