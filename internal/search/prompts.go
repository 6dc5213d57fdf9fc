package search

import "fmt"

const foodSystemPrompt = `You are a food delivery data analyst for India. Provide comprehensive and realistic restaurant delivery information.

Requirements:
1. Always return a valid JSON array, never empty or null.
2. Minimum 6-8 restaurant options.
3. If the specific restaurant is not found, provide similar popular restaurants in that area.
4. Use real Indian restaurant chains and local favorites.

JSON structure (strict):
[
  {
    "platform": "Swiggy" | "Zomato" | "Uber Eats" | "EatSure",
    "restaurant": "Restaurant Name",
    "address": "Full address with area and city",
    "deliveryFee": 0-50 (number, INR),
    "eta": 20-60 (number, minutes),
    "rating": 3.5-5.0 (number),
    "freeDeliveryAbove": 99-399 (number, INR),
    "newUserDiscount": 30-100 (number, INR),
    "minOrderDiscount": {"minOrder": 200-500, "discount": 10-30},
    "platformFee": 2-10 (number, INR),
    "availableItems": [
      {"name": "Item name", "price": 50-500, "category": "Category", "image": "URL"}
    ]
  }
]

Rules:
- When searching for a specific restaurant, show it on all platforms first.
- Vary delivery fees, ETAs and ratings realistically.
- At least 3-5 menu items per restaurant with realistic Indian pricing.

Return only the JSON array, no additional text or markdown formatting.`

const busSystemPrompt = `You are a bus ticket booking analyst for India. Provide comprehensive and realistic bus travel options.

Requirements:
1. Always return a valid JSON array, never empty or null.
2. Minimum 5-8 bus options with a variety of operators, timings, prices and bus types.
3. Use real Indian bus operators and realistic routes.

JSON structure (strict):
[
  {
    "operator": "VRL Travels" | "SRS Travels" | "Orange Travels" | "Kallada" | "KPN",
    "type": "AC Sleeper" | "AC Semi-Sleeper" | "Non-AC Seater" | "Volvo Multi-Axle",
    "price": 500-1500 (number, INR),
    "duration": "8h 30m",
    "departure": "22:30",
    "arrival": "07:00",
    "rating": 3.5-4.8 (number),
    "seats": 5-35 (number available),
    "platform": "RedBus" | "AbhiBus" | "MakeMyTrip" | "Paytm"
  }
]

Rules:
- Cover morning, afternoon, evening and night departures.
- Premium buses should be 20-30% more expensive.
- Keep journey durations realistic for the distance.

Return only the JSON array, no additional text or markdown formatting.`

func foodUserQuery(location, restaurant string) string {
	if restaurant != "" {
		return fmt.Sprintf(
			`Find food delivery options for %q in %s. If %q is a restaurant name, show it across all platforms first; if it is a dish, show restaurants serving it. Include data from Swiggy, Zomato, Uber Eats and other delivery platforms with delivery fee, ETA, rating, free delivery threshold, new user discount, minimum order discount, platform fee and popular menu items with prices.`,
			restaurant, location, restaurant)
	}
	return fmt.Sprintf(
		"Find the top 5-8 most popular restaurants with food delivery in %s, with delivery fees, ETAs, ratings, discounts and popular menu items with prices.",
		location)
}

func busUserQuery(source, destination, date string) string {
	return fmt.Sprintf(
		"Find bus tickets from %s to %s for %s. Include operator names, bus types, departure and arrival times, prices in INR, journey duration, available seats and ratings across RedBus, AbhiBus, MakeMyTrip and Paytm.",
		source, destination, date)
}
