// Package normalize repairs loosely-typed candidate JSON into fully
// populated offers. Search providers return best-effort data: fields go
// missing, numbers arrive as strings, menus come back as scalars. Every
// defect is repaired with a fixed default, never rejected, so the scorer
// downstream only ever sees complete offers.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/raayanhq/raayan/internal/domain"
)

// Defaults substituted for absent or wrong-typed fields. These are part of
// the normalizer's contract.
const (
	DefaultDeliveryFee       = 40
	DefaultETA               = 35
	DefaultRating            = 4.0
	DefaultFreeDeliveryAbove = 199
	DefaultNewUserDiscount   = 50
	DefaultPlatformFee       = 5
	DefaultMinOrder          = 300
	DefaultMinOrderDiscount  = 15
	DefaultItemPrice         = 200

	DefaultBusPrice    = 800
	DefaultBusRating   = 4.0
	DefaultBusSeats    = 10
	DefaultBusDuration = "8h 30m"
)

var fenceRE = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON document out of a model response: markdown code
// fences are stripped first, then the outermost array (or object) is sliced
// out of any surrounding prose. Returns false when no valid JSON can be
// found, which callers must treat as zero candidates.
func ExtractJSON(content string) ([]byte, bool) {
	s := strings.TrimSpace(content)
	if m := fenceRE.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	for _, pair := range [...][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start == -1 || end <= start {
			continue
		}
		raw := []byte(s[start : end+1])
		if json.Valid(raw) {
			return raw, true
		}
	}
	return nil, false
}

// FoodOffers decodes a candidate array and repairs each entry field by
// field. fallbackName is the restaurant the user searched for; it names
// candidates that arrive without one. Output order matches input order and
// no candidate is dropped. An undecodable payload yields nil.
func FoodOffers(raw []byte, fallbackName string) []domain.FoodOffer {
	entries := decodeArray(raw, "restaurants", "results")
	if entries == nil {
		return nil
	}

	offers := make([]domain.FoodOffer, 0, len(entries))
	for _, m := range entries {
		restaurant := str(m, "restaurant", "")
		if restaurant == "" {
			restaurant = str(m, "name", "")
		}
		if restaurant == "" {
			restaurant = fallbackName
		}
		if restaurant == "" {
			restaurant = "Restaurant"
		}

		offers = append(offers, domain.FoodOffer{
			Platform:          str(m, "platform", "Swiggy"),
			Restaurant:        restaurant,
			Address:           str(m, "address", ""),
			DeliveryFee:       num(m, "deliveryFee", DefaultDeliveryFee),
			ETA:               num(m, "eta", DefaultETA),
			Rating:            num(m, "rating", DefaultRating),
			FreeDeliveryAbove: num(m, "freeDeliveryAbove", DefaultFreeDeliveryAbove),
			NewUserDiscount:   num(m, "newUserDiscount", DefaultNewUserDiscount),
			MinOrderDiscount:  minOrderDiscount(m),
			PlatformFee:       num(m, "platformFee", DefaultPlatformFee),
			AvailableItems:    menuItems(m),
		})
	}
	return offers
}

// TravelOffers is the bus-ticket counterpart of FoodOffers.
func TravelOffers(raw []byte) []domain.TravelOffer {
	entries := decodeArray(raw, "tickets", "results")
	if entries == nil {
		return nil
	}

	offers := make([]domain.TravelOffer, 0, len(entries))
	for _, m := range entries {
		offers = append(offers, domain.TravelOffer{
			Platform:  str(m, "platform", "RedBus"),
			Operator:  str(m, "operator", "Unknown Operator"),
			BusType:   str(m, "type", "AC Sleeper"),
			Price:     num(m, "price", DefaultBusPrice),
			Duration:  str(m, "duration", DefaultBusDuration),
			Departure: str(m, "departure", "22:00"),
			Arrival:   str(m, "arrival", "06:30"),
			Rating:    num(m, "rating", DefaultBusRating),
			Seats:     int(num(m, "seats", DefaultBusSeats)),
		})
	}
	return offers
}

func minOrderDiscount(m map[string]any) domain.MinOrderDiscount {
	mo, ok := m["minOrderDiscount"].(map[string]any)
	if !ok {
		return domain.MinOrderDiscount{MinOrder: DefaultMinOrder, Discount: DefaultMinOrderDiscount}
	}
	return domain.MinOrderDiscount{
		MinOrder: num(mo, "minOrder", DefaultMinOrder),
		Discount: num(mo, "discount", DefaultMinOrderDiscount),
	}
}

func menuItems(m map[string]any) []domain.MenuItem {
	arr, ok := m["availableItems"].([]any)
	if !ok {
		return []domain.MenuItem{}
	}
	items := make([]domain.MenuItem, 0, len(arr))
	for _, e := range arr {
		im, ok := e.(map[string]any)
		if !ok {
			im = map[string]any{}
		}
		items = append(items, domain.MenuItem{
			Name:     str(im, "name", "Item"),
			Price:    num(im, "price", DefaultItemPrice),
			Category: str(im, "category", "Main Course"),
			Image:    str(im, "image", ""),
		})
	}
	return items
}

// decodeArray accepts either a bare JSON array or an object wrapping one
// under a known key. Non-object elements become empty objects so they get
// fully defaulted rather than dropped.
func decodeArray(raw []byte, altKeys ...string) []map[string]any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	var arr []any
	switch t := v.(type) {
	case []any:
		arr = t
	case map[string]any:
		for _, key := range altKeys {
			if a, ok := t[key].([]any); ok {
				arr = a
				break
			}
		}
	}
	if arr == nil {
		return nil
	}

	entries := make([]map[string]any, 0, len(arr))
	for _, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		entries = append(entries, m)
	}
	return entries
}

// num accepts only actual JSON numbers; everything else gets the fallback.
func num(m map[string]any, key string, fallback float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return fallback
}

func str(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
