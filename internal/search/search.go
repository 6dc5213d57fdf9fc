// Package search supplies raw comparison candidates. The live implementation
// proxies an LLM search API; the mock serves a static catalog for local runs.
// Either way the output is untrusted, best-effort text that the normalizer
// repairs downstream.
package search

import "context"

// Searcher returns the provider's raw response content. Callers extract and
// normalize the JSON; a response with no usable JSON means zero candidates.
type Searcher interface {
	FindRestaurants(ctx context.Context, location, restaurant string) (string, error)
	FindBuses(ctx context.Context, source, destination, date string) (string, error)
}
