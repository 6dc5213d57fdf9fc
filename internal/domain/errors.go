package domain

import "errors"

var (
	// ErrNoOffers is returned when a comparison yields zero candidates.
	// Scoring an empty candidate set is a precondition violation, so the
	// scorer fails fast instead of producing nonsensical scores.
	ErrNoOffers = errors.New("no offers found")

	ErrSearchNotFound  = errors.New("search not found")
	ErrBookingNotFound = errors.New("booking not found")
)
