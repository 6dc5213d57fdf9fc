package service

import (
	"context"
	"fmt"

	"github.com/raayanhq/raayan/internal/domain"
)

// SaveSearch records a comparison in the user's history.
func (s *Service) SaveSearch(ctx context.Context, sr *domain.SavedSearch) (int64, error) {
	if !sr.Category.Valid() {
		return 0, fmt.Errorf("invalid category %q", sr.Category)
	}
	return s.repo.SaveSearch(ctx, sr)
}

func (s *Service) ListSearches(ctx context.Context, userID string) ([]domain.SavedSearch, error) {
	return s.repo.ListSearches(ctx, userID, searchHistoryLimit)
}

func (s *Service) DeleteSearch(ctx context.Context, userID string, id int64) error {
	return s.repo.DeleteSearch(ctx, userID, id)
}
