package service

import (
	"github.com/raayanhq/raayan/internal/cache"
	"github.com/raayanhq/raayan/internal/repository"
	"github.com/raayanhq/raayan/internal/search"
)

const (
	searchHistoryLimit   = 50
	bookingHistoryLimit  = 100
	autocompleteLimit    = 8
	locationSuggestLimit = 5
)

type Service struct {
	repo     *repository.Repository
	cache    *cache.Cache
	searcher search.Searcher
}

func New(repo *repository.Repository, cache *cache.Cache, searcher search.Searcher) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		searcher: searcher,
	}
}
