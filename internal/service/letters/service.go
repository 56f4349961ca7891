package letters

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/letter-tracker/internal/domain"
)

const (
	namesCacheKey = "letters:names"
	namesCacheTTL = 5 * time.Minute
)

// Stats summarizes the letter catalog for the admin cards.
type Stats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Categories    int `json:"categories"`
	BusinessUnits int `json:"business_units"`
}

// Service implements letter catalog logic. The Redis client is optional;
// when nil, Names always hits the repository.
type Service struct {
	repo  Repository
	cache *redis.Client
}

// NewService creates a letters service backed by the given repository.
func NewService(repo Repository, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns the full catalog, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Letter, error) {
	return s.repo.List(ctx)
}

// Get returns a single letter template.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Letter, error) {
	return s.repo.Get(ctx, id)
}

// Names returns the distinct letter names for the filter dropdown,
// served from cache when possible. Cache failures are logged and ignored.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, namesCacheKey).Bytes()
		if err == nil {
			var names []string
			if jsonErr := json.Unmarshal(raw, &names); jsonErr == nil {
				return names, nil
			}
		} else if err != redis.Nil {
			log.Printf("[letters.Service] cache read: %v", err)
		}
	}

	names, err := s.repo.Names(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		raw, _ := json.Marshal(names)
		if err := s.cache.Set(ctx, namesCacheKey, raw, namesCacheTTL).Err(); err != nil {
			log.Printf("[letters.Service] cache write: %v", err)
		}
	}
	return names, nil
}

// InvalidateNames drops the cached name list. Call after catalog changes.
func (s *Service) InvalidateNames(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, namesCacheKey).Err(); err != nil {
		log.Printf("[letters.Service] cache invalidate: %v", err)
	}
}

// Stats aggregates catalog counts: total, active, and the number of
// distinct categories and business units.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{Total: len(all)}
	categories := map[string]struct{}{}
	units := map[string]struct{}{}
	for _, l := range all {
		if l.IsActive {
			st.Active++
		}
		if l.Category != nil && *l.Category != "" {
			categories[*l.Category] = struct{}{}
		}
		if l.BusinessUnit != nil && *l.BusinessUnit != "" {
			units[*l.BusinessUnit] = struct{}{}
		}
	}
	st.Categories = len(categories)
	st.BusinessUnits = len(units)
	return st, nil
}
