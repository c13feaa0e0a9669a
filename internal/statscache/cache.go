package statscache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/domain"
	"github.com/redis/go-redis/v9"
)

const statsKey = "ecommerce:stats"

// Provider computes the statistics from the graph.
type Provider interface {
	Statistics(ctx context.Context) (domain.Statistics, error)
}

// Service fronts a Provider with a Redis key under the store's own TTL. A
// cache failure is never fatal: the request falls through to the graph and the
// failure is logged.
type Service struct {
	provider Provider
	client   *redis.Client
	ttl      time.Duration
}

func New(provider Provider, client *redis.Client, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Service{
		provider: provider,
		client:   client,
		ttl:      ttl,
	}
}

// Statistics returns the cached aggregate when present, computing and caching
// it otherwise.
func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	data, err := s.client.Get(ctx, statsKey).Result()
	if err == nil {
		var stats domain.Statistics
		if jsonErr := json.Unmarshal([]byte(data), &stats); jsonErr == nil {
			return stats, nil
		}
		// Corrupt payload: recompute and overwrite below.
		log.Printf("[statscache] discarding unreadable cached payload")
	} else if err != redis.Nil {
		log.Printf("[statscache] cache read failed, querying graph directly: %v", err)
		return s.provider.Statistics(ctx)
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the statistics and rewrites the cache key with the
// configured TTL.
func (s *Service) Refresh(ctx context.Context) (domain.Statistics, error) {
	stats, err := s.provider.Statistics(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("marshal statistics: %w", err)
	}

	if err := s.client.Set(ctx, statsKey, payload, s.ttl).Err(); err != nil {
		log.Printf("[statscache] cache write failed: %v", err)
	}

	return stats, nil
}
