package greenhouse

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-greenhouse submission limiters:
// greenhouse key -> rate limiter.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(greenhouseKey string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[greenhouseKey]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[greenhouseKey] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(greenhouseKey string, ghRate rate.Limit, ghBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[greenhouseKey] = rate.NewLimiter(ghRate, ghBurst)
}
