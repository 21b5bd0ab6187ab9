package services

import (
	"sync"
	"time"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
	"github.com/api-sage/banking-transaction-api/src/internal/logger"
)

// RateLimiterService admits at most limit requests per caller identity
// within a trailing window. Caller identities are opaque strings; how
// they are derived (API key, remote host) is the transport layer's
// concern.
type RateLimiterService struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	callers map[string]*callerWindow
}

// callerWindow serializes concurrent requests from one caller identity.
type callerWindow struct {
	mu       sync.Mutex
	requests []time.Time
}

func NewRateLimiterService(limit int, window time.Duration) *RateLimiterService {
	return &RateLimiterService{
		limit:   limit,
		window:  window,
		callers: make(map[string]*callerWindow),
	}
}

// Allow records the request and returns nil when the caller is within
// the limit, or ErrRateLimitExceeded when the trailing window is full.
func (s *RateLimiterService) Allow(callerID string) error {
	caller := s.caller(callerID)

	caller.mu.Lock()
	defer caller.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-s.window)

	kept := caller.requests[:0]
	for _, at := range caller.requests {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	caller.requests = kept

	if len(caller.requests) >= s.limit {
		logger.Warn("rate limiter rejected request", logger.Fields{
			"callerId": callerID,
			"limit":    s.limit,
			"windowMs": s.window.Milliseconds(),
		})
		return domain.ErrRateLimitExceeded
	}

	caller.requests = append(caller.requests, now)
	return nil
}

func (s *RateLimiterService) caller(callerID string) *callerWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, ok := s.callers[callerID]
	if !ok {
		caller = &callerWindow{}
		s.callers[callerID] = caller
	}
	return caller
}
