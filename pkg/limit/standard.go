package limit

import (
	"golang.org/x/time/rate"

	"usercenter/pkg/clock"
)

type RateLimiter interface {
	// TryAccept returns true if a token is taken immediately
	TryAccept() bool
}

type AllowRateLimiter struct{}

func (AllowRateLimiter) TryAccept() bool {
	return true
}

type DenyRateLimiter struct{}

func (DenyRateLimiter) TryAccept() bool {
	return false
}

type stdRateLimiter struct {
	limiter *rate.Limiter
	clock   clock.PassiveClock
}

// NewStdRateLimiter token bucket refilled at qps, qps <= 0 allows everything
func NewStdRateLimiter(qps float64, burst int, clock clock.PassiveClock) RateLimiter {
	if qps <= 0 {
		return AllowRateLimiter{}
	}
	if burst < 1 {
		burst = 1
	}
	return &stdRateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), burst),
		clock:   clock,
	}
}

func (s *stdRateLimiter) TryAccept() bool {
	return s.limiter.AllowN(s.clock.Now(), 1)
}
