package resilience

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// RetryPolicy bounds how often and how patiently a failed call is repeated.
type RetryPolicy struct {
	Attempts   int
	FirstDelay time.Duration
	MaxDelay   time.Duration
	Growth     float64
}

// BreakerPolicy decides when an operation's breaker opens. The zero value of
// Disabled keeps the breaker on.
type BreakerPolicy struct {
	Disabled      bool
	MinSamples    uint32
	TripRatio     float64
	Cooldown      time.Duration
	HalfOpenCalls uint32
}

type Config struct {
	Retry   RetryPolicy
	Breaker BreakerPolicy
}

// DefaultConfig suits event publishing: a few fast retries, then the breaker
// sheds load for a short window so document adds are not slowed down.
func DefaultConfig() Config {
	return Config{
		Retry: RetryPolicy{
			Attempts:   3,
			FirstDelay: 50 * time.Millisecond,
			MaxDelay:   250 * time.Millisecond,
			Growth:     2,
		},
		Breaker: BreakerPolicy{
			MinSamples:    5,
			TripRatio:     0.6,
			Cooldown:      15 * time.Second,
			HalfOpenCalls: 1,
		},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	return Config{
		Retry:   c.Retry.orDefault(def.Retry),
		Breaker: c.Breaker.orDefault(def.Breaker),
	}
}

func (p RetryPolicy) orDefault(def RetryPolicy) RetryPolicy {
	p.Attempts = positiveOr(p.Attempts, def.Attempts)
	p.FirstDelay = positiveOr(p.FirstDelay, def.FirstDelay)
	p.MaxDelay = max(positiveOr(p.MaxDelay, def.MaxDelay), p.FirstDelay)
	if p.Growth < 1 {
		p.Growth = def.Growth
	}
	return p
}

// delay returns the wait before the attempt following the given one (1-based).
func (p RetryPolicy) delay(attempt int) time.Duration {
	wait := p.FirstDelay
	for i := 1; i < attempt && wait < p.MaxDelay; i++ {
		wait = time.Duration(float64(wait) * p.Growth)
	}
	return min(wait, p.MaxDelay)
}

func (p BreakerPolicy) orDefault(def BreakerPolicy) BreakerPolicy {
	p.MinSamples = positiveOr(p.MinSamples, def.MinSamples)
	if p.TripRatio <= 0 || p.TripRatio > 1 {
		p.TripRatio = def.TripRatio
	}
	p.Cooldown = positiveOr(p.Cooldown, def.Cooldown)
	p.HalfOpenCalls = positiveOr(p.HalfOpenCalls, def.HalfOpenCalls)
	return p
}

func (p BreakerPolicy) trips(counts gobreaker.Counts) bool {
	if counts.Requests < p.MinSamples {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= p.TripRatio
}

func positiveOr[T int | uint32 | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}
