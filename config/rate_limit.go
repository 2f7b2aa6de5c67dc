package config

import "time"

// Rate limit configuration for a token bucket
type RateLimitConfig struct {
	Rate     int           // Tokens added every Interval
	Burst    int           // Bucket capacity
	Interval time.Duration // Refill interval
}

// PublicRateLimitConfig guards the unauthenticated endpoints (QR redirect, join form).
// Venue wifi puts many guests behind one address, so the bucket is generous.
var PublicRateLimitConfig = RateLimitConfig{
	Rate:     300,
	Burst:    300,
	Interval: time.Minute,
}

// APIRateLimitConfig guards the management API
var APIRateLimitConfig = RateLimitConfig{
	Rate:     10000,
	Burst:    1500,
	Interval: time.Minute,
}

// RateLimitCleanupPeriod is how often limiters forget idle visitors
const RateLimitCleanupPeriod = 5 * time.Minute
