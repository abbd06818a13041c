package middleware

import (
	"smart-task-scheduler/pkg/log"
)

// Config configures the middleware set.
type Config struct {
	// RequestsPerMin is the per-client request budget. Zero or less disables rate limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
