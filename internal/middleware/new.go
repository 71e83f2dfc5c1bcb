package middleware

import (
	"personal-secretary/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	// AllowedOrigins is the CORS allowlist. "*" allows any origin.
	AllowedOrigins []string

	// RateLimitPerMin caps requests per client IP. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	config  Config
	limiter *clientLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	var limiter *clientLimiter
	if cfg.RateLimitPerMin > 0 {
		limiter = newClientLimiter(cfg.RateLimitPerMin)
	}
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: limiter,
	}
}
