package middleware

import (
	"campus-day-planner/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers: bearer auth and
// per-user rate limiting.
type Middleware struct {
	l       log.Logger
	tokens  map[string]string
	limiter *rateLimiter
}

// New builds the middleware set. tokens maps bearer tokens to user ids;
// requestsPerMin bounds each user's request rate.
func New(l log.Logger, tokens map[string]string, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		tokens:  tokens,
		limiter: newRateLimiter(requestsPerMin),
	}
}
