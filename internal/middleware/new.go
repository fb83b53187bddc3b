package middleware

import (
	"family-task-parser/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. ratePerMin <= 0 turns rate limiting off.
func New(l log.Logger, ratePerMin int) Middleware {
	m := Middleware{l: l}
	if ratePerMin > 0 {
		m.limiter = newRateLimiter(ratePerMin)
	}
	return m
}
