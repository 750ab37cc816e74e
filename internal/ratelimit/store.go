package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check
type Result struct {
	Allowed   bool          // Whether the request is allowed
	Limit     int           // The limit for this window
	Remaining int           // Remaining requests in the window
	ResetIn   time.Duration // Time until the window resets
}

// Store counts requests per client key over a fixed window. Implementations
// are injected into the router so each route group (and each test) owns its
// own counters.
type Store interface {
	Allow(ctx context.Context, key string) (*Result, error)
}
