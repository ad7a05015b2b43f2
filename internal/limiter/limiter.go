// Package limiter implements fixed-window request counting keyed by client
// identity. Each protected endpoint uses its own namespace so budgets are
// independent.
package limiter

import (
	"context"
	"time"
)

// Rule is the ceiling applied to one identity within one window.
type Rule struct {
	Limit  int
	Window time.Duration
}

// Identity buckets rate-limit state. Namespace is the endpoint ("chat",
// "contact", "login"), Key is usually the client IP.
type Identity struct {
	Namespace string
	Key       string
}

func (id Identity) String() string {
	return id.Namespace + ":" + id.Key
}

// Decision is the outcome of an Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Store decides whether a request for the given identity is admitted under the
// rule. Implementations must not mutate state on rejection.
type Store interface {
	Allow(ctx context.Context, id Identity, rule Rule) (Decision, error)
}
