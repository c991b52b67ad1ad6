package ebrake

import (
	"context"
	"net/http"
	"time"
)

// Checker performs a single reachability check.
type Checker interface {
	Check(ctx context.Context) bool
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context) bool

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context) bool {
	return f(ctx)
}

// HTTPChecker probes a URL with a single GET request. Any response with
// a status below 400 counts as success; transport errors, timeouts, and
// error statuses all count as failure. The distinction between a DNS
// failure, a refused connection, and a 500 is deliberately erased at
// this boundary: the brake only sees a binary outcome.
type HTTPChecker struct {
	URL string

	// Client issues the request. Defaults to http.DefaultClient; set a
	// client with a Timeout to bound each probe.
	Client *http.Client
}

// Check performs one GET against the configured URL.
func (h HTTPChecker) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return false
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 400
}

// Watch feeds the brake from a periodic reachability check: on every
// tick of interval it runs one check, records the outcome, and evaluates
// the trigger. Transient failures are absorbed by the brake's own
// tolerance window; Watch has no backoff or retry of its own.
//
// Watch blocks until ctx is done and owns the brake for that whole time.
// Run it in its own goroutine and do not touch the brake while it runs;
// observe trips through the action or the OnTrigger hook instead.
func (b *Brake) Watch(ctx context.Context, interval time.Duration, check Checker, action Action) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ok := check.Check(ctx)
			if !ok {
				b.cfg.logger.Warn().
					Str("brake", b.name).
					Msg("reachability check failed")
			}
			b.TriggerOnSample(ok, action)
		}
	}
}
