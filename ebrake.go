package ebrake

import (
	"context"

	"github.com/rs/zerolog"
)

// Func is the function signature for guarded operations.
type Func func(ctx context.Context) error

// Condition determines whether an error should count as a failure.
type Condition func(error) bool

// OnSampleFunc is called after each recorded sample.
type OnSampleFunc func(name string, ok bool, failures, samples int)

// OnTriggerFunc is called when a trigger fires, before the action runs.
type OnTriggerFunc func(name string, failures, tolerance int)

// Brake is a fixed-capacity failure-rate circuit breaker: it keeps a
// sliding window of the most recent boolean outcomes and trips once the
// number of failures within the window exceeds the configured tolerance.
// It is meant as a last-resort safety mechanism embedded in a
// long-running process: if too many recent operations failed, stop the
// process rather than continue doing damage.
//
// A Brake is a plain single-owner data structure with no internal
// locking. It is NOT safe for concurrent use; callers needing access
// from multiple goroutines must provide their own mutual exclusion
// around the whole brake.
type Brake struct {
	name      string
	tolerance int
	win       *window
	cfg       config
}

// New creates a Brake holding up to windowSize samples that trips once
// more than tolerance of them are failures.
//
// Degenerate configurations are accepted, not rejected: a windowSize of
// zero never collects enough samples to judge and therefore never trips,
// and a tolerance at or above windowSize can never be exceeded. Negative
// values are treated as zero.
func New(name string, windowSize, tolerance int, opts ...Option) *Brake {
	if tolerance < 0 {
		tolerance = 0
	}
	cfg := config{
		condition: defaultCondition,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Brake{
		name:      name,
		tolerance: tolerance,
		win:       newWindow(windowSize),
		cfg:       cfg,
	}
}

// Sample records one outcome, sliding the window forward. When the
// window is at capacity the oldest sample is evicted first and the
// counters adjusted for both the evicted and the new sample.
func (b *Brake) Sample(ok bool) {
	b.win.record(ok)
	if b.cfg.onSample != nil {
		b.cfg.onSample(b.name, ok, b.win.failures, b.win.count)
	}
}

// ShouldTrigger reports whether the failure tolerance has been exceeded.
// It is a pure predicate with no side effects.
//
// The decision is only made once the window has filled to capacity;
// below that it reports false regardless of sample values. A failure
// count exactly equal to tolerance does not trip: the comparison is
// strictly greater-than.
func (b *Brake) ShouldTrigger() bool {
	if !b.win.full() {
		return false
	}
	return b.win.failures > b.tolerance
}

// Trigger evaluates ShouldTrigger and, when tripped, logs the trigger
// event, fires the OnTrigger hook, and invokes action.
//
// Nothing latches: the condition is evaluated freshly on every call, so
// with a non-fatal action the brake keeps firing until enough fresh
// successes dilute the window back below tolerance. Trigger returns true
// only when the action itself returned; actions that halt the process or
// panic never hand control back.
func (b *Brake) Trigger(action Action) bool {
	if !b.ShouldTrigger() {
		return false
	}

	b.cfg.logger.Error().
		Str("brake", b.name).
		Int("failures", b.win.failures).
		Int("tolerance", b.tolerance).
		Int("window_size", len(b.win.buf)).
		Msg("failure tolerance exceeded")

	if b.cfg.onTrigger != nil {
		b.cfg.onTrigger(b.name, b.win.failures, b.tolerance)
	}

	action()
	return true
}

// TriggerOnSample records one outcome and then evaluates the trigger.
func (b *Brake) TriggerOnSample(ok bool, action Action) bool {
	b.Sample(ok)
	return b.Trigger(action)
}

// Do runs fn and reports its outcome to the brake. Unlike a state-machine
// circuit breaker there is no open state and no rejection: fn always
// runs. The returned error is classified by the configured condition (by
// default any non-nil error is a failure), the sample recorded, and the
// trigger evaluated. Do returns fn's error unchanged.
func (b *Brake) Do(ctx context.Context, action Action, fn Func) error {
	err := fn(ctx)
	b.TriggerOnSample(!b.cfg.condition(err), action)
	return err
}

// Name returns the brake name.
func (b *Brake) Name() string {
	return b.name
}

// Counts returns the failure and success counts currently in the window.
func (b *Brake) Counts() (failures, successes int) {
	return b.win.failures, b.win.successes
}

// Samples returns the number of samples currently in the window.
func (b *Brake) Samples() int {
	return b.win.count
}

// Size returns the window capacity.
func (b *Brake) Size() int {
	return len(b.win.buf)
}

// Tolerance returns the configured failure tolerance.
func (b *Brake) Tolerance() int {
	return b.tolerance
}

// FailureRate returns the ratio of failures to samples currently in the
// window, or 0 when the window is empty.
func (b *Brake) FailureRate() float64 {
	return b.win.failureRate()
}

// Reset discards all recorded samples. The configuration is unchanged.
func (b *Brake) Reset() {
	b.win.reset()
}

func defaultCondition(err error) bool {
	return err != nil
}
