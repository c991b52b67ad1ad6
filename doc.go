// Package ebrake implements an emergency brake: a fixed-capacity
// failure-rate circuit breaker for long-running processes.
//
// ebrake keeps a sliding window of the most recent success/failure
// outcomes and trips once the number of failures in a full window
// exceeds a configured tolerance. It is a last-resort safety mechanism:
// when too many recent operations have failed, it is safer to stop the
// process than to keep doing damage.
//
//   - Bounded History: a fixed-size FIFO window of boolean samples
//   - Strict Tolerance: trips only when failures exceed (not reach) tolerance
//   - Injected Actions: halt, panic, or log-only; the core never hardcodes termination
//   - No Latching: fresh successes dilute the window and release the brake
//
// # Quick Start
//
// Create a brake and report outcomes as they happen:
//
//	brake := ebrake.New("upstream", 25, 3)
//
//	for {
//	    err := doWork()
//	    brake.TriggerOnSample(err == nil, ebrake.Exit(1))
//	}
//
// Once more than 3 of the last 25 outcomes are failures, the brake logs
// a trigger event and halts the process.
//
// # Sampling and Triggering
//
// The core operations are separable:
//
//	brake.Sample(false)          // record one outcome
//	if brake.ShouldTrigger() {   // pure predicate, no side effects
//	    ...
//	}
//	brake.Trigger(action)        // evaluate and fire the action if tripped
//
// ShouldTrigger reports false until the window has filled to capacity,
// regardless of sample values: the brake does not judge on partial
// evidence. After that it reports true exactly while failures exceed
// tolerance. Nothing latches; repeated Trigger calls with a non-fatal
// action keep firing until successes dilute the window.
//
// # Trigger Actions
//
// What happens on a trip is an injected capability, so the core stays
// testable without terminating the test process:
//
//	ebrake.Exit(1)  // halt the process immediately
//	ebrake.Panic()  // panic with ErrTripped; a supervisor may recover
//	ebrake.Nop      // log-only
//
// A supervisor recovering from the panic variant can identify it:
//
//	defer func() {
//	    if v := recover(); v != nil {
//	        if err, ok := v.(error); ok && ebrake.IsTripped(err) {
//	            ...
//	        }
//	    }
//	}()
//
// # Guarded Execution
//
// For callers that prefer wrapping operations instead of reporting
// samples, Do runs a function and records its outcome. There is no open
// state and no rejection; the function always runs:
//
//	err := brake.Do(ctx, ebrake.Exit(1), func(ctx context.Context) error {
//	    return client.Ping(ctx)
//	})
//
// The generic Run helper returns values:
//
//	user, err := ebrake.Run(ctx, brake, ebrake.Panic(), func(ctx context.Context) (*User, error) {
//	    return client.GetUser(ctx, id)
//	})
//
// By default any non-nil error counts as a failure. Customize with If,
// IfNot, and Not, e.g. to ignore context cancellation:
//
//	brake := ebrake.New("api", 25, 3,
//	    ebrake.IfNot(func(err error) bool {
//	        return errors.Is(err, context.Canceled)
//	    }),
//	)
//
// # Health Watching
//
// Watch drives the brake from a periodic HTTP reachability check. It
// takes exclusive ownership of the brake for its lifetime:
//
//	brake := ebrake.New("frontend", 25, 3, ebrake.WithLogger(log))
//	go brake.Watch(ctx, 10*time.Second,
//	    ebrake.HTTPChecker{URL: "https://example.com/healthz"},
//	    ebrake.Exit(1),
//	)
//
// Every transport failure, timeout, or error status is one failure
// sample; the tolerance window absorbs transient blips.
//
// # Degenerate Configurations
//
// Construction accepts any non-negative window size and tolerance. A
// window size of zero can never collect enough samples to judge, so the
// brake never trips; a tolerance at or above the window size can never
// be exceeded. Both are intentional, valid configurations, not errors.
//
// # Observability
//
// The brake logs trigger events through a zerolog logger (silent by
// default) and exposes OnSample and OnTrigger hooks:
//
//	brake := ebrake.New("upstream", 25, 3,
//	    ebrake.WithLogger(log),
//	    ebrake.OnTrigger(func(name string, failures, tolerance int) {
//	        alert(name, failures)
//	    }),
//	)
//
// The prometheus subpackage wires these hooks to prometheus metrics.
//
// # Concurrency
//
// A Brake is a plain single-owner data structure with no internal
// locking. Synchronous operations run to completion on the calling
// goroutine; all I/O lives in the external watcher. Wrap the whole
// brake in your own mutex if multiple goroutines must share it, or
// hand it to Watch, which owns it exclusively.
package ebrake
