package ebrake

import "github.com/rs/zerolog"

type config struct {
	condition Condition
	logger    zerolog.Logger

	onSample  OnSampleFunc
	onTrigger OnTriggerFunc
}

// Option configures a Brake.
type Option func(*config)

// WithLogger sets the logger used for trigger events and failed
// reachability checks. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// If sets the condition that determines whether an error from Do or Run
// counts as a failure sample. By default, any non-nil error is a failure.
func If(cond Condition) Option {
	return func(c *config) {
		c.condition = cond
	}
}

// IfNot sets a condition where matching errors are NOT counted as failures.
// This is equivalent to If(Not(cond)).
func IfNot(cond Condition) Option {
	return If(Not(cond))
}

// Not inverts a condition.
func Not(cond Condition) Condition {
	return func(err error) bool {
		return !cond(err)
	}
}

// OnSample sets a hook called after each recorded sample.
func OnSample(fn OnSampleFunc) Option {
	return func(c *config) {
		c.onSample = fn
	}
}

// OnTrigger sets a hook called when a trigger fires, before the action runs.
func OnTrigger(fn OnTriggerFunc) Option {
	return func(c *config) {
		c.onTrigger = fn
	}
}
