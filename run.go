package ebrake

import "context"

// Run executes fn, reports its outcome to the brake, and returns its
// result. This is a convenience wrapper for guarded functions that
// return a value.
func Run[T any](ctx context.Context, b *Brake, action Action, fn func(context.Context) (T, error)) (T, error) {
	var result T
	err := b.Do(ctx, action, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}
