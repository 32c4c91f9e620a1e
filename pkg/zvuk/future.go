package zvuk

import "context"

// Future holds the eventual result of an operation started with Go. It is
// resolved exactly once; Wait can be called any number of times from any
// goroutine.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on its own goroutine and returns a Future for its result.
// Every facade method can be lifted this way, so the non-blocking surface
// is the blocking one by construction:
//
//	f := zvuk.Go(ctx, func(ctx context.Context) (*models.Track, error) {
//	    return client.GetTrack(ctx, id)
//	})
//	track, err := f.Wait(ctx)
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// Wait blocks until the result is ready or ctx is cancelled. On
// cancellation the operation keeps running with the context it was
// started with; only the wait is abandoned.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the result without blocking. ok is false while the
// operation is still running.
func (f *Future[T]) TryGet() (value T, err error, ok bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Done closes when the result is ready, for use in select statements.
func (f *Future[T]) Done() <-chan struct{} { return f.done }
