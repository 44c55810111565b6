package system

import (
	"context"
)

// RunWithContext executes an operation in its own goroutine and joins it
// before returning, so background work never outlives the caller.
//
// The function handles three key scenarios:
//   - Normal completion: the operation finishes and its result is returned
//   - Error during the operation: the error is propagated to the caller
//   - Context cancellation: the operation is signalled to stop but is
//     still waited for, so resources settle before control returns
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller was already cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own context so cancellation of the parent
	// signals it to stop without tearing it down mid-write.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can always deliver its result and exit,
	// even if the parent context fires first.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then still wait for it to finish
		// so no goroutine or open handle is left behind.
		cancel()
		return <-done
	}
}
