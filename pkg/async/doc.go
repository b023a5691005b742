// Package async provides a small generic Future used to run validation work
// in the background.
//
// Async starts a function in its own goroutine and returns a *Future. The
// caller collects the outcome with Await. WaitAll joins several futures,
// always waiting for every one of them.
//
// # Usage
//
//	future := async.Async(ctx, rc, func(ctx context.Context, rc *valida.Context) (*valida.Context, error) {
//	    return rc, rc.Run(ctx)
//	})
//
//	rc, err := future.Await()
//
// # Error Handling
//
// Futures complete with the error returned by the function, with ctx.Err()
// when the context was already canceled, or with ErrPanic when the function
// panicked.
package async
