// Package async runs a function on its own goroutine and hands back a Future
// for its result.
//
//	f := async.Async(ctx, req, func(ctx context.Context, r Request) (string, error) {
//	    return send(ctx, r)
//	})
//	id, err := f.Await()
//
// If ctx is already canceled when the goroutine starts, the function is not
// called and the Future completes with ctx.Err(). Cancellation after that
// point is up to the function itself.
//
// WaitAll collects the results of several futures in order and stops at the
// first error. AwaitWithTimeout gives up waiting (the goroutine keeps running)
// and returns ErrTimeout.
package async
