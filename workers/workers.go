// Package workers provides a shared background worker pool used to run
// caller-supplied units of work off the calling goroutine.
package workers

import (
	"sync"

	"github.com/alitto/pond/v2"
)

const defaultWorkerCount = 10

// pool returns the shared worker pool, creating it on first use.
var pool = sync.OnceValue(func() pond.Pool {
	return pond.NewPool(defaultWorkerCount)
})

// Submit submits a function to the shared worker pool.
// It returns a Task that can be used to wait for the function to complete.
// Panics inside f are recovered by the pool and surfaced via Task.Wait.
func Submit(f func()) pond.Task { //nolint:ireturn
	return pool().Submit(f)
}

// Go submits a function to the shared worker pool and returns immediately.
// It returns an error if the pool has been stopped.
func Go(f func()) error {
	return pool().Go(f)
}

// NewPool creates a dedicated pool with the given concurrency, for callers
// that need isolation from the shared pool (e.g. long-running attempts that
// may be abandoned and would otherwise starve shared workers).
func NewPool(maxConcurrency int) pond.Pool { //nolint:ireturn
	return pond.NewPool(maxConcurrency)
}
