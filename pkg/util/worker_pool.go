package util

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
)

// WorkerPool controls the execution of a goroutine pool.
type WorkerPool interface {
	// Submit queues a function for execution in a separate routine.
	//
	// Implementations return any error that prevented the function from
	// being queued.
	Submit(func()) error

	// Release releases worker pool resources. Submit calls made after
	// Release finish with ErrPoolClosed. It does not wait until submitted
	// functions have returned, synchronization is the caller's concern
	// (e.g. sync.WaitGroup).
	Release()
}

// ErrPoolClosed is returned when a task is submitted to a closed pool.
var ErrPoolClosed = ants.ErrPoolClosed

// pseudoWorkerPool executes submitted jobs immediately in the caller's
// routine.
type pseudoWorkerPool struct {
	closed atomic.Bool
}

// NewPseudoWorkerPool returns a new instance of the synchronous worker
// pool.
func NewPseudoWorkerPool() WorkerPool {
	return &pseudoWorkerPool{}
}

// Submit executes the passed function immediately.
func (p *pseudoWorkerPool) Submit(fn func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}

	fn()

	return nil
}

// Release implements the WorkerPool interface.
func (p *pseudoWorkerPool) Release() {
	p.closed.Store(true)
}
