package tas

// wakeupState is the per-queue outstanding-callback state machine:
// idle -> pending(t) -> idle, on fire or cancel.
type wakeupState int

const (
	wakeupIdle wakeupState = iota
	wakeupPending
)

// wakeupEntry tracks at most one outstanding future callback for one
// priority queue.
type wakeupEntry struct {
	state  wakeupState
	handle WakeupHandle
}

// wakeupTable holds one optional future-event handle per priority, with
// idempotent re-arming. Re-arming
// an entry that is already pending (and not yet observed expired by the
// Kernel) is a documented no-op, not an error - this is essential because
// every enqueue, dequeue and timer firing may all race to re-arm the same
// queue, and without idempotence the simulator's event queue would grow
// without bound.
type wakeupTable struct {
	entries [TotalQosTags]wakeupEntry
}

// scheduleRun idempotently arms a wake-up for queue q at absolute time
// tFire: if idle, or pending but the Kernel reports the old handle expired,
// it posts a new callback through kernel.Schedule and records the handle.
// If already pending and not expired, it does nothing.
func (t *wakeupTable) scheduleRun(kernel Kernel, q int, tFire int64, fire func()) {
	e := &t.entries[q]
	if e.state == wakeupPending && !kernel.IsExpired(e.handle) {
		return
	}
	e.state = wakeupPending
	e.handle = kernel.Schedule(tFire, func() {
		e.state = wakeupIdle
		fire()
	})
}

// pending reports whether queue q currently has an outstanding wake-up,
// per the Kernel's view of expiry.
func (t *wakeupTable) pending(kernel Kernel, q int) bool {
	e := &t.entries[q]
	return e.state == wakeupPending && !kernel.IsExpired(e.handle)
}
