package tas

// Core is the decision logic of a single Time-Aware Shaper instance: a
// schedule, one FIFO per priority, a wake-up table, and the collaborators
// needed to drive them. It never blocks; Dequeue that finds nothing ready
// arms a wake-up through Kernel and returns immediately.
type Core struct {
	schedule    *Schedule
	index       *queueOpenIndex
	cycleLength int64

	queues [TotalQosTags]Queue

	kernel      Kernel
	clock       Clock
	log         *Logger
	classifier  Classifier
	trustQostag bool
	guardBand   bool
	dataRateBps int64

	wakeups wakeupTable
	ready   func()
	stats   Stats
	guard   debugGuard
}

// New constructs a Core over schedule, applying opts in order. schedule may
// be nil or empty, in which case Core degenerates to plain strict priority
// (see NewStrictPriority). WithKernel is required; New returns ErrNoKernel
// if it is never supplied.
func New(schedule *Schedule, opts ...Option) (*Core, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if cfg.kernel == nil {
		return nil, ErrNoKernel
	}

	c := &Core{
		schedule:    schedule,
		queues:      cfg.queues,
		kernel:      cfg.kernel,
		clock:       cfg.clock,
		log:         cfg.logger,
		classifier:  cfg.classifier,
		trustQostag: cfg.trustQostag,
		guardBand:   cfg.guardBand,
		dataRateBps: cfg.dataRateBps,
	}
	if schedule != nil {
		c.index = buildQueueOpenIndex(schedule)
		c.cycleLength = schedule.CycleLength()
	}
	return c, nil
}

// NewStrictPriority constructs a Core with no gate schedule: a plain
// eight-priority strict-priority scheduler. This is the degenerate mode a
// zero-window Schedule also produces; the named constructor exists so
// callers who never intend to configure gating don't need to build an empty
// Schedule themselves.
func NewStrictPriority(opts ...Option) (*Core, error) {
	return New(nil, opts...)
}

// now returns the current simulation time, preferring an injected Clock
// over the Kernel's own notion of time.
func (c *Core) now() int64 {
	if c.clock != nil {
		return c.clock()
	}
	return c.kernel.Now()
}

// Enqueue classifies item, then appends it to the resulting priority's
// queue. It returns false if that queue is at capacity, in which case item
// is dropped and a warning is logged. After a successful enqueue, Core arms
// a wake-up for the affected queue so a sleeping Dequeue loop is prodded
// awake.
func (c *Core) Enqueue(item Item) bool {
	c.guard.Enter()
	class, usedTag := classify(item, c.classifier, c.trustQostag, c.log)
	traceClassified(c.log, class, usedTag)

	if !c.queues[class].Enqueue(item) {
		c.stats.Dropped[class]++
		warnDropped(c.log, class, "queue at capacity")
		return false
	}
	c.stats.Enqueued[class]++

	c.armWakeup(class)
	return true
}

// Dequeue removes and returns the next item to transmit, if any queue's
// gate is currently open for it. If nothing is ready now, it arms a
// wake-up for the soonest-opening non-empty queue and returns (nil, false);
// the caller is expected to call Dequeue again once notified (see
// SetReadyCallback).
func (c *Core) Dequeue() (Item, bool) {
	c.guard.Enter()
	sel := selectQueue(c.queues, c.index, c.cycleLength, c.guardBand, c.dataRateBps, c.now())
	if sel.queue == noSelection {
		return nil, false
	}
	if sel.wait > 0 {
		c.armWakeupAt(sel.queue, c.now()+sel.wait)
		return nil, false
	}

	item, ok := c.queues[sel.queue].Dequeue()
	if !ok {
		// Selector said sel.queue was non-empty; a concurrent caller would
		// break the single-threaded contract this package relies on.
		invariantViolation("selected queue became empty between select and dequeue")
	}
	c.stats.Dequeued[sel.queue]++

	// The queue may still hold more items behind a gate that's about to
	// close; make sure a future wake-up is armed for it.
	if !c.queues[sel.queue].IsEmpty() {
		c.armWakeup(sel.queue)
	}
	return item, true
}

// Peek returns the head item that Dequeue would return right now, without
// removing it, using the same selection logic as Dequeue. It returns
// (nil, false) if no queue is currently open for its head-of-line item.
func (c *Core) Peek() (Item, bool) {
	c.guard.Enter()
	sel := selectQueue(c.queues, c.index, c.cycleLength, c.guardBand, c.dataRateBps, c.now())
	if sel.queue == noSelection || sel.wait > 0 {
		return nil, false
	}
	return c.queues[sel.queue].Peek()
}

// SetReadyCallback installs fn to be invoked (from within a Kernel-posted
// callback) whenever a wake-up fires for any queue. Callers typically use
// this to re-invoke Dequeue.
func (c *Core) SetReadyCallback(fn func()) {
	c.ready = fn
}

// Stats returns a snapshot of the enqueue/dequeue/drop counters.
func (c *Core) Stats() Stats {
	return c.stats
}

// Schedule returns the schedule this Core was constructed with. It may be
// nil if Core is running in strict-priority mode.
func (c *Core) Schedule() *Schedule {
	return c.schedule
}

// armWakeup arms a wake-up for queue q at the earliest time its gate is
// projected to be open, accounting for the guard band of its current
// head-of-line item. In strict-priority mode (no schedule configured) no
// gate ever closes, so no wake-up is posted; the caller is expected to have
// already tried, or to retry, Dequeue directly.
func (c *Core) armWakeup(q int) {
	if c.cycleLength == 0 {
		return
	}

	var transmission int64
	if c.guardBand {
		if item, ok := c.queues[q].Peek(); ok {
			transmission = TransmissionTime(item.Size(), c.dataRateBps)
			if transmission == 0 {
				warnNoTransmissionTime(c.log, q)
			}
		}
	}

	wait := c.index.timeUntilOpen(q, c.now(), c.cycleLength, transmission)
	if wait < 0 {
		return
	}
	c.armWakeupAt(q, c.now()+wait)
}

// armWakeupAt idempotently schedules the shared ready callback to run at
// absolute time t for queue q.
func (c *Core) armWakeupAt(q int, t int64) {
	c.wakeups.scheduleRun(c.kernel, q, t, func() {
		if c.ready != nil {
			c.ready()
		}
	})
}
