package tas

// Clock returns the current simulated time, in nanoseconds, the same unit
// the rest of this package uses throughout (see Schedule.CyclePosition).
// When unset, Core falls back to Kernel.Now.
//
// A Clock is injected rather than read from a package-level variable (as
// catrate.timeNow is) because a Core must be safely constructible more than
// once within a single test binary.
type Clock func() int64

// WakeupHandle identifies one posted future callback, as returned by
// Kernel.Schedule. Its zero value never refers to a real callback.
type WakeupHandle any

// Kernel models the discrete-event simulator this package is embedded in.
// It is the only way the core reaches into the future: Dequeue never
// blocks or sleeps, it posts a callback through Kernel.Schedule and
// returns.
type Kernel interface {
	// Now returns the current simulation time in nanoseconds. Used as the
	// fallback time source when no Clock is configured.
	Now() int64

	// Schedule posts fn to run once, at absolute time at (nanoseconds,
	// same epoch as Now). The returned handle can be passed to IsExpired.
	Schedule(at int64, fn func()) WakeupHandle

	// IsExpired reports whether the callback identified by h has already
	// fired or been superseded. The wake-up table uses this to decide
	// whether a pending entry may be idempotently skipped on re-arm.
	IsExpired(h WakeupHandle) bool
}

// Classifier maps a queued item to a priority class 0..7, or returns
// (0, false) to indicate no match, letting the enqueue path fall through to
// the packet's priority tag (see Core.Enqueue).
type Classifier interface {
	Classify(item Item) (class int, matched bool)
}

// ClassifierFunc adapts a function to a Classifier.
type ClassifierFunc func(item Item) (int, bool)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(item Item) (int, bool) { return f(item) }

// Item is the minimal shape the core needs from a queued packet: its wire
// size for transmission-time computation, and an optional priority tag
// used when no classifier matches.
type Item interface {
	// Size returns the on-wire size in bytes. Implementations that cannot
	// report a size should return 0; the core then treats transmission
	// time as zero, degrading the guard band to "always fits".
	Size() int
}

// Tagged is an optional extension of Item: items that already carry a
// socket-priority tag implement it so Core.Enqueue can use the tag when no
// classifier matches and TrustQostag observes it.
type Tagged interface {
	Item
	PriorityTag() (tag int, ok bool)
}
