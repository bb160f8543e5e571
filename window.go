package tas

import "fmt"

// TotalQosTags is the fixed number of strict-priority queues an IEEE
// 802.1Q gate mask addresses. This is a protocol invariant, not a tuning
// knob, and is kept as a compile-time constant throughout the package.
const TotalQosTags = 8

// GateMask indicates, per priority 0..7, whether that queue's gate is open
// during a Window.
type GateMask [TotalQosTags]bool

// Window is one entry of the cyclic gate schedule: a fixed-duration
// interval during which GateMask is constant, with optional guard offsets
// narrowing the effective open region to
// [StartOffset, Duration-StopOffset).
type Window struct {
	Duration    int64 // nanoseconds, must be > 0
	GateMask    GateMask
	StartOffset int64 // nanoseconds, must be >= 0
	StopOffset  int64 // nanoseconds, must be >= 0
}

// NewWindow validates and constructs a Window. It returns ErrInvalidWindow
// if duration is non-positive, either offset is negative, or the offsets
// leave no effective open region (start+stop >= duration).
func NewWindow(duration int64, mask GateMask, startOffset, stopOffset int64) (Window, error) {
	w := Window{Duration: duration, GateMask: mask, StartOffset: startOffset, StopOffset: stopOffset}
	if err := w.validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) validate() error {
	if w.Duration <= 0 {
		return fmt.Errorf("%w: duration %d <= 0", ErrInvalidWindow, w.Duration)
	}
	if w.StartOffset < 0 || w.StopOffset < 0 {
		return fmt.Errorf("%w: negative offset (start=%d, stop=%d)", ErrInvalidWindow, w.StartOffset, w.StopOffset)
	}
	if w.StartOffset+w.StopOffset >= w.Duration {
		return fmt.Errorf("%w: start_offset(%d)+stop_offset(%d) >= duration(%d)", ErrInvalidWindow, w.StartOffset, w.StopOffset, w.Duration)
	}
	return nil
}

// openStart returns the effective gate-open instant within the window,
// relative to the window's own start.
func (w Window) openStart() int64 { return w.StartOffset }

// openEnd returns the effective gate-close instant within the window,
// relative to the window's own start.
func (w Window) openEnd() int64 { return w.Duration - w.StopOffset }
