package tas

import "golang.org/x/exp/slices"

// Schedule is the canonical representation of a cyclic TAS gate plan: an
// ordered sequence of Windows, not reordered, whose durations sum to
// CycleLength. An empty Schedule (no windows) means "no gating" - see
// Core's degenerate strict-priority mode.
//
// Schedule is built once, via NewSchedule or repeated Append calls, and is
// never mutated afterwards by Core; there is deliberately no removal or
// replacement API, so the schedule stays fixed for the lifetime of a run.
type Schedule struct {
	windows     []Window
	cycleLength int64
}

// NewSchedule constructs a Schedule from zero or more Windows, validating
// each with the same rules as NewWindow. An empty windows slice yields a
// valid, empty (no-gating) Schedule.
func NewSchedule(windows ...Window) (*Schedule, error) {
	s := &Schedule{}
	for _, w := range windows {
		if err := s.Append(w); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Append validates and adds one Window to the end of the schedule,
// returning ErrInvalidWindow without modifying the schedule if w is
// invalid.
func (s *Schedule) Append(w Window) error {
	if err := w.validate(); err != nil {
		return err
	}
	s.windows = append(s.windows, w)
	s.cycleLength += w.Duration
	return nil
}

// Len returns the number of windows in the schedule.
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.windows)
}

// CycleLength returns the sum of all window durations. Zero means "no
// gating configured".
func (s *Schedule) CycleLength() int64 {
	if s == nil {
		return 0
	}
	return s.cycleLength
}

// Windows returns the schedule's windows in order. The returned slice must
// not be mutated by the caller.
func (s *Schedule) Windows() []Window {
	if s == nil {
		return nil
	}
	return s.windows
}

// Equal reports whether two schedules have identical windows in the same
// order, used by the parse/serialize round-trip tests.
func (s *Schedule) Equal(other *Schedule) bool {
	return slices.Equal(s.Windows(), other.Windows())
}
