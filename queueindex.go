package tas

import "github.com/joeycumines/go-tas/internal/oring"

// noOpenSentinel is returned by timeUntilOpen when q is out of range or has
// no open window anywhere in the schedule.
const noOpenSentinel = -1

// queueOpenIndex is the per-queue sorted (open, close) instant index built
// once from a Schedule at initialization time and never mutated
// afterwards. Because windows are scanned left to right and each window's
// start offset only grows, opens[q] and closes[q] come out already sorted
// without needing an explicit sort step.
type queueOpenIndex struct {
	opens  [TotalQosTags][]int64
	closes [TotalQosTags][]int64
}

// buildQueueOpenIndex scans schedule left to right once, appending
// window_start+StartOffset / window_start+Duration-StopOffset to the
// relevant queue's opens/closes vectors for every window whose GateMask
// has that queue open. It does not merge adjacent intervals.
func buildQueueOpenIndex(s *Schedule) *queueOpenIndex {
	idx := &queueOpenIndex{}
	var windowStart int64
	for _, w := range s.Windows() {
		for q := 0; q < TotalQosTags; q++ {
			if w.GateMask[q] {
				idx.opens[q] = append(idx.opens[q], windowStart+w.openStart())
				idx.closes[q] = append(idx.closes[q], windowStart+w.openEnd())
			}
		}
		windowStart += w.Duration
	}
	for q := 0; q < TotalQosTags; q++ {
		if len(idx.opens[q]) != len(idx.closes[q]) {
			invariantViolation("opens/closes length mismatch for queue")
		}
	}
	return idx
}

// timeUntilOpen returns how long queue q must wait, from now, for its gate
// to be open for at least transmission nanoseconds. now is an absolute
// simulation time; cycleLength must be the schedule's (> 0) cycle length.
// transmission is the guard-band lookahead: the time the head-of-line frame
// would occupy the link, or 0 to disable guard-band lookahead entirely.
func (idx *queueOpenIndex) timeUntilOpen(q int, now, cycleLength, transmission int64) int64 {
	if q < 0 || q >= TotalQosTags {
		return noOpenSentinel
	}
	opens, closes := idx.opens[q], idx.closes[q]
	if len(opens) == 0 {
		return noOpenSentinel
	}

	r := CyclePosition(now, cycleLength)
	i := oring.SearchGreater(closes, r+transmission)

	if i == len(closes) {
		// wrap: the queue's first opening next cycle.
		return opens[0] + cycleLength - r
	}

	if opens[i] <= r {
		if i == 0 && closes[0] < r+transmission {
			// Guard band: even the wrapped-to window can't hold the frame.
			return opens[0] - r + cycleLength
		}
		return 0
	}

	return opens[i] - r
}
