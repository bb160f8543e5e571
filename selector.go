package tas

// selection is the outcome of one dequeue selection pass: either a queue
// ready to serve now (wait == 0), or the queue that will open soonest
// together with how long to wait, or queue == -1 if there is nothing to do.
type selection struct {
	queue int
	wait  int64
}

const noSelection = -1

// selectQueue picks the next queue to serve. When cycleLength is 0 (no
// schedule configured), it degenerates to plain strict priority: the
// highest-priority non-empty queue, immediately.
func selectQueue(queues [TotalQosTags]Queue, idx *queueOpenIndex, cycleLength int64, guardBand bool, dataRateBps int64, now int64) selection {
	if cycleLength == 0 {
		for q := TotalQosTags - 1; q >= 0; q-- {
			if !queues[q].IsEmpty() {
				return selection{queue: q, wait: 0}
			}
		}
		return selection{queue: noSelection}
	}

	best := selection{queue: noSelection}
	anyNonEmpty := false

	for q := TotalQosTags - 1; q >= 0; q-- {
		if queues[q].IsEmpty() {
			continue
		}
		anyNonEmpty = true

		var transmission int64
		if guardBand {
			if item, ok := queues[q].Peek(); ok {
				transmission = TransmissionTime(item.Size(), dataRateBps)
			}
		}

		d := idx.timeUntilOpen(q, now, cycleLength, transmission)
		if d < 0 {
			// q's gate is never open anywhere in the schedule.
			continue
		}
		if best.queue == noSelection || d < best.wait {
			best = selection{queue: q, wait: d}
		}
	}

	if !anyNonEmpty {
		return selection{queue: noSelection}
	}
	return best
}
