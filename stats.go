package tas

// Stats holds per-priority and aggregate counters, mirroring the kind of
// drop/dequeue observability a QueueDisc's trace sources expose. This is
// pure bookkeeping; it never influences scheduling decisions.
type Stats struct {
	Enqueued [TotalQosTags]uint64
	Dequeued [TotalQosTags]uint64
	Dropped  [TotalQosTags]uint64
}

// TotalEnqueued returns the sum of Enqueued across all priorities.
func (s Stats) TotalEnqueued() uint64 { return sum8(s.Enqueued) }

// TotalDequeued returns the sum of Dequeued across all priorities.
func (s Stats) TotalDequeued() uint64 { return sum8(s.Dequeued) }

// TotalDropped returns the sum of Dropped across all priorities.
func (s Stats) TotalDropped() uint64 { return sum8(s.Dropped) }

func sum8(a [TotalQosTags]uint64) uint64 {
	var total uint64
	for _, v := range a {
		total += v
	}
	return total
}
