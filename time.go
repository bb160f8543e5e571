package tas

// CyclePosition returns t mod cycleLength using Euclidean remainder (always
// non-negative). Behavior is undefined for cycleLength <= 0; callers must
// check for the empty-schedule case (see Schedule.CycleLength) before
// calling this.
func CyclePosition(t, cycleLength int64) int64 {
	r := t % cycleLength
	if r < 0 {
		r += cycleLength
	}
	return r
}

// TransmissionTime returns the time, in nanoseconds, needed to put bytes on
// a link running at rateBps bits per second, rounded up. It returns 0 if
// bytes or rateBps is non-positive, degrading the guard band to "frame
// always fits" rather than dividing by zero or returning a negative
// duration.
func TransmissionTime(bytes int, rateBps int64) int64 {
	if bytes <= 0 || rateBps <= 0 {
		return 0
	}
	bits := int64(bytes) * 8
	// ceil(bits * 1e9 / rateBps), computed directly; the intermediate
	// product overflows int64 only for frames larger than about 1.15e9 bytes.
	num := bits * 1_000_000_000
	q := num / rateBps
	if num%rateBps != 0 {
		q++
	}
	return q
}
