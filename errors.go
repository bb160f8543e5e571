package tas

import "errors"

var (
	// ErrInvalidWindow is returned by Schedule construction when a Window's
	// offsets leave no (or a negative) effective open region, or its
	// duration is non-positive.
	ErrInvalidWindow = errors.New("tas: window start_offset + stop_offset must be less than duration")

	// ErrMalformedSchedule is returned by ParseSchedule when the wire
	// format (see Schedule.String / ParseSchedule) is truncated, has an
	// incomplete gate mask, or names zero windows.
	ErrMalformedSchedule = errors.New("tas: malformed schedule text")

	// ErrInvalidPriority is returned when a priority class argument falls
	// outside 0..TotalQosTags-1.
	ErrInvalidPriority = errors.New("tas: priority out of range")

	// ErrNoKernel is returned by New when no WithKernel Option was supplied.
	ErrNoKernel = errors.New("tas: a Kernel is required, see WithKernel")
)

// invariantViolation panics to signal a bug in this package rather than bad
// input: opens/closes vectors misaligned, or a queue the selector found
// non-empty turning up empty on dequeue. Unlike ErrInvalidWindow and
// ErrMalformedSchedule these are not recoverable.
func invariantViolation(msg string) {
	panic("tas: internal invariant violation: " + msg)
}
