package tas

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// String serializes the schedule to the textual wire format used for
// attribute injection: each window as
// "<duration> <g0> <g1> ... <g7> <start_offset> <stop_offset>",
// whitespace-separated, terminated by a single "0".
func (s *Schedule) String() string {
	var b strings.Builder
	for i, w := range s.Windows() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", w.Duration)
		for _, open := range w.GateMask {
			if open {
				b.WriteString(" 1")
			} else {
				b.WriteString(" 0")
			}
		}
		fmt.Fprintf(&b, " %d %d", w.StartOffset, w.StopOffset)
	}
	if s.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte('0')
	return b.String()
}

// ParseSchedule parses the textual wire format produced by Schedule.String.
// It requires at least one window and rejects an incomplete gate map,
// returning ErrMalformedSchedule in both cases. Unlike the original C++
// stream parser this reads by token, so it terminates on EOF even if the
// sentinel "0" is missing, rather than looping forever on a stalled peek.
func ParseSchedule(text string) (*Schedule, error) {
	scan := bufio.NewScanner(strings.NewReader(text))
	scan.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !scan.Scan() {
			return "", false
		}
		return scan.Text(), true
	}
	nextInt := func() (int64, bool) {
		tok, ok := next()
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	s := &Schedule{}
	for {
		duration, ok := nextInt()
		if !ok {
			return nil, fmt.Errorf("%w: unexpected end of input before terminator", ErrMalformedSchedule)
		}
		if duration == 0 {
			break
		}

		var mask GateMask
		for i := range mask {
			g, ok := nextInt()
			if !ok {
				return nil, fmt.Errorf("%w: incomplete gate mask (got %d of %d values)", ErrMalformedSchedule, i, TotalQosTags)
			}
			mask[i] = g != 0
		}

		start, ok := nextInt()
		if !ok {
			return nil, fmt.Errorf("%w: missing start_offset", ErrMalformedSchedule)
		}
		stop, ok := nextInt()
		if !ok {
			return nil, fmt.Errorf("%w: missing stop_offset", ErrMalformedSchedule)
		}

		if err := s.Append(Window{Duration: duration, GateMask: mask, StartOffset: start, StopOffset: stop}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
		}
	}

	if s.Len() == 0 {
		return nil, fmt.Errorf("%w: at least one window is required", ErrMalformedSchedule)
	}

	return s, nil
}
