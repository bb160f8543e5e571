//go:build tas_debug

package tas

import "github.com/joeycumines/go-tas/internal/singlethread"

// debugGuard panics if Core is entered from more than one goroutine, when
// built with the tas_debug tag. Core's single-threaded cooperative model
// means any real concurrent access is a caller bug worth catching in CI,
// but the check itself is not free, so it's opt-in.
type debugGuard struct {
	g singlethread.Guard
}

func (d *debugGuard) Enter() { d.g.Enter() }
