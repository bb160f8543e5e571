//go:build !tas_debug

package tas

// debugGuard is a no-op in default builds; see debug_on.go for the
// tas_debug build that actually checks single-goroutine access.
type debugGuard struct{}

func (debugGuard) Enter() {}
