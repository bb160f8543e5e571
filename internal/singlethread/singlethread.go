// Package singlethread provides a cheap runtime assertion that a value is
// only ever touched from one goroutine at a time, for use in tests and
// behind the tas_debug build tag.
//
// The core scheduler's concurrency model is single threaded cooperative:
// every operation runs on the embedding simulator's one logical thread.
// This package catches accidental violations of that assumption early,
// rather than leaving them to manifest as rare data races.
package singlethread

import (
	"bytes"
	"fmt"
	"runtime"
)

// Guard records the identity of the first goroutine to call Enter, and
// panics if a later call observes a different goroutine.
type Guard struct {
	id []byte
}

// Enter checks the calling goroutine against the one recorded by the first
// call, panicking on mismatch. It is safe to call concurrently only in the
// sense that it will reliably detect the concurrency and panic.
func (g *Guard) Enter() {
	id := goroutineID()
	if g.id == nil {
		g.id = id
		return
	}
	if !bytes.Equal(g.id, id) {
		panic(fmt.Sprintf("singlethread: accessed from goroutine %s, previously %s", id, g.id))
	}
}

func goroutineID() []byte {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	// the stack trace starts with "goroutine <id> [running]:"
	const prefix = "goroutine "
	if bytes.HasPrefix(b, []byte(prefix)) {
		b = b[len(prefix):]
	}
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
