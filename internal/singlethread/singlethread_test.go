package singlethread

import (
	"sync"
	"testing"
)

func TestGuard_sameGoroutineOK(t *testing.T) {
	var g Guard
	g.Enter()
	g.Enter()
	g.Enter()
}

func TestGuard_differentGoroutinePanics(t *testing.T) {
	var g Guard
	g.Enter()

	done := make(chan any, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { done <- recover() }()
		g.Enter()
	}()
	wg.Wait()

	if r := <-done; r == nil {
		t.Fatal("expected Enter from a different goroutine to panic")
	}
}
