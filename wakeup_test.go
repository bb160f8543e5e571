package tas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeKernel is a tas.Kernel whose Schedule calls are recorded rather than
// actually deferred, letting tests assert on arm/re-arm behavior directly.
type fakeKernel struct {
	now     int64
	calls   int
	expired map[WakeupHandle]bool
}

func newFakeKernel() *fakeKernel {
	return &fakeKernel{expired: map[WakeupHandle]bool{}}
}

func (k *fakeKernel) Now() int64 { return k.now }

func (k *fakeKernel) Schedule(at int64, fn func()) WakeupHandle {
	k.calls++
	h := k.calls
	return h
}

func (k *fakeKernel) IsExpired(h WakeupHandle) bool {
	return k.expired[h]
}

func TestWakeupTable_idempotentReArm(t *testing.T) {
	var table wakeupTable
	k := newFakeKernel()

	table.scheduleRun(k, 0, 100, func() {})
	table.scheduleRun(k, 0, 200, func() {})
	assert.Equal(t, 1, k.calls, "re-arming a still-pending entry must not post a second callback")
}

func TestWakeupTable_reArmsAfterExpiry(t *testing.T) {
	var table wakeupTable
	k := newFakeKernel()

	table.scheduleRun(k, 0, 100, func() {})
	k.expired[1] = true

	table.scheduleRun(k, 0, 200, func() {})
	assert.Equal(t, 2, k.calls)
}

func TestWakeupTable_independentPerQueue(t *testing.T) {
	var table wakeupTable
	k := newFakeKernel()

	table.scheduleRun(k, 0, 100, func() {})
	table.scheduleRun(k, 1, 100, func() {})
	assert.Equal(t, 2, k.calls)
}

func TestWakeupTable_pending(t *testing.T) {
	var table wakeupTable
	k := newFakeKernel()

	assert.False(t, table.pending(k, 0))
	table.scheduleRun(k, 0, 100, func() {})
	assert.True(t, table.pending(k, 0))

	k.expired[1] = true
	assert.False(t, table.pending(k, 0))
}
