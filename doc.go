// Package tas implements the core decision logic of an IEEE 802.1Qbv
// Time-Aware Shaper (TAS) egress queueing discipline: a cyclic, gated,
// eight-priority scheduler suitable for embedding in a discrete-event
// network simulator or a software dataplane.
//
// The package owns three intertwined pieces: a cyclic gate [Schedule] with
// a derived [queueOpenIndex] for O(log n) "when does queue q next open"
// lookups, a strict-priority [Core.Dequeue] selector with guard-band
// enforcement, and an idempotent wake-up table so that at most one future
// callback is ever outstanding per queue.
//
// Everything outside those three pieces - the simulator's event loop, the
// packet classifier chain, and the per-queue FIFOs - is modeled as a small
// collaborator interface ([Kernel], [Classifier], [Queue]) so the core can
// be driven by a real event loop or by a fake clock in tests.
package tas
