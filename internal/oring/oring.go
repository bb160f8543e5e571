// Package oring provides small sorted-slice search helpers for flat,
// monotonically non-decreasing vectors, adapted from the binary-search
// technique in catrate's ringBuffer.Search (see
// github.com/joeycumines/go-catrate), generalized to golang.org/x/exp's
// ordered-type constraint.
//
// Unlike catrate's ringBuffer, these helpers operate on plain slices: the
// queue-open index they back is built once, in order, and never mutated
// after initialization, so there is no need for the wraparound insert
// logic a true ring buffer provides.
package oring

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SearchGreater returns the smallest index i such that s[i] > v, or
// len(s) if no such index exists. s must be sorted in non-decreasing
// order.
func SearchGreater[E constraints.Ordered](s []E, v E) int {
	return sort.Search(len(s), func(i int) bool {
		return s[i] > v
	})
}
