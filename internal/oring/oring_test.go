package oring

import "testing"

func TestSearchGreater(t *testing.T) {
	s := []int64{10, 20, 20, 30}
	tests := []struct {
		v    int64
		want int
	}{
		{v: 5, want: 0},
		{v: 10, want: 1},
		{v: 20, want: 3},
		{v: 30, want: 4},
		{v: 31, want: 4},
	}
	for _, tt := range tests {
		if got := SearchGreater(s, tt.v); got != tt.want {
			t.Errorf("SearchGreater(%v, %d) = %d, want %d", s, tt.v, got, tt.want)
		}
	}
}

func TestSearchGreater_empty(t *testing.T) {
	if got := SearchGreater([]int64{}, 0); got != 0 {
		t.Errorf("SearchGreater(empty, 0) = %d, want 0", got)
	}
}
