package distcount

import (
	"testing"

	"github.com/tfp-graph/pagg/stream"
)

func TestRoundTripExample(t *testing.T) {
	in := stream.FromSlice([]int{0, 1, 1, 2, 2, 2, 5})
	dc := New[int](in, Equatable[int])

	type want struct {
		value, count, index uint64
	}
	wants := []want{
		{0, 1, 1},
		{1, 2, 3},
		{2, 3, 6},
		{5, 1, 7},
	}
	for i, w := range wants {
		if dc.Empty() {
			t.Fatalf("unexpectedly empty at block %d", i)
		}
		b := dc.Current()
		if uint64(b.Value) != w.value || b.Count != w.count || b.Index != w.index {
			t.Fatalf("block %d: got %+v want %+v", i, b, w)
		}
		dc.Advance()
	}
	if !dc.Empty() {
		t.Fatalf("expected empty after all blocks consumed")
	}
}

func TestCountsSumToInputLength(t *testing.T) {
	items := []int{1, 1, 1, 2, 3, 3, 4, 4, 4, 4}
	in := stream.FromSlice(items)
	dc := New[int](in, Equatable[int])
	var sum uint64
	var lastIndex uint64
	for !dc.Empty() {
		b := dc.Current()
		sum += b.Count
		if b.Index != sum {
			t.Fatalf("index %d should equal running sum %d", b.Index, sum)
		}
		lastIndex = b.Index
		dc.Advance()
	}
	if sum != uint64(len(items)) {
		t.Fatalf("sum of counts %d != input length %d", sum, len(items))
	}
	if lastIndex != uint64(len(items)) {
		t.Fatalf("final index %d != input length %d", lastIndex, len(items))
	}
}

func TestRestart(t *testing.T) {
	in := stream.FromSlice([]int{7, 7, 8})
	dc := New[int](in, Equatable[int]) // New already consumed the run of 7s from the input
	dc.Restart()
	if dc.Empty() {
		t.Fatalf("restart should resample from current input position")
	}
	if dc.Current().Index != 1 {
		t.Fatalf("restart should reset running index before resampling, got %d", dc.Current().Index)
	}
}
