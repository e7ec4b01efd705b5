package stream

import (
	"math/rand"
	"testing"
)

func intLess(a, b int) bool { return a < b }

func TestMergerTwoInputs(t *testing.T) {
	a := FromSlice([]int{0, 2, 4, 6})
	b := FromSlice([]int{1, 3, 5})
	m := NewMerger(intLess, Stream[int](a), Stream[int](b))
	got := Drain[int](m)
	want := []int{0, 1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestMergerThreeInputsRandomPartition(t *testing.T) {
	const k = 300
	parts := make([][]int, 3)
	r := rand.New(rand.NewSource(1))
	for v := 0; v < k; v++ {
		p := r.Intn(3)
		parts[p] = append(parts[p], v)
	}
	m := NewMerger(intLess,
		Stream[int](FromSlice(parts[0])),
		Stream[int](FromSlice(parts[1])),
		Stream[int](FromSlice(parts[2])),
	)
	got := Drain[int](m)
	if len(got) != k {
		t.Fatalf("expected %d values, got %d", k, len(got))
	}
	for i := range got {
		if got[i] != i {
			t.Fatalf("merger output not ascending at %d: %v", i, got)
		}
	}
}

func TestMergerEmptyInputs(t *testing.T) {
	m := NewMerger(intLess, Stream[int](FromSlice[int](nil)), Stream[int](FromSlice[int](nil)))
	if !m.Empty() {
		t.Fatalf("merger of empty inputs should be empty")
	}
}
