package search

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMeldFrontier_PopsAscending(t *testing.T) {
	var front meldFrontier[int]
	c := 100000
	slc := make([]int64, 0, c)
	for i := 0; i < c; i += 1 {
		n := rand.Int63()
		slc = append(slc, n)
		front.Push(i, n)
	}
	if front.Len() != c {
		t.Fatalf("Bad length: %d != %d", front.Len(), c)
	}
	slc2 := make([]int64, 0, c)
	for i := 0; i < c; i += 1 {
		_, p := front.Pop()
		slc2 = append(slc2, p)
	}
	if front.Len() != 0 {
		t.Fatalf("Frontier not drained: %d", front.Len())
	}

	sort.Slice(slc, func(i, j int) bool { return slc[i] < slc[j] })
	for i := 0; i < c; i += 1 {
		if slc[i] != slc2[i] {
			t.Error("Mismatch")
		}
	}
}

func TestMeldFrontier_InterleavedPushPop(t *testing.T) {
	var front meldFrontier[string]
	front.Push("b", 2)
	front.Push("a", 1)
	front.Push("c", 3)

	v, p := front.Pop()
	if v != "a" || p != 1 {
		t.Fatalf("Bad min: %s %d", v, p)
	}
	front.Push("z", 0)
	v, _ = front.Pop()
	if v != "z" {
		t.Fatalf("Bad min after push: %s", v)
	}
	v, _ = front.Pop()
	if v != "b" {
		t.Fatalf("Bad order: %s", v)
	}
	v, _ = front.Pop()
	if v != "c" {
		t.Fatalf("Bad order: %s", v)
	}
}
