package omap

import (
	"testing"

	"github.com/joshuapare/collkit/coll/mem"
)

func BenchmarkMap_InsertOrAssign(b *testing.B) {
	m, _ := NewOrdered[int, int](1024, mem.NewHeap())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.InsertOrAssign(i&1023, i)
	}
}

func BenchmarkMap_GetKeyValue(b *testing.B) {
	m, _ := NewOrdered[int, int](1024, mem.NewHeap())
	for i := 0; i < 1024; i++ {
		m.TryInsert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.GetKeyValue(i&1023) == nil {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkMap_EqualRange(b *testing.B) {
	m, _ := NewOrdered[int, int](1024, mem.NewHeap())
	for i := 0; i < 1024; i++ {
		m.TryInsert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := i & 511
		r := m.EqualRange(lo, lo+64)
		n := 0
		for it := r.Begin; it != r.End; it = it.Next() {
			n++
		}
		if n != 64 {
			b.Fatalf("range size = %d", n)
		}
	}
}
