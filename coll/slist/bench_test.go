package slist

import (
	"testing"

	"github.com/joshuapare/collkit/coll/mem"
)

func BenchmarkList_PushPopFront(b *testing.B) {
	l := New[int](mem.NewHeap())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.PushFront(i); err != nil {
			b.Fatal(err)
		}
		if l.Count() > 512 {
			l.PopFront() //nolint:errcheck
		}
	}
}

func BenchmarkList_SpliceFront(b *testing.B) {
	hook := mem.NewHeap()
	a := New[int](hook)
	c := New[int](hook)
	for i := 0; i < 512; i++ {
		a.PushFront(i) //nolint:errcheck
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src, dst := a, c
		if i&1 == 1 {
			src, dst = c, a
		}
		if err := dst.SpliceFront(src, 512); err != nil {
			b.Fatal(err)
		}
	}
}
