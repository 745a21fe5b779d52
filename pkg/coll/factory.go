package coll

import (
	"cmp"

	"github.com/joshuapare/collkit/coll/buffer"
	"github.com/joshuapare/collkit/coll/hashmap"
	"github.com/joshuapare/collkit/coll/list"
	"github.com/joshuapare/collkit/coll/omap"
	"github.com/joshuapare/collkit/coll/pqueue"
	"github.com/joshuapare/collkit/coll/slist"
)

// NewHashMap constructs an unordered keyed container.
func NewHashMap[K comparable, V any](opts *Options) (*hashmap.Map[K, V], error) {
	return hashmap.New[K, V](opts.capacity(), opts.hook())
}

// NewOMap constructs a key-ordered container over the natural order of K.
func NewOMap[K cmp.Ordered, V any](opts *Options) (*omap.Map[K, V], error) {
	return omap.NewOrdered[K, V](opts.capacity(), opts.hook())
}

// NewOMapFunc constructs a key-ordered container over an explicit
// three-way comparison.
func NewOMapFunc[K, V any](compare func(K, K) int, opts *Options) (*omap.Map[K, V], error) {
	return omap.New[K, V](compare, opts.capacity(), opts.hook())
}

// NewList constructs a doubly linked sequence. Capacity does not apply to
// linked storage and is ignored.
func NewList[T any](opts *Options) *list.List[T] {
	return list.New[T](opts.hook())
}

// NewSList constructs a singly linked sequence. Capacity does not apply to
// linked storage and is ignored.
func NewSList[T any](opts *Options) *slist.List[T] {
	return slist.New[T](opts.hook())
}

// NewPQueue constructs a min-ordered priority queue over the natural order
// of T. dtor, which may be nil, runs on elements removed by Pop, Erase and
// Clear.
func NewPQueue[T cmp.Ordered](dtor func(*T), opts *Options) (*pqueue.Queue[T], error) {
	return pqueue.NewOrdered[T](opts.capacity(), dtor, opts.hook())
}

// NewPQueueFunc constructs a priority queue over an explicit three-way
// comparison. compare(a, b) < 0 places a closer to the front.
func NewPQueueFunc[T any](compare func(a, b T) int, dtor func(*T), opts *Options) (*pqueue.Queue[T], error) {
	return pqueue.New[T](opts.capacity(), compare, dtor, opts.hook())
}

// NewBuffer constructs a flat dense container with slot-stable handles.
func NewBuffer[T any](opts *Options) (*buffer.Buffer[T], error) {
	return buffer.New[T](opts.capacity(), opts.hook())
}
