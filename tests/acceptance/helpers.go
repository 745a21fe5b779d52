// Package acceptance holds black-box suites exercising every backend
// through the facade, the way library consumers use it.
package acceptance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/collkit/coll/hashmap"
	"github.com/joshuapare/collkit/coll/list"
	"github.com/joshuapare/collkit/coll/omap"
	"github.com/joshuapare/collkit/pkg/coll"
)

// newIntMap builds a heap-backed hashmap seeded with key -> key*10 for the
// given keys.
func newIntMap(t *testing.T, keys ...int) *hashmap.Map[int, int] {
	t.Helper()

	m, err := coll.NewHashMap[int, int](nil)
	require.NoError(t, err)
	for _, k := range keys {
		e := m.TryInsert(k, k*10)
		require.False(t, e.InsertError(), "seeding key %d", k)
	}
	return m
}

// newIntOMap builds a heap-backed ordered map seeded with key -> key*10.
func newIntOMap(t *testing.T, keys ...int) *omap.Map[int, int] {
	t.Helper()

	m, err := coll.NewOMap[int, int](nil)
	require.NoError(t, err)
	for _, k := range keys {
		e := m.TryInsert(k, k*10)
		require.False(t, e.InsertError(), "seeding key %d", k)
	}
	return m
}

// newIntList builds a heap-backed doubly linked list holding vals in order.
func newIntList(t *testing.T, vals ...int) *list.List[int] {
	t.Helper()

	l := coll.NewList[int](nil)
	for _, v := range vals {
		_, err := l.PushBack(v)
		require.NoError(t, err)
	}
	return l
}

// listValues collects a list's elements front to back.
func listValues(l *list.List[int]) []int {
	var out []int
	for it := l.Begin(); it != l.End(); it = it.Next() {
		out = append(out, *it.Value())
	}
	return out
}
