package mem

import (
	"github.com/joshuapare/collkit/internal/grow"
	"github.com/joshuapare/collkit/pkg/types"
)

// Region is externally reserved byte storage, mapped outside the ordinary
// hook flow. It exists for containers constructed over one-time reserved
// memory: such containers record no allocation authority of their own, so
// releasing them requires the original authority (the Region, via its
// Hook) to be supplied explicitly.
type Region struct {
	data []byte
	used int
}

// Bytes returns the reserved storage. The slice aliases the mapping and
// must not be retained after Close.
func (r *Region) Bytes() []byte { return r.data }

// Size returns the reserved size in bytes, zero after Close.
func (r *Region) Size() int { return len(r.data) }

// Close unmaps the region. Safe to call twice.
func (r *Region) Close() error { return r.release() }

// Hook returns the region's allocation authority. It grants growth while
// total granted bytes stay within the reservation and unmaps the region
// when the last grant is released.
func (r *Region) Hook() Hook { return (*regionHook)(r) }

type regionHook Region

// Grow implements Hook.
func (h *regionHook) Grow(oldCap, newCap, elemSize int) (int, error) {
	r := (*Region)(h)
	switch {
	case newCap == 0:
		released, ok := grow.MulOverflow(oldCap, elemSize)
		if ok && released <= r.used {
			r.used -= released
		} else {
			r.used = 0
		}
		if r.used == 0 {
			return 0, r.release()
		}
		return 0, nil
	case newCap <= oldCap:
		released, ok := grow.MulOverflow(oldCap-newCap, elemSize)
		if ok && released <= r.used {
			r.used -= released
		} else {
			r.used = 0
		}
		return newCap, nil
	default:
		added, ok := grow.MulOverflow(newCap-oldCap, elemSize)
		if !ok {
			return oldCap, types.ErrCapacity
		}
		total, ok := grow.AddOverflow(r.used, added)
		if !ok || total > len(r.data) {
			return oldCap, types.ErrCapacity
		}
		r.used = total
		return newCap, nil
	}
}
