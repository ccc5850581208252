package gpu

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded means a frame committed more primitives than the
	// table was sized for. It is a configuration error, not a runtime one.
	ErrCapacityExceeded = errors.New("gpu: ordering table capacity exceeded")

	// ErrDepthOutOfRange means a primitive was committed to a bucket the
	// table does not have.
	ErrDepthOutOfRange = errors.New("gpu: depth bucket out of range")
)

const end = -1

// OrderingTable is a per-frame depth-bucketed list of primitives.
//
// Primitives are copied into a scratch slice allocated once at construction.
// Each bucket is a singly linked list threaded through that slice; Add
// inserts at the head, so within one bucket the primitive added last is
// executed first. Walk visits buckets from the deepest down to 0.
type OrderingTable struct {
	prims []Primitive
	heads []int32
}

// NewOrderingTable creates a table with depth buckets 0..depth-1 and room
// for capacity primitives per frame.
func NewOrderingTable(depth, capacity int) *OrderingTable {
	t := &OrderingTable{
		prims: make([]Primitive, 0, capacity),
		heads: make([]int32, depth),
	}
	t.Reset()
	return t
}

// Depth returns the number of buckets.
func (t *OrderingTable) Depth() int { return len(t.heads) }

// Cap returns the maximum number of primitives per frame.
func (t *OrderingTable) Cap() int { return cap(t.prims) }

// Len returns the number of primitives added since the last Reset.
func (t *OrderingTable) Len() int { return len(t.prims) }

// Reset empties the table without releasing its storage.
func (t *OrderingTable) Reset() {
	t.prims = t.prims[:0]
	for i := range t.heads {
		t.heads[i] = end
	}
}

// Add copies p into the scratch buffer and links it into bucket otz.
func (t *OrderingTable) Add(otz int, p Primitive) error {
	if otz < 0 || otz >= len(t.heads) {
		return fmt.Errorf("%w: otz %d not in [0, %d)", ErrDepthOutOfRange, otz, len(t.heads))
	}
	if len(t.prims) == cap(t.prims) {
		return fmt.Errorf("%w: %d primitives", ErrCapacityExceeded, cap(t.prims))
	}
	p.next = t.heads[otz]
	t.heads[otz] = int32(len(t.prims))
	t.prims = append(t.prims, p)
	return nil
}

// Walk calls fn for every primitive in execution order.
func (t *OrderingTable) Walk(fn func(otz int, p *Primitive)) {
	for otz := len(t.heads) - 1; otz >= 0; otz-- {
		for i := t.heads[otz]; i != end; i = t.prims[i].next {
			fn(otz, &t.prims[i])
		}
	}
}

// Bucket returns the primitives of bucket otz in execution order.
func (t *OrderingTable) Bucket(otz int) []Primitive {
	if otz < 0 || otz >= len(t.heads) {
		return nil
	}
	var out []Primitive
	for i := t.heads[otz]; i != end; i = t.prims[i].next {
		out = append(out, t.prims[i])
	}
	return out
}

// Count returns how many primitives of kind k are in bucket otz.
func (t *OrderingTable) Count(otz int, k Kind) int {
	if otz < 0 || otz >= len(t.heads) {
		return 0
	}
	n := 0
	for i := t.heads[otz]; i != end; i = t.prims[i].next {
		if t.prims[i].Kind == k {
			n++
		}
	}
	return n
}
