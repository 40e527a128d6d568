package alphatrie

import (
	"slices"

	"github.com/hideo55/go-popcount"
)

type node[M comparable] struct {
	bitmap   uint64     // bit N is set when the symbol with ordinal N has a child
	children []*node[M] // ordered by ordinal, len == popcount(bitmap)

	rem       int // remaining key length below this node, -1 if unbounded
	saturated bool

	present bool // Presence mode
	occ     []M  // Occurrences mode
}

func newNode[M comparable](rem int) *node[M] {
	return &node[M]{
		rem:       rem,
		saturated: rem == 0,
	}
}

// rank returns the slot of ord in the children slice.
func (n *node[M]) rank(ord int8) uint64 {
	return popcount.Count(n.bitmap & ((uint64(1) << uint(ord)) - 1))
}

func (n *node[M]) child(ord int8) *node[M] {
	if ord < 0 || (n.bitmap>>uint(ord))&0x01 == 0 {
		return nil
	}
	return n.children[n.rank(ord)]
}

func (n *node[M]) setChild(ord int8, c *node[M]) {
	idx := n.rank(ord)
	n.children = slices.Insert(n.children, int(idx), c)
	n.bitmap |= uint64(1) << uint(ord)
}

func (n *node[M]) dropChild(ord int8) {
	idx := n.rank(ord)
	n.children = slices.Delete(n.children, int(idx), int(idx)+1)
	n.bitmap &^= uint64(1) << uint(ord)
}

func (n *node[M]) numChildren() int {
	return int(popcount.Count(n.bitmap))
}

func (n *node[M]) isSaturated() bool {
	return n.rem == 0 || (n.rem > 0 && n.saturated)
}

// saturatedChildren returns a bitmap of the children that are saturated.
func (n *node[M]) saturatedChildren() uint64 {
	var (
		out uint64
		bmp = n.bitmap
	)

	for _, c := range n.children {
		low := bmp & -bmp // lowest set bit belongs to c
		if c.isSaturated() {
			out |= low
		}
		bmp &^= low
	}

	return out
}

func (n *node[M]) holds(mode Mode) bool {
	if mode == Occurrences {
		return len(n.occ) > 0
	}
	return n.present
}

func (n *node[M]) isEmpty(mode Mode) bool {
	return n.bitmap == 0 && !n.holds(mode)
}

func (n *node[M]) clone() *node[M] {
	c := &node[M]{
		bitmap:    n.bitmap,
		rem:       n.rem,
		saturated: n.saturated,
		present:   n.present,
		occ:       slices.Clone(n.occ),
	}

	if len(n.children) > 0 {
		c.children = make([]*node[M], len(n.children))
		for i, ch := range n.children {
			c.children[i] = ch.clone()
		}
	}

	return c
}
