package offtarget

import (
	"fmt"
	"slices"

	"github.com/aglyzov/go-seqtrie/alphatrie"
	"github.com/aglyzov/go-seqtrie/seq"
)

// Hit lists the reference windows matching the query window at Index.
type Hit struct {
	Index   int      `json:"index"`
	Targets []string `json:"targets"`
}

// Query selects the windows of Seq to check. Windows starting in
// [Start-windowLength+1, End) are scanned, so windows that only overlap
// Start are included. End is exclusive; 0 means through the last full window.
type Query struct {
	Seq   seq.Sequence
	Start int
	End   int
}

// Find indexes every window of refs (on top of a copy of the WithIndex
// index, if any) and returns the hits of each query, in query order and by
// ascending offset.
func Find(queries []Query, windowLength int, refs []seq.Sequence, opts ...Option) ([][]Hit, error) {
	o := newOptions(opts)

	idx, err := buildIndex(o.index, windowLength, refs, o.revComp)
	if err != nil {
		return nil, err
	}

	out := make([][]Hit, 0, len(queries))

	for qi, q := range queries {
		hits, err := scan(idx, q, windowLength, o.revComp, o.selfExclusion, nil)
		if err != nil {
			return nil, fmt.Errorf("offtarget: query %d %q: %w", qi, q.Seq.Name(), err)
		}
		out = append(out, hits)
	}

	return out, nil
}

// buildIndex returns a copy of base, or a new occurrence index, holding
// every window of refs.
func buildIndex(base *Index, w int, refs []seq.Sequence, revComp bool) (*Index, error) {
	if w <= 0 {
		return nil, ErrWindowLength
	}

	var idx *Index

	if base != nil {
		n, ok := base.Length()
		switch {
		case !ok:
			return nil, ErrUnboundedIndex
		case n != w:
			return nil, fmt.Errorf("%w: index windows are %d long, not %d", alphatrie.ErrLengthMismatch, n, w)
		case base.Mode() != alphatrie.Occurrences:
			return nil, ErrIndexMode
		}

		idx = base.Clone()
	} else {
		var err error
		if idx, err = NewIndex(w, alphatrie.Occurrences); err != nil {
			return nil, err
		}
	}

	for _, ref := range refs {
		if err := populate(idx, ref, revComp); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// overlay adds matches that are not in the index to the targets of key.
type overlay func(key string, targets []string) []string

func scan(idx *Index, q Query, w int, revComp, selfExclusion bool, extra overlay) ([]Hit, error) {
	var (
		hits []Hit
		last = q.Seq.Len() - w + 1
		end  = q.End
	)

	if end == 0 || end > last {
		end = last
	}

	for i := max(0, q.Start-w+1); i < end; i++ {
		win := q.Seq.Slice(i, i+w)

		targets, err := idx.Lookup(win.String())
		if err != nil {
			return nil, err
		}
		if extra != nil {
			targets = extra(win.String(), targets)
		}

		if selfExclusion && !revComp && win.Name() != "" {
			name := win.Name()
			targets = slices.DeleteFunc(targets, func(t string) bool { return t == name })
		}

		if len(targets) > 0 {
			hits = append(hits, Hit{Index: i, Targets: targets})
		}
	}

	return hits, nil
}
