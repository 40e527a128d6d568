package offtarget

import (
	"fmt"

	"github.com/aglyzov/go-seqtrie/alphatrie"
	"github.com/aglyzov/go-seqtrie/seq"
)

// Index maps windows to the names of the windows they were cut from.
type Index = alphatrie.Trie[string]

// NewIndex creates an empty window index over seq.Definitive.
func NewIndex(windowLength int, mode alphatrie.Mode) (*Index, error) {
	if windowLength <= 0 {
		return nil, ErrWindowLength
	}

	return alphatrie.New[string](seq.Definitive,
		alphatrie.WithLength(windowLength),
		alphatrie.WithMode(mode),
	)
}

// Populate slides a window over s and adds every window (or its reverse
// complement) to the index given by WithIndex, or to a new one built from
// WithWindowLength and WithOccurrences. It returns the index it added to.
func Populate(s seq.Sequence, opts ...Option) (*Index, error) {
	var (
		o   = newOptions(opts)
		idx = o.index
	)

	if idx == nil {
		mode := alphatrie.Presence
		if o.occurrences {
			mode = alphatrie.Occurrences
		}

		var err error
		if idx, err = NewIndex(o.windowLength, mode); err != nil {
			return nil, err
		}
	}

	if err := populate(idx, s, o.revComp); err != nil {
		return nil, err
	}

	return idx, nil
}

func populate(idx *Index, s seq.Sequence, revComp bool) error {
	w, ok := idx.Length()
	if !ok {
		return ErrUnboundedIndex
	}
	if w == 0 {
		return ErrWindowLength
	}

	for i := 0; i <= s.Len()-w; i++ {
		win := s.Slice(i, i+w)

		key := win.String()
		if revComp {
			key = win.RevComp()
		}

		if err := idx.Add(key, win.Name()); err != nil {
			return fmt.Errorf("offtarget: window %d of %q: %w", i, s.Name(), err)
		}
	}

	return nil
}
