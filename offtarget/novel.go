package offtarget

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/aglyzov/go-seqtrie/seq"
)

// generatedName names the windows of the sequence being generated, so they
// read "Generated Sequence (start, end)" in hits.
const generatedName = "Generated Sequence"

// Candidate is a generated sequence together with its off-targets. Hit
// offsets count from the start of the prefix.
type Candidate struct {
	Sequence   string `json:"sequence"`
	OffTargets []Hit  `json:"offTargets"`
}

// Novel returns the sequences of the given length that, placed between
// prefix and suffix, have at most tolerance off-target windows against refs,
// the boundary windows and their own earlier windows.
//
// All validation and indexing happen before Novel returns. Each range over
// the result runs a full depth-first search on a fresh copy of that index;
// breaking out of the loop stops the search. The order of candidates is the
// search order, not sorted.
func Novel(length int, prefix, suffix string, tolerance int, refs []seq.Sequence, opts ...Option) (iter.Seq[Candidate], error) {
	o := newOptions(opts)

	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTolerance, tolerance)
	}

	w := o.windowLength
	if o.index != nil && w == 0 {
		n, ok := o.index.Length()
		if !ok {
			return nil, ErrUnboundedIndex
		}
		w = n
	}

	base, err := buildIndex(o.index, w, refs, o.revComp)
	if err != nil {
		return nil, err
	}

	if err = base.CheckSymbols(prefix); err != nil {
		return nil, fmt.Errorf("offtarget: prefix: %w", err)
	}
	if err = base.CheckSymbols(suffix); err != nil {
		return nil, fmt.Errorf("offtarget: suffix: %w", err)
	}

	var (
		p      = len(prefix)
		bounds = [...]struct {
			bases      string
			start, end int
		}{
			{prefix, 0, p},
			{suffix, p + length, p + length + len(suffix)},
		}
		edges [2]seq.Sequence
	)

	for i, b := range bounds {
		name := fmt.Sprintf("%s (%d, %d)", generatedName, b.start, b.end)

		if edges[i], err = seq.New(b.bases, name); err != nil {
			return nil, err
		}
		if err = populate(base, edges[i], o.revComp); err != nil {
			return nil, err
		}
	}

	logger := o.logger.With("component", "offtarget")

	return func(yield func(Candidate) bool) {
		s := &searcher{
			idx:       base.Clone(),
			logger:    logger,
			prefix:    edges[0].String(),
			suffix:    edges[1].String(),
			length:    length,
			tolerance: tolerance,
			window:    w,
			revComp:   o.revComp,
		}
		s.run(yield)
	}, nil
}

// FindNovel collects every candidate of Novel.
func FindNovel(length int, prefix, suffix string, tolerance int, refs []seq.Sequence, opts ...Option) ([]Candidate, error) {
	candidates, err := Novel(length, prefix, suffix, tolerance, refs, opts...)
	if err != nil {
		return nil, err
	}

	var out []Candidate
	for c := range candidates {
		out = append(out, c)
	}

	return out, nil
}

type frame struct {
	depth int // position of base in the generated sequence
	base  byte
}

// searcher walks the candidate tree depth first. The index is shared by all
// branches: the window ending at every placed base is added when the base is
// placed and deleted again when the search backtracks over it.
type searcher struct {
	idx    *Index
	logger *slog.Logger

	prefix    string
	suffix    string
	length    int
	tolerance int
	window    int
	revComp   bool

	buf       []byte // prefix followed by the generated bases
	confirmed []Hit  // off-targets of the windows in buf, by ascending offset
	stack     []frame
}

func (s *searcher) run(yield func(Candidate) bool) {
	var (
		frames   int
		accepted int
		stopped  bool
	)

	defer func() {
		s.logger.Debug("novel sequence search finished",
			"length", s.length,
			"window", s.window,
			"tolerance", s.tolerance,
			"frames", frames,
			"candidates", accepted,
			"stopped", stopped,
		)
	}()

	s.buf = append(make([]byte, 0, len(s.prefix)+s.length), s.prefix...)
	s.push(0)

	for len(s.stack) > 0 {
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		frames++

		s.rollback(f.depth)

		if f.depth < s.length-1 {
			s.place(f.base)
			s.push(f.depth + 1)
			continue
		}

		c, ok := s.complete(f.base)
		if !ok {
			continue
		}

		accepted++
		if !yield(c) {
			stopped = true
			return
		}
	}
}

// push schedules every base that still leads to an unsaturated branch, or
// every base at all while the budget is not used up.
func (s *searcher) push(depth int) {
	avail := s.idx.AvailableNextSet(s.context())

	for i := 0; i < len(seq.Definitive); i++ {
		b := seq.Definitive[i]

		if avail.Has(b) || len(s.confirmed) < s.tolerance {
			s.stack = append(s.stack, frame{depth: depth, base: b})
		}
	}
}

// rollback restores the state before the base at depth was placed.
func (s *searcher) rollback(depth int) {
	p, w := len(s.prefix), s.window

	for d := depth; d < len(s.buf)-p; d++ {
		start := p + d - w + 1
		if start < 0 {
			continue
		}

		_, err := s.idx.Delete(s.key(string(s.buf[start:start+w])), s.windowName(start))
		must(err)
	}

	s.buf = s.buf[:p+depth]

	cut := p + depth - w + 1
	s.confirmed = slices.DeleteFunc(s.confirmed, func(h Hit) bool { return h.Index >= cut })
}

// place appends b, recording the off-targets of the window it completes and
// indexing that window.
func (s *searcher) place(b byte) {
	if start := len(s.buf) - s.window + 1; start >= 0 {
		win := string(s.buf[start:]) + string(b)

		targets, err := s.idx.Lookup(win)
		must(err)

		if len(targets) > 0 {
			s.confirmed = append(s.confirmed, Hit{Index: start, Targets: targets})
		}

		must(s.idx.Add(s.key(win), s.windowName(start)))
	}

	s.buf = append(s.buf, b)
}

// complete checks the candidate ending in b. The windows containing b are
// scanned against the index plus the candidate's own boundary windows, the
// same result as indexing those windows in a copy of the index.
func (s *searcher) complete(b byte) (Candidate, bool) {
	var (
		p, w  = len(s.prefix), s.window
		full  = string(s.buf) + string(b) + s.suffix
		lo    = max(p-w+1, 0)
		hi    = min(p+s.length+w-1, len(full))
		keys  []string
		names []string
	)

	for j := lo; j+w <= hi; j++ {
		keys = append(keys, s.key(full[j:j+w]))
		names = append(names, s.windowName(j))
	}

	own := func(key string, targets []string) []string {
		for i, k := range keys {
			if k == key {
				targets = append(targets, names[i])
			}
		}
		return targets
	}

	candidate, err := seq.New(full, generatedName)
	must(err)

	q := Query{Seq: candidate, Start: p + s.length - 1, End: p + s.length}

	hits, err := scan(s.idx, q, w, s.revComp, true, own)
	must(err)

	if len(s.confirmed)+len(hits) > s.tolerance {
		return Candidate{}, false
	}

	return Candidate{
		Sequence:   full[p : p+s.length],
		OffTargets: slices.Concat(s.confirmed, hits),
	}, true
}

// context returns the bases a window ending at the next position starts with.
func (s *searcher) context() string {
	n := s.window - 1
	if n <= 0 {
		return ""
	}
	if len(s.buf) <= n {
		return string(s.buf)
	}
	return string(s.buf[len(s.buf)-n:])
}

func (s *searcher) key(win string) string {
	if s.revComp {
		return seq.ReverseComplement(win)
	}
	return win
}

func (s *searcher) windowName(start int) string {
	return fmt.Sprintf("%s (%d, %d)", generatedName, start, start+s.window)
}

// must panics on index errors. Everything reaching the index during a search
// was validated up front, so an error means a broken invariant.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("offtarget: corrupted search state: %v", err))
	}
}
