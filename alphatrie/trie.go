package alphatrie

import (
	"fmt"
	"strings"
)

// config is shared by a trie, all its nodes and all its clones. It is never
// modified after New.
type config struct {
	alphabet string    // canonical upper-case symbols in first-seen order
	ord      [256]int8 // symbol (either case) -> ordinal, -1 if unknown
	full     uint64    // one bit per alphabet symbol
	mode     Mode
}

// Trie is not safe for concurrent use.
type Trie[M comparable] struct {
	cfg    *config
	length int // -1 if unbounded
	root   *node[M]
}

// New creates a trie over the symbols of alphabet. Symbols are matched
// case-insensitively.
func New[M comparable](alphabet string, opts ...Option) (*Trie[M], error) {
	var o = options{mode: Presence}

	for _, opt := range opts {
		opt(&o)
	}

	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if !o.bounded {
		o.length = -1
	} else if o.length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, o.length)
	}

	cfg := &config{mode: o.mode}
	for i := range cfg.ord {
		cfg.ord[i] = -1
	}

	var buf strings.Builder

	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII alphabet byte %#x", ErrInvalidSymbol, c)
		}

		up, low := toUpper(c), toLower(c)
		if cfg.ord[up] >= 0 {
			continue // duplicate
		}

		if buf.Len() == 64 {
			return nil, ErrAlphabetTooLarge
		}

		ord := int8(buf.Len())
		cfg.ord[up] = ord
		cfg.ord[low] = ord
		cfg.full |= uint64(1) << uint(ord)

		buf.WriteByte(up)
	}

	cfg.alphabet = buf.String()

	return &Trie[M]{
		cfg:    cfg,
		length: o.length,
		root:   newNode[M](o.length),
	}, nil
}

func (t *Trie[M]) Alphabet() string { return t.cfg.alphabet }
func (t *Trie[M]) Mode() Mode       { return t.cfg.mode }

// Length returns the fixed key length and whether there is one.
func (t *Trie[M]) Length() (int, bool) {
	return t.length, t.length >= 0
}

// CheckSymbols verifies that every byte of s belongs to the alphabet.
func (t *Trie[M]) CheckSymbols(s string) error {
	var bad []byte

	for i := 0; i < len(s); i++ {
		if t.cfg.ord[s[i]] < 0 {
			bad = append(bad, s[i])
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, bad)
	}

	return nil
}

func (t *Trie[M]) validate(key string) error {
	if t.length >= 0 && len(key) != t.length {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, t.length, len(key))
	}
	return t.CheckSymbols(key)
}

// Add inserts key. In Occurrences mode meta is appended to the key's list,
// in Presence mode it is ignored.
func (t *Trie[M]) Add(key string, meta M) error {
	if err := t.validate(key); err != nil {
		return err
	}

	t.add(t.root, key, meta)

	return nil
}

func (t *Trie[M]) add(n *node[M], key string, meta M) {
	if key == "" {
		if t.cfg.mode == Occurrences {
			n.occ = append(n.occ, meta)
		} else {
			n.present = true
		}
		return
	}

	if t.cfg.mode == Presence && n.isSaturated() {
		return // everything below is already there
	}

	ord := t.cfg.ord[key[0]]
	next := n.child(ord)

	if next == nil {
		rem := -1
		if n.rem > 0 {
			rem = n.rem - 1
		}

		next = newNode[M](rem)
		n.setChild(ord, next)
	}

	t.add(next, key[1:], meta)

	if n.bitmap == t.cfg.full {
		n.saturated = n.saturatedChildren() == t.cfg.full
	}
}

// Has reports whether key is present.
func (t *Trie[M]) Has(key string) (bool, error) {
	if err := t.validate(key); err != nil {
		return false, err
	}

	occ, ok := t.lookup(key)
	if t.cfg.mode == Occurrences {
		return len(occ) > 0, nil
	}

	return ok, nil
}

// Lookup returns a copy of the occurrence list of key. It is always nil in
// Presence mode.
func (t *Trie[M]) Lookup(key string) ([]M, error) {
	if err := t.validate(key); err != nil {
		return nil, err
	}

	occ, _ := t.lookup(key)

	return occ, nil
}

func (t *Trie[M]) lookup(key string) ([]M, bool) {
	n := t.root

	for {
		if t.cfg.mode == Presence && n.isSaturated() {
			return nil, true // every key under a saturated node exists
		}

		if key == "" {
			if t.cfg.mode == Occurrences {
				if len(n.occ) == 0 {
					return nil, false
				}
				out := make([]M, len(n.occ))
				copy(out, n.occ)
				return out, true
			}
			return nil, n.present
		}

		if n = n.child(t.cfg.ord[key[0]]); n == nil {
			return nil, false
		}
		key = key[1:]
	}
}

// Delete removes the first occurrence of key equal to meta (Occurrences
// mode) or the key itself (Presence mode). It reports whether anything was
// removed; deleting an absent key is not an error.
func (t *Trie[M]) Delete(key string, meta M) (bool, error) {
	return t.DeleteFunc(key, meta, func(a, b M) bool { return a == b })
}

// DeleteFunc is like Delete but matches stored metadata with eq(stored, meta).
func (t *Trie[M]) DeleteFunc(key string, meta M, eq func(a, b M) bool) (bool, error) {
	if err := t.validate(key); err != nil {
		return false, err
	}

	return t.remove(t.root, key, meta, eq), nil
}

func (t *Trie[M]) remove(n *node[M], key string, meta M, eq func(a, b M) bool) bool {
	if key == "" {
		if t.cfg.mode == Occurrences {
			for i, m := range n.occ {
				if eq(m, meta) {
					n.occ = append(n.occ[:i:i], n.occ[i+1:]...)
					return true
				}
			}
			return false
		}

		if !n.present {
			return false
		}
		n.present = false

		return true
	}

	ord := t.cfg.ord[key[0]]
	next := n.child(ord)

	if next == nil || !t.remove(next, key[1:], meta, eq) {
		return false
	}

	if next.isEmpty(t.cfg.mode) {
		n.dropChild(ord)
	}
	n.saturated = false

	return true
}

// NextSet returns the symbols that have a child after walking prefix. The
// set is empty when prefix reaches the key length or leaves the trie.
func (t *Trie[M]) NextSet(prefix string) SymbolSet {
	n := t.root

	for {
		if n.rem >= 0 && n.rem <= len(prefix) {
			return SymbolSet{cfg: t.cfg}
		}
		if prefix == "" {
			return SymbolSet{bits: n.bitmap, cfg: t.cfg}
		}
		if n = n.child(t.cfg.ord[prefix[0]]); n == nil {
			return SymbolSet{cfg: t.cfg}
		}
		prefix = prefix[1:]
	}
}

// AvailableNextSet returns the symbols whose subtree after prefix is not
// saturated yet. When prefix leaves the trie every symbol is available; when
// it reaches the key length none is.
func (t *Trie[M]) AvailableNextSet(prefix string) SymbolSet {
	n := t.root

	for {
		if n.rem >= 0 && n.rem <= len(prefix) {
			return SymbolSet{cfg: t.cfg}
		}
		if prefix == "" {
			return SymbolSet{bits: t.cfg.full &^ n.saturatedChildren(), cfg: t.cfg}
		}
		if n = n.child(t.cfg.ord[prefix[0]]); n == nil {
			return SymbolSet{bits: t.cfg.full, cfg: t.cfg}
		}
		prefix = prefix[1:]
	}
}

// IsSaturated reports whether every key of the fixed length is present.
func (t *Trie[M]) IsSaturated() bool {
	return t.root.isSaturated()
}

func (t *Trie[M]) IsEmpty() bool {
	return t.root.isEmpty(t.cfg.mode)
}

// Clone returns a deep copy sharing no nodes with t.
func (t *Trie[M]) Clone() *Trie[M] {
	return &Trie[M]{
		cfg:    t.cfg,
		length: t.length,
		root:   t.root.clone(),
	}
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
