package alphatrie

import (
	"iter"
	"strings"

	"github.com/hideo55/go-popcount"
)

// SymbolSet is a set of symbols of one trie's alphabet.
type SymbolSet struct {
	bits uint64
	cfg  *config
}

// Has reports whether sym (in either case) is in the set.
func (s SymbolSet) Has(sym byte) bool {
	if s.cfg == nil {
		return false
	}
	ord := s.cfg.ord[sym]
	return ord >= 0 && (s.bits>>uint(ord))&0x01 != 0
}

func (s SymbolSet) Len() int {
	return int(popcount.Count(s.bits))
}

func (s SymbolSet) IsEmpty() bool {
	return s.bits == 0
}

// All yields the symbols in alphabet order.
func (s SymbolSet) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for bmp := s.bits; bmp != 0; {
			low := bmp & -bmp
			bmp &^= low

			if !yield(s.cfg.alphabet[popcount.Count(low-1)]) {
				return
			}
		}
	}
}

// Symbols returns the symbols in alphabet order.
func (s SymbolSet) Symbols() string {
	var buf strings.Builder

	for sym := range s.All() {
		buf.WriteByte(sym)
	}

	return buf.String()
}

func (s SymbolSet) String() string {
	return "{" + s.Symbols() + "}"
}
