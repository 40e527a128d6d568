// Package seq defines an immutable nucleotide sequence value with a name that
// may carry a "(start, end)" coordinate annotation.
//
// Slicing a named sequence rewrites the annotation relative to the parent's
// own offset, so windows cut from "chr1 (100, 200)" keep absolute coordinates:
//
//	s := seq.MustNew("aacctgaga", "test")
//	s.Slice(5, 9).Name()            // "test (5, 9)"
//	s.Slice(2, 7).Slice(1, 3).Name() // "test (3, 5)"
package seq

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Alphabet lists every base a Sequence accepts.
	Alphabet = "ACGTN"
	// Definitive lists the unambiguous bases used as the index alphabet.
	Definitive = "ACGT"
)

var ErrInvalidBase = errors.New("seq: invalid base")

var (
	complement [256]byte
	valid      [256]bool

	coordRe = regexp.MustCompile(`(.*?)\s*\(([0-9]+), *[0-9]+\)`)
)

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'

	for i := 0; i < len(Alphabet); i++ {
		valid[Alphabet[i]] = true
	}
}

type Sequence struct {
	seq  string
	name string

	// stem and offset are parsed from name once so that slicing
	// long references window by window stays cheap
	stem   string
	offset int
}

// New validates and upper-cases s. The name is optional.
func New(s, name string) (Sequence, error) {
	s = strings.ToUpper(s)

	var bad []byte
	for i := 0; i < len(s); i++ {
		if !valid[s[i]] {
			bad = append(bad, s[i])
		}
	}
	if len(bad) > 0 {
		return Sequence{}, fmt.Errorf("%w: %q", ErrInvalidBase, bad)
	}

	return newSequence(s, name), nil
}

// MustNew is like New but panics on invalid input.
func MustNew(s, name string) Sequence {
	sq, err := New(s, name)
	if err != nil {
		panic(err)
	}
	return sq
}

func newSequence(s, name string) Sequence {
	sq := Sequence{seq: s, name: name, stem: name}

	if name != "" {
		if m := coordRe.FindStringSubmatch(name); m != nil {
			if off, err := strconv.Atoi(m[2]); err == nil {
				sq.stem = m[1]
				sq.offset = off
			}
		}
	}

	return sq
}

func (s Sequence) String() string { return s.seq }
func (s Sequence) Name() string   { return s.name }
func (s Sequence) Len() int       { return len(s.seq) }

// Slice returns the bases in [begin, end). Negative indices count from the
// end, out-of-range indices are clamped.
func (s Sequence) Slice(begin, end int) Sequence {
	n := len(s.seq)

	if end > n {
		end = n
	}
	if begin < 0 {
		begin += n
	}
	if end < 0 {
		end += n
	}
	if begin < 0 {
		begin = 0
	}
	if begin > n {
		begin = n
	}
	if end < begin {
		end = begin
	}

	var name string
	if s.name != "" {
		name = fmt.Sprintf("%s (%d, %d)", s.stem, begin+s.offset, end+s.offset)
	}

	sub := Sequence{seq: s.seq[begin:end], name: name}
	if name != "" {
		sub.stem = s.stem
		sub.offset = begin + s.offset
	}

	return sub
}

// SliceFrom is Slice(begin, Len()).
func (s Sequence) SliceFrom(begin int) Sequence {
	return s.Slice(begin, len(s.seq))
}

func (s Sequence) RevComp() string {
	return ReverseComplement(s.seq)
}

// ReverseComplement reverses s and complements every base. Bytes without a
// complement map to 'N'.
func ReverseComplement(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}

	return string(out)
}

// GCContent returns the fraction of G/C among the definitive bases, or 0 if
// there are none.
func (s Sequence) GCContent() float64 {
	var gc, total int

	for i := 0; i < len(s.seq); i++ {
		switch s.seq[i] {
		case 'G', 'C':
			gc++
			total++
		case 'A', 'T':
			total++
		}
	}
	if total == 0 {
		return 0
	}

	return float64(gc) / float64(total)
}

func (s Sequence) FASTA() string {
	return ">" + s.name + "\n" + s.seq + "\n"
}

func (s Sequence) RevCompFASTA() string {
	var header string
	if s.name != "" {
		header = "Reverse complement of " + s.name
	}
	return ">" + header + "\n" + s.RevComp() + "\n"
}
