package alphatrie

// Mode selects how a trie records the keys it holds.
type Mode uint8

const (
	Presence Mode = iota
	Occurrences
)

func (m Mode) String() string {
	switch m {
	case Presence:
		return "presence"
	case Occurrences:
		return "occurrences"
	default:
		return "unknown"
	}
}

type options struct {
	length  int
	bounded bool
	mode    Mode
}

// Option configures a Trie at construction.
type Option func(*options)

// WithLength fixes the length of every key. Without it keys may have any
// length and the trie never reports saturation.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
		o.bounded = true
	}
}

// WithOccurrences makes the trie keep an ordered metadata list per key.
func WithOccurrences() Option {
	return WithMode(Occurrences)
}

func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}
