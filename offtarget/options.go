package offtarget

import "log/slog"

type options struct {
	revComp       bool
	selfExclusion bool
	occurrences   bool
	windowLength  int
	index         *Index
	logger        *slog.Logger
}

// Option configures Populate, Find and Novel. Options that do not apply to
// a call are ignored.
type Option func(*options)

func newOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// WithReverseComplement indexes the reverse complement of every window.
// An index passed with WithIndex must have been populated the same way.
func WithReverseComplement() Option {
	return func(o *options) {
		o.revComp = true
	}
}

// WithIndex starts from an existing index. Populate adds to it in place,
// Find and Novel work on a copy.
func WithIndex(idx *Index) Option {
	return func(o *options) {
		o.index = idx
	}
}

// WithWindowLength sets the window length. It may be omitted when an index
// is given.
func WithWindowLength(n int) Option {
	return func(o *options) {
		o.windowLength = n
	}
}

// WithOccurrences makes an index created by Populate record every window
// name instead of just presence.
func WithOccurrences() Option {
	return func(o *options) {
		o.occurrences = true
	}
}

// WithSelfExclusion drops matches against the query window's own name, so a
// sequence that is also a reference does not report itself at the same
// location. It has no effect with reverse complement.
func WithSelfExclusion() Option {
	return func(o *options) {
		o.selfExclusion = true
	}
}

// WithLogger sets the logger, slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
