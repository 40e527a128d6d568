package offtarget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-seqtrie/alphatrie"
	"github.com/aglyzov/go-seqtrie/seq"
)

func TestPopulate_NewIndex(t *testing.T) {
	t.Parallel()

	s := seq.MustNew("acgtac", "ref")

	idx, err := Populate(s, WithWindowLength(3), WithOccurrences())
	require.NoError(t, err)

	assert.Equal(t, alphatrie.Occurrences, idx.Mode())

	for key, exp := range map[string][]string{
		"ACG": {"ref (0, 3)"},
		"CGT": {"ref (1, 4)"},
		"GTA": {"ref (2, 5)"},
		"TAC": {"ref (3, 6)"},
		"AAA": nil,
	} {
		occ, err := idx.Lookup(key)
		require.NoError(t, err)
		assert.Equal(t, exp, occ, key)
	}
}

func TestPopulate_ReverseComplement(t *testing.T) {
	t.Parallel()

	s := seq.MustNew("aacg", "ref")

	idx, err := Populate(s, WithWindowLength(3), WithOccurrences(), WithReverseComplement())
	require.NoError(t, err)

	// AAC -> GTT, ACG -> CGT
	for key, exp := range map[string][]string{
		"GTT": {"ref (0, 3)"},
		"CGT": {"ref (1, 4)"},
		"AAC": nil,
	} {
		occ, err := idx.Lookup(key)
		require.NoError(t, err)
		assert.Equal(t, exp, occ, key)
	}
}

func TestPopulate_ExistingIndex(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex(2, alphatrie.Presence)
	require.NoError(t, err)

	out, err := Populate(seq.MustNew("acg", ""), WithIndex(idx))
	require.NoError(t, err)
	assert.Same(t, idx, out, "the given index is filled in place")

	for _, key := range []string{"AC", "CG"} {
		ok, err := idx.Has(key)
		require.NoError(t, err)
		assert.True(t, ok, key)
	}
}

func TestPopulate_ShortSequence(t *testing.T) {
	t.Parallel()

	idx, err := Populate(seq.MustNew("ac", "short"), WithWindowLength(3))
	require.NoError(t, err)
	assert.True(t, idx.IsEmpty())
}

func TestPopulate_Errors(t *testing.T) {
	t.Parallel()

	_, err := Populate(seq.MustNew("acgt", ""))
	assert.ErrorIs(t, err, ErrWindowLength)

	_, err = Populate(seq.MustNew("acgnt", "amb"), WithWindowLength(3))
	assert.ErrorIs(t, err, alphatrie.ErrInvalidSymbol)

	unbounded, err := alphatrie.New[string](seq.Definitive)
	require.NoError(t, err)

	_, err = Populate(seq.MustNew("acgt", ""), WithIndex(unbounded))
	assert.ErrorIs(t, err, ErrUnboundedIndex)
}
