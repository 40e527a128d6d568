package alphatrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolSet(t *testing.T) {
	t.Parallel()

	tr, err := New[string]("tgca", WithLength(1))
	require.NoError(t, err)

	require.NoError(t, tr.Add("c", ""))
	require.NoError(t, tr.Add("T", ""))

	set := tr.NextSet("")

	assert.Equal(t, 2, set.Len())
	assert.False(t, set.IsEmpty())
	assert.True(t, set.Has('C'))
	assert.True(t, set.Has('t'))
	assert.False(t, set.Has('A'))
	assert.False(t, set.Has('N'))
	assert.Equal(t, "TC", set.Symbols(), "alphabet order is first-seen order")
	assert.Equal(t, "{TC}", set.String())

	var got []byte
	for sym := range set.All() {
		got = append(got, sym)
		break
	}
	assert.Equal(t, []byte("T"), got)
}

func TestSymbolSet_Zero(t *testing.T) {
	t.Parallel()

	var set SymbolSet

	assert.True(t, set.IsEmpty())
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Has('A'))
	assert.Equal(t, "", set.Symbols())
}
