package seq

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := New("aacctgangaa", "test")
	require.NoError(t, err)

	assert.Equal(t, "test", s.Name())
	assert.Equal(t, 11, s.Len())
	assert.Equal(t, "AACCTGANGAA", s.String())
	assert.Equal(t, ">test\nAACCTGANGAA\n", s.FASTA())
}

func TestNew_Unnamed(t *testing.T) {
	t.Parallel()

	s := MustNew("aacctgaga", "")

	assert.Empty(t, s.Name())
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, ">\nAACCTGAGA\n", s.FASTA())
	assert.Equal(t, ">\nTCTCAGGTT\n", s.RevCompFASTA())
}

func TestNew_InvalidBase(t *testing.T) {
	t.Parallel()

	_, err := New("acgxtu", "bad")

	require.ErrorIs(t, err, ErrInvalidBase)
	assert.Contains(t, err.Error(), "XU")
	assert.Panics(t, func() { MustNew("acgz", "") })
}

func TestGCContent(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Seq   string
		ExpGC float64
	}{
		{"aacctgangaa", 0.4},
		{"nnnnnnn", 0.0},
		{"aaaatttt", 0.0},
		{"cgcgcgcgcgcg", 1.0},
		{"ccgatgtcga", 0.6},
		{"", 0.0},
	} {
		tcase := tcase

		t.Run(tcase.Seq, func(t *testing.T) {
			assert.InDelta(t, tcase.ExpGC, MustNew(tcase.Seq, "").GCContent(), 1e-9)
		})
	}
}

func TestRevComp(t *testing.T) {
	t.Parallel()

	s := MustNew("aacctganga", "test rev")

	assert.Equal(t, "TCNTCAGGTT", s.RevComp())
	assert.Equal(t, ">Reverse complement of test rev\nTCNTCAGGTT\n", s.RevCompFASTA())

	assert.Equal(t, "", ReverseComplement(""))
	assert.Equal(t, "GACT", ReverseComplement("AGTC"))
	assert.Equal(t, "NA", ReverseComplement("T?"))
}

func TestSlice(t *testing.T) {
	t.Parallel()

	s := MustNew("aacctgaga", "test")

	sub := s.SliceFrom(5)
	assert.Equal(t, "test (5, 9)", sub.Name())
	assert.Equal(t, 4, sub.Len())
	assert.Equal(t, "GAGA", sub.String())

	for _, tcase := range []*struct {
		Sub      Sequence
		ExpFASTA string
	}{
		{s.Slice(1, 7), ">test (1, 7)\nACCTGA\n"},
		{s.Slice(-7, -2), ">test (2, 7)\nCCTGA\n"},
		{s.Slice(-7, -2).Slice(1, 3), ">test (3, 5)\nCT\n"},
		{s.SliceFrom(-7).Slice(1, 3), ">test (3, 5)\nCT\n"},
		{s.Slice(7, 100), ">test (7, 9)\nGA\n"},
		{s.Slice(20, 30), ">test (9, 9)\n\n"},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%#v", tcase.ExpFASTA), func(t *testing.T) {
			assert.Equal(t, tcase.ExpFASTA, tcase.Sub.FASTA())
		})
	}
}

func TestSlice_Annotated(t *testing.T) {
	t.Parallel()

	s := MustNew("ccggg", "Generated Sequence (10, 15)")

	assert.Equal(t, "Generated Sequence (12, 15)", s.Slice(2, 5).Name())
	assert.Equal(t, "Generated Sequence (13, 14)", s.Slice(2, 5).Slice(1, 2).Name())

	unnamed := MustNew("ccggg", "")
	assert.Empty(t, unnamed.Slice(1, 3).Name())
}
