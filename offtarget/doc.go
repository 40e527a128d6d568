// Package offtarget finds collisions ("off-targets") between fixed-length
// windows of query sequences and a set of reference sequences, and generates
// novel sequences whose windows stay within a collision budget.
//
// Windows are indexed in an alphatrie.Trie over the definitive bases with
// one occurrence per window, tagged with the window's coordinate-annotated
// name, e.g. "chr1 (120, 128)".
//
// With reverse complement enabled the index holds the reverse complement of
// every reference window while queries are matched as given, which finds
// windows that would anneal to the opposite strand.
package offtarget
