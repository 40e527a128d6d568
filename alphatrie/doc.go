// Package alphatrie defines a fixed-depth trie over a small alphabet with
// saturation tracking and an optional per-key occurrence list.
//
// Every node keeps its children in a compact slice ordered by alphabet
// ordinal, addressed through a 64-bit bitmap:
//
//	alphabet: A C G T          bitmap: ....1101   children: [ A, G, T ]
//	ordinal:  0 1 2 3                     TGCA
//
// The slot of a child is the number of set bits below its ordinal, so an
// alphabet is limited to 64 symbols.
//
// A node is saturated when every key of its remaining length is present
// beneath it. Saturation is recomputed on insertion only at nodes whose
// bitmap covers the full alphabet and is cleared along the whole path on any
// deletion, so a cleared flag may under-report saturation until the subtree
// is filled again by later insertions.
//
// The occurrence store is chosen once per trie:
//
//   - Presence    - a key is either there or not;
//   - Occurrences - each key keeps an ordered list of metadata values,
//     duplicates allowed.
package alphatrie
