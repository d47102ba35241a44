package tokenizer

import "unicode/utf16"

// The named character reference table lives in entityTrie (see
// entity_data.go, regenerated by scripts/gen_entity_data.py). Each
// node is a run of 16-bit words:
//
//	word 0              header: bits 15-14 hold the value length in
//	                    UTF-16 code units, bits 13-0 the branch count
//	words 1..v          the replacement text, UTF-16 code units
//	words v+1..v+b      branch key code units, sorted ascending
//	words v+b+1..v+2b   child node indices, one per key
//
// The root node sits at index 0 and never carries a value.

const (
	trieValueLengthShift = 14
	trieBranchCountMask  = 1<<trieValueLengthShift - 1
)

func trieValueLength(node int) int {
	return int(entityTrie[node] >> trieValueLengthShift)
}

func trieBranchCount(node int) int {
	return int(entityTrie[node] & trieBranchCountMask)
}

// trieValue decodes the replacement text stored on a node. Surrogate
// pairs in the stored UTF-16 units fold back to single code points.
func trieValue(node int) []rune {
	units := make([]uint16, trieValueLength(node))
	for i := range units {
		units[i] = entityTrie[node+1+i]
	}
	return utf16.Decode(units)
}

// determineBranch finds the child of node keyed by cp, or -1 on a
// miss. Entity names are ASCII, so any non-ASCII or sentinel code
// point misses immediately.
func determineBranch(node int, cp rune) int {
	if cp <= 0 || cp > 0x7F {
		return -1
	}
	keyStart := node + 1 + trieValueLength(node)
	lo, hi := 0, trieBranchCount(node)
	for lo < hi {
		mid := (lo + hi) / 2
		key := rune(entityTrie[keyStart+mid])
		switch {
		case key < cp:
			lo = mid + 1
		case key > cp:
			hi = mid
		default:
			return int(entityTrie[keyStart+trieBranchCount(node)+mid])
		}
	}
	return -1
}
