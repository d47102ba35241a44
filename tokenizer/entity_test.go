package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookupEntity walks the trie over a full name (without the leading
// ampersand) and returns the replacement text of a terminated match.
func lookupEntity(name string) (string, bool) {
	node := 0
	for _, r := range name {
		next := determineBranch(node, r)
		if next < 0 {
			return "", false
		}
		node = next
	}
	if trieValueLength(node) == 0 {
		return "", false
	}
	return string(trieValue(node)), true
}

func TestEntityTrieLookups(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"amp;", "&"},
		{"amp", "&"},
		{"AMP;", "&"},
		{"AMP", "&"},
		{"lt;", "<"},
		{"gt;", ">"},
		{"nbsp;", "\u00A0"},
		{"not", "¬"},
		{"notin;", "∉"},
		{"copy", "©"},
		{"zwnj;", "\u200C"},
		{"CounterClockwiseContourIntegral;", "∳"},
		// Astral value packed as a surrogate pair in the trie words.
		{"bopf;", "\U0001D553"},
		// Two-code-point replacements.
		{"acE;", "∾̳"},
		{"NotEqualTilde;", "≂̸"},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := lookupEntity(tt.name)
			require.True(t, ok, "expected %q to resolve", tt.name)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityTrieMisses(t *testing.T) {
	t.Parallel()
	for _, name := range []string{
		"amq;",
		"aMp;",   // case matters
		"notin",  // only the semicolon form exists
		"zwnj",   // likewise
		"AMP;x",  // walking past a terminal
		"1amp;",  // no name starts with a digit
		"",       // the root carries no value
	} {
		if got, ok := lookupEntity(name); ok {
			t.Errorf("lookupEntity(%q) unexpectedly resolved to %q", name, got)
		}
	}
}

func TestEntityTrieShape(t *testing.T) {
	t.Parallel()
	// Entity names start with one of the 52 ASCII letters.
	assert.Equal(t, 52, trieBranchCount(0))
	assert.Equal(t, 0, trieValueLength(0))

	// Sentinels and non-ASCII never branch.
	assert.Equal(t, -1, determineBranch(0, EOF))
	assert.Equal(t, -1, determineBranch(0, EndOfChunk))
	assert.Equal(t, -1, determineBranch(0, 0x2209))
	assert.Equal(t, -1, determineBranch(0, ';'))
}

// TestEntityTrieTotality walks every branch of the packed trie and
// checks the structural invariants the matcher depends on: headers
// stay in bounds, child indices point into the array, keys are sorted
// and every reachable terminal decodes to one or two code points.
func TestEntityTrieTotality(t *testing.T) {
	t.Parallel()
	var (
		names int
		walk  func(node int, prefix []rune)
	)
	seen := map[int]bool{}
	walk = func(node int, prefix []rune) {
		require.False(t, seen[node], "node %d reached twice (prefix %q)", node, string(prefix))
		seen[node] = true

		vl := trieValueLength(node)
		bc := trieBranchCount(node)
		require.LessOrEqual(t, vl, 2)
		require.Less(t, node+vl+2*bc, len(entityTrie))

		if vl > 0 {
			names++
			value := trieValue(node)
			require.NotEmpty(t, value)
			require.LessOrEqual(t, len(value), 2)
		} else {
			require.Greater(t, bc, 0, "valueless leaf at %q", string(prefix))
		}

		keyStart := node + 1 + vl
		prevKey := rune(-1)
		for i := 0; i < bc; i++ {
			key := rune(entityTrie[keyStart+i])
			require.Greater(t, key, prevKey, "keys sorted at %q", string(prefix))
			prevKey = key
			child := int(entityTrie[keyStart+bc+i])
			require.Equal(t, child, determineBranch(node, key))
			walk(child, append(prefix, key))
		}
	}
	walk(0, nil)
	assert.Equal(t, 2231, names, "every WHATWG named reference is reachable")
}

func TestTokenizerDecodesEntities(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"&bopf;", "\U0001D553"},
		{"&acE;", "∾̳"},
		{"&zwnj;x", "\u200Cx"},
		{"&CounterClockwiseContourIntegral;", "∳"},
		{"&lt;b&gt;", "<b>"},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c := &collector{}
			c.feed(t, tt.in, 0, Options{})
			var got string
			for _, ev := range c.events {
				switch ev.Kind {
				case "Chars", "Space", "Null":
					got += ev.Data
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
