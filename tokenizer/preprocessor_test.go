package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreprocessor(errs *[]*ParseError) *Preprocessor {
	return MakePreprocessor(func(err *ParseError) {
		if errs != nil {
			*errs = append(*errs, err)
		}
	})
}

func TestPreprocessorAdvance(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("ab\nc", true)

	type step struct {
		cp     rune
		line   int
		col    int
		offset int
	}
	steps := []step{
		{'a', 1, 1, 0},
		{'b', 1, 2, 1},
		{'\n', 1, 3, 2},
		{'c', 2, 1, 3},
		{EOF, 2, 2, 4},
	}
	for i, s := range steps {
		cp := p.Advance()
		require.Equal(t, s.cp, cp, "step %d", i)
		assert.Equal(t, s.line, p.Line(), "step %d line", i)
		assert.Equal(t, s.col, p.Col(), "step %d col", i)
		assert.Equal(t, s.offset, p.Offset(), "step %d offset", i)
	}
}

func TestPreprocessorNewlineNormalization(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		chunks []string
		want   string
	}{
		{"crlf", []string{"a\r\nb"}, "a\nb"},
		{"lone cr", []string{"a\rb"}, "a\nb"},
		{"cr at end", []string{"a\r"}, "a\n"},
		{"crlf split across chunks", []string{"a\r", "\nb"}, "a\nb"},
		{"cr cr lf", []string{"a\r\r\nb"}, "a\n\nb"},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestPreprocessor(nil)
			for i, chunk := range tt.chunks {
				p.Write(chunk, i == len(tt.chunks)-1)
			}
			var got []rune
			for {
				cp := p.Advance()
				if cp == EOF {
					break
				}
				got = append(got, cp)
			}
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestPreprocessorEndOfChunk(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("a", false)

	require.Equal(t, 'a', p.Advance())
	require.Equal(t, EndOfChunk, p.Advance())
	require.True(t, p.endOfChunkHit)

	// The hibernating caller rewinds and retries after more input.
	p.Retreat(1)
	p.Write("b", true)
	require.Equal(t, 'b', p.Advance())
	require.Equal(t, EOF, p.Advance())
}

func TestPreprocessorRetreatAcrossNewline(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("a\nb\nc", true)
	for i := 0; i < 5; i++ {
		p.Advance()
	}
	require.Equal(t, 3, p.Line())
	require.Equal(t, 1, p.Col())

	p.Retreat(2)
	assert.Equal(t, 2, p.Line())
	assert.Equal(t, 1, p.Col())
	assert.Equal(t, 'b', p.html[p.pos])

	// Re-advancing gives back the exact same positions.
	assert.Equal(t, '\n', p.Advance())
	assert.Equal(t, 2, p.Line())
	assert.Equal(t, 'c', p.Advance())
	assert.Equal(t, 3, p.Line())
	assert.Equal(t, 1, p.Col())
}

func TestPreprocessorPeek(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("abc", false)
	require.Equal(t, 'a', p.Advance())
	assert.Equal(t, 'b', p.Peek(1))
	assert.Equal(t, 'c', p.Peek(2))
	assert.Equal(t, EndOfChunk, p.Peek(3))
	require.True(t, p.endOfChunkHit)

	p.Write("", true)
	assert.Equal(t, EOF, p.Peek(3))
}

func TestPreprocessorStartsWith(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("DocType html", true)
	p.Advance() // cursor on 'D'

	assert.True(t, p.StartsWith("doctype", false))
	assert.False(t, p.StartsWith("doctype", true))
	assert.True(t, p.StartsWith("DocType", true))
	assert.False(t, p.StartsWith("DocType html and more", true), "window shorter than pattern")
	assert.False(t, p.endOfChunkHit, "last chunk written, no hibernation request")
}

func TestPreprocessorStartsWithNeedsMoreInput(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("doc", false)
	p.Advance()
	assert.False(t, p.StartsWith("doctype", false))
	assert.True(t, p.endOfChunkHit, "short window with pending input requests hibernation")
}

func TestPreprocessorInsertHTMLAtCurrentPos(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("ab", true)
	require.Equal(t, 'a', p.Advance())
	p.InsertHTMLAtCurrentPos("XY")
	var rest []rune
	for {
		cp := p.Advance()
		if cp == EOF {
			break
		}
		rest = append(rest, cp)
	}
	assert.Equal(t, "XYb", string(rest))
}

func TestPreprocessorInputStreamErrors(t *testing.T) {
	t.Parallel()
	var errs []*ParseError
	p := newTestPreprocessor(&errs)
	p.Write("a\x01b\uFDD0", true)

	for p.Advance() != EOF {
	}
	require.Len(t, errs, 2)
	assert.Equal(t, ErrControlCharacterInInputStream, errs[0].Code)
	assert.Equal(t, 2, errs[0].StartCol)
	assert.Equal(t, ErrNoncharacterInInputStream, errs[1].Code)
	assert.Equal(t, 4, errs[1].StartCol)
}

func TestPreprocessorErrorsNotRepeatedAfterRetreat(t *testing.T) {
	t.Parallel()
	var errs []*ParseError
	p := newTestPreprocessor(&errs)
	p.Write("\x01", true)

	p.Advance()
	p.Retreat(1)
	p.Advance()
	assert.Len(t, errs, 1, "hibernation re-runs must not duplicate input errors")
}

func TestPreprocessorGetError(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("a\nbc", true)
	for i := 0; i < 4; i++ {
		p.Advance()
	}
	err := p.GetError(ErrUnexpectedNullCharacter)
	assert.Equal(t, ErrUnexpectedNullCharacter, err.Code)
	assert.Equal(t, 2, err.StartLine)
	assert.Equal(t, 2, err.StartCol)
	assert.Equal(t, 3, err.StartOffset)
	assert.Equal(t, err.StartOffset, err.EndOffset)
}

func TestPreprocessorDropParsedChunk(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("abc", true)
	p.Advance()
	p.DropParsedChunk()
	assert.Equal(t, 0, p.droppedBufferSize, "below the waterline nothing is dropped")

	big := strings.Repeat("x", bufferWaterline+2) + "yz"
	p = newTestPreprocessor(nil)
	p.Write(big, true)
	for i := 0; i < bufferWaterline+3; i++ {
		p.Advance()
	}
	offsetBefore := p.Offset()
	require.True(t, p.WillDropParsedChunk())
	p.DropParsedChunk()
	assert.Equal(t, offsetBefore, p.Offset(), "offsets survive compaction")
	assert.Equal(t, 'y', p.html[p.pos], "cursor code point retained")
	assert.Equal(t, 'z', p.Peek(1))
}

func TestPreprocessorRetreatPastPrefixPanics(t *testing.T) {
	t.Parallel()
	p := newTestPreprocessor(nil)
	p.Write("ab", true)
	p.Advance()
	assert.Panics(t, func() { p.Retreat(5) })
}
