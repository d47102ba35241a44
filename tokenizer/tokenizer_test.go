package tokenizer

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// event is a deep copy of one handler callback, flat enough for
// cmp.Diff to produce readable failures.
type event struct {
	Kind        string
	Name        string
	Data        string
	Attrs       []Attribute
	SelfClosing bool
	ForceQuirks bool
	DoctypeName *string
	PublicID    *string
	SystemID    *string
	Code        ErrorCode
	Loc         *Location
}

// collector implements TokenHandler and optionally plays the part of a
// tree constructor: switching the tokenizer into text states after
// certain start tags, flipping the foreign-content flag, pausing, or
// splicing input mid-stream.
type collector struct {
	t      *Tokenizer
	events []event

	switchTextStates bool
	foreignOnTag     string
	pauseOnStartTag  bool
	insertOnStartTag string
}

func copyLoc(loc *Location) *Location {
	if loc == nil {
		return nil
	}
	c := *loc
	return &c
}

func (c *collector) OnStartTag(tok *TagToken) {
	c.events = append(c.events, event{
		Kind:        "StartTag",
		Name:        tok.TagName,
		Attrs:       append([]Attribute(nil), tok.Attrs...),
		SelfClosing: tok.SelfClosing,
		Loc:         copyLoc(tok.Location),
	})
	if c.switchTextStates {
		switch tok.TagID {
		case TagTitle, TagTextarea:
			c.t.State = StateRCData
		case TagStyle, TagXmp, TagIframe, TagNoembed, TagNoframes:
			c.t.State = StateRawText
		case TagScript:
			c.t.State = StateScriptData
		case TagPlaintext:
			c.t.State = StatePlaintext
		}
	}
	if c.foreignOnTag != "" && tok.TagName == c.foreignOnTag {
		c.t.InForeignNode = true
	}
	if c.pauseOnStartTag {
		c.t.Pause()
	}
	if c.insertOnStartTag != "" {
		chunk := c.insertOnStartTag
		c.insertOnStartTag = ""
		c.t.InsertHTMLAtCurrentPos(chunk)
	}
}

func (c *collector) OnEndTag(tok *TagToken) {
	c.events = append(c.events, event{
		Kind:        "EndTag",
		Name:        tok.TagName,
		Attrs:       append([]Attribute(nil), tok.Attrs...),
		SelfClosing: tok.SelfClosing,
		Loc:         copyLoc(tok.Location),
	})
}

func (c *collector) OnComment(tok *CommentToken) {
	c.events = append(c.events, event{Kind: "Comment", Data: tok.Data, Loc: copyLoc(tok.Location)})
}

func (c *collector) OnDoctype(tok *DoctypeToken) {
	c.events = append(c.events, event{
		Kind:        "Doctype",
		DoctypeName: tok.Name,
		PublicID:    tok.PublicID,
		SystemID:    tok.SystemID,
		ForceQuirks: tok.ForceQuirks,
		Loc:         copyLoc(tok.Location),
	})
}

func (c *collector) OnCharacter(tok *CharacterToken) {
	c.events = append(c.events, event{Kind: "Chars", Data: tok.Chars, Loc: copyLoc(tok.Location)})
}

func (c *collector) OnNullCharacter(tok *CharacterToken) {
	c.events = append(c.events, event{Kind: "Null", Data: tok.Chars, Loc: copyLoc(tok.Location)})
}

func (c *collector) OnWhitespaceCharacter(tok *CharacterToken) {
	c.events = append(c.events, event{Kind: "Space", Data: tok.Chars, Loc: copyLoc(tok.Location)})
}

func (c *collector) OnEOF(tok *EOFToken) {
	c.events = append(c.events, event{Kind: "EOF", Loc: copyLoc(tok.Location)})
}

func (c *collector) OnParseError(err *ParseError) {
	c.events = append(c.events, event{Kind: "Error", Code: err.Code, Loc: &Location{
		StartLine: err.StartLine, StartCol: err.StartCol, StartOffset: err.StartOffset,
		EndLine: err.EndLine, EndCol: err.EndCol, EndOffset: err.EndOffset,
	}})
}

// feed runs input through a fresh tokenizer in chunks of chunkSize
// code points (0 means a single chunk) and returns the collector.
func (c *collector) feed(t *testing.T, input string, chunkSize int, opts Options) *collector {
	t.Helper()
	c.t = NewTokenizer(opts, c)
	runes := []rune(input)
	if chunkSize <= 0 {
		chunkSize = len(runes) + 1
	}
	for {
		n := chunkSize
		if n >= len(runes) {
			n = len(runes)
		}
		require.NoError(t, c.t.Write(string(runes[:n]), n == len(runes)))
		if n == len(runes) {
			break
		}
		runes = runes[n:]
	}
	return c
}

// tokens filters out parse error events.
func (c *collector) tokens() []event {
	var out []event
	for _, ev := range c.events {
		if ev.Kind != "Error" {
			ev.Loc = nil
			out = append(out, ev)
		}
	}
	return out
}

// errCodes lists the parse error codes in report order.
func (c *collector) errCodes() []ErrorCode {
	var out []ErrorCode
	for _, ev := range c.events {
		if ev.Kind == "Error" {
			out = append(out, ev.Code)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }

type streamTestCase struct {
	name       string
	inHTML     string
	switchText bool
	foreignOn  string
	tokens     []event
	errs       []ErrorCode
}

var streamTests = []streamTestCase{
	{
		name:   "simple element",
		inHTML: `<p class="a">hi</p>`,
		tokens: []event{
			{Kind: "StartTag", Name: "p", Attrs: []Attribute{{Name: "class", Value: "a"}}},
			{Kind: "Chars", Data: "hi"},
			{Kind: "EndTag", Name: "p"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "comment",
		inHTML: `<!-- x -->`,
		tokens: []event{
			{Kind: "Comment", Data: " x "},
			{Kind: "EOF"},
		},
	},
	{
		name:   "uppercase tag and attribute fold",
		inHTML: `<DIV CLASS=Foo></DIV>`,
		tokens: []event{
			{Kind: "StartTag", Name: "div", Attrs: []Attribute{{Name: "class", Value: "Foo"}}},
			{Kind: "EndTag", Name: "div"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "self closing tag",
		inHTML: `<br/>`,
		tokens: []event{
			{Kind: "StartTag", Name: "br", SelfClosing: true},
			{Kind: "EOF"},
		},
	},
	{
		name:   "duplicate attribute first wins",
		inHTML: `<a x=1 x=2>`,
		tokens: []event{
			{Kind: "StartTag", Name: "a", Attrs: []Attribute{{Name: "x", Value: "1"}}},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrDuplicateAttribute},
	},
	{
		name:   "character references in data",
		inHTML: `&amp;&notin;&notit;`,
		tokens: []event{
			{Kind: "Chars", Data: "&∉¬it;"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrMissingSemicolonAfterCharacterReference},
	},
	{
		name:   "unknown named reference",
		inHTML: `&abcdef;`,
		tokens: []event{
			{Kind: "Chars", Data: "&abcdef;"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrUnknownNamedCharacterReference},
	},
	{
		name:   "legacy reference kept literal in attribute",
		inHTML: `<a href="?x&not=1">`,
		tokens: []event{
			{Kind: "StartTag", Name: "a", Attrs: []Attribute{{Name: "href", Value: "?x&not=1"}}},
			{Kind: "EOF"},
		},
	},
	{
		name:   "legacy reference decoded in attribute before non-alnum",
		inHTML: `<a href="?x&not.y">`,
		tokens: []event{
			{Kind: "StartTag", Name: "a", Attrs: []Attribute{{Name: "href", Value: "?x¬.y"}}},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrMissingSemicolonAfterCharacterReference},
	},
	{
		name:   "numeric references",
		inHTML: `&#x41;&#65;&#X6a;`,
		tokens: []event{
			{Kind: "Chars", Data: "AAj"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "numeric reference folding",
		inHTML: "&#0;&#x110000;&#xD800;&#x80;",
		tokens: []event{
			{Kind: "Chars", Data: "���€"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{
			ErrNullCharacterReference,
			ErrCharacterReferenceOutsideUnicodeRange,
			ErrSurrogateCharacterReference,
			ErrControlCharacterReference,
		},
	},
	{
		name:   "numeric reference without digits",
		inHTML: `&#;&#x;`,
		tokens: []event{
			{Kind: "Chars", Data: "&#;&#x;"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{
			ErrAbsenceOfDigitsInNumericCharacterReference,
			ErrAbsenceOfDigitsInNumericCharacterReference,
		},
	},
	{
		name:   "doctype",
		inHTML: `<!DOCTYPE html>`,
		tokens: []event{
			{Kind: "Doctype", DoctypeName: strPtr("html")},
			{Kind: "EOF"},
		},
	},
	{
		name:   "doctype with public and system identifiers",
		inHTML: `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		tokens: []event{
			{
				Kind:        "Doctype",
				DoctypeName: strPtr("html"),
				PublicID:    strPtr("-//W3C//DTD HTML 4.01//EN"),
				SystemID:    strPtr("http://www.w3.org/TR/html4/strict.dtd"),
			},
			{Kind: "EOF"},
		},
	},
	{
		name:   "doctype without name",
		inHTML: `<!DOCTYPE>`,
		tokens: []event{
			{Kind: "Doctype", ForceQuirks: true},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrMissingDoctypeName},
	},
	{
		name:   "doctype cut off by eof",
		inHTML: `<!DOCTYPE html`,
		tokens: []event{
			{Kind: "Doctype", DoctypeName: strPtr("html"), ForceQuirks: true},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrEOFInDoctype},
	},
	{
		name:       "script double escape",
		inHTML:     `<script><!--<script>x</script>--></script>`,
		switchText: true,
		tokens: []event{
			{Kind: "StartTag", Name: "script"},
			{Kind: "Chars", Data: "<!--<script>x</script>-->"},
			{Kind: "EndTag", Name: "script"},
			{Kind: "EOF"},
		},
	},
	{
		name:       "rcdata appropriate end tag",
		inHTML:     `<title>a</titlx>b</title>`,
		switchText: true,
		tokens: []event{
			{Kind: "StartTag", Name: "title"},
			{Kind: "Chars", Data: "a</titlx>b"},
			{Kind: "EndTag", Name: "title"},
			{Kind: "EOF"},
		},
	},
	{
		name:       "rawtext ignores markup",
		inHTML:     `<style><b>&amp;</style>`,
		switchText: true,
		tokens: []event{
			{Kind: "StartTag", Name: "style"},
			{Kind: "Chars", Data: "<b>&amp;"},
			{Kind: "EndTag", Name: "style"},
			{Kind: "EOF"},
		},
	},
	{
		name:      "cdata in foreign content",
		inHTML:    `<svg><![CDATA[a]]b]]></svg>`,
		foreignOn: "svg",
		tokens: []event{
			{Kind: "StartTag", Name: "svg"},
			{Kind: "Chars", Data: "a]]b"},
			{Kind: "EndTag", Name: "svg"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "cdata outside foreign content is a bogus comment",
		inHTML: `<![CDATA[a]]>`,
		tokens: []event{
			{Kind: "Comment", Data: "[CDATA[a]]"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrCDATAInHTMLContent},
	},
	{
		name:   "bogus comment from question mark",
		inHTML: `<?xml version="1.0"?>`,
		tokens: []event{
			{Kind: "Comment", Data: `?xml version="1.0"?`},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrUnexpectedQuestionMarkInsteadOfTagName},
	},
	{
		name:   "abrupt comment close",
		inHTML: `<!-->`,
		tokens: []event{
			{Kind: "Comment"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrAbruptClosingOfEmptyComment},
	},
	{
		name:   "incorrectly closed comment",
		inHTML: `<!--x--!>`,
		tokens: []event{
			{Kind: "Comment", Data: "x"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrIncorrectlyClosedComment},
	},
	{
		name:   "missing end tag name",
		inHTML: `a</>b`,
		tokens: []event{
			{Kind: "Chars", Data: "ab"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrMissingEndTagName},
	},
	{
		name:   "whitespace and character runs split by kind",
		inHTML: "a\nb",
		tokens: []event{
			{Kind: "Chars", Data: "a"},
			{Kind: "Space", Data: "\n"},
			{Kind: "Chars", Data: "b"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "null character in data",
		inHTML: "a\x00b",
		tokens: []event{
			{Kind: "Chars", Data: "a"},
			{Kind: "Null", Data: "\x00"},
			{Kind: "Chars", Data: "b"},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrUnexpectedNullCharacter},
	},
	{
		name:   "newline normalization",
		inHTML: "a\r\nb\rc",
		tokens: []event{
			{Kind: "Chars", Data: "a"},
			{Kind: "Space", Data: "\n"},
			{Kind: "Chars", Data: "b"},
			{Kind: "Space", Data: "\n"},
			{Kind: "Chars", Data: "c"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "eof inside tag drops the tag",
		inHTML: `<a href="x`,
		tokens: []event{
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrEOFInTag},
	},
	{
		name:   "end tag with attributes",
		inHTML: `</p x=1>`,
		tokens: []event{
			{Kind: "EndTag", Name: "p", Attrs: []Attribute{{Name: "x", Value: "1"}}},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrEndTagWithAttributes},
	},
	{
		name:   "missing attribute value",
		inHTML: `<a x=>`,
		tokens: []event{
			{Kind: "StartTag", Name: "a", Attrs: []Attribute{{Name: "x"}}},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrMissingAttributeValue},
	},
	{
		name:   "unquoted attribute value",
		inHTML: `<script src=123 onload=test></script>`,
		tokens: []event{
			{Kind: "StartTag", Name: "script", Attrs: []Attribute{
				{Name: "src", Value: "123"},
				{Name: "onload", Value: "test"},
			}},
			{Kind: "EndTag", Name: "script"},
			{Kind: "EOF"},
		},
	},
	{
		name:   "equals sign before attribute name",
		inHTML: `<script =src='123'>`,
		tokens: []event{
			{Kind: "StartTag", Name: "script", Attrs: []Attribute{{Name: "=src", Value: "123"}}},
			{Kind: "EOF"},
		},
		errs: []ErrorCode{ErrUnexpectedEqualsSignBeforeAttributeName},
	},
	{
		name:       "plaintext swallows the rest",
		inHTML:     `<plaintext></plaintext>x`,
		switchText: true,
		tokens: []event{
			{Kind: "StartTag", Name: "plaintext"},
			{Kind: "Chars", Data: "</plaintext>x"},
			{Kind: "EOF"},
		},
	},
}

func TestTokenStreams(t *testing.T) {
	for _, tt := range streamTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &collector{switchTextStates: tt.switchText, foreignOnTag: tt.foreignOn}
			c.feed(t, tt.inHTML, 0, Options{})
			if diff := cmp.Diff(tt.tokens, c.tokens()); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.errs, c.errCodes()); diff != "" {
				t.Errorf("parse error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestChunkInvariance feeds the same inputs in every small chunk size
// and expects the exact event stream of the single-chunk run,
// positions included.
func TestChunkInvariance(t *testing.T) {
	inputs := []streamTestCase{
		{inHTML: `<p class="a">hi</p>`},
		{inHTML: `<!-- x --><!DOCTYPE html>`},
		{inHTML: `&amp;&notin;&notit;`},
		{inHTML: `<script><!--<script>x</script>--></script>`, switchText: true},
		{inHTML: `<a href="?x&not=1">&#x41;&#0;`},
		{inHTML: "a\r\nb\rc<br/><![CDATA[x]]>"},
		{inHTML: `<title>a</titlx>b</title>`, switchText: true},
		{inHTML: `<!doctypehtml PUBLIC'x'  'y'>`},
		{inHTML: `&no&not&notin&notin;`},
	}
	for _, tt := range inputs {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			whole := &collector{switchTextStates: tt.switchText}
			whole.feed(t, tt.inHTML, 0, Options{SourceCodeLocationInfo: true})
			for _, size := range []int{1, 2, 3, 7} {
				chunked := &collector{switchTextStates: tt.switchText}
				chunked.feed(t, tt.inHTML, size, Options{SourceCodeLocationInfo: true})
				if diff := cmp.Diff(whole.events, chunked.events); diff != "" {
					t.Fatalf("chunk size %d diverged (-whole +chunked):\n%s", size, diff)
				}
			}
		})
	}
}

// TestCoalescing checks that adjacent character tokens never share a
// kind, regardless of how the input interleaves them.
func TestCoalescing(t *testing.T) {
	t.Parallel()
	c := &collector{}
	c.feed(t, "a b\tc  d&#32;e", 0, Options{})
	var prev string
	for _, ev := range c.events {
		switch ev.Kind {
		case "Chars", "Space", "Null":
			if ev.Kind == prev {
				t.Fatalf("adjacent character tokens share kind %s: %+v", ev.Kind, c.events)
			}
			prev = ev.Kind
		default:
			prev = ""
		}
	}
}

func TestSourceCodeLocations(t *testing.T) {
	t.Parallel()
	input := "a\nb<p class=\"x\">hi</p><!--c-->"
	c := &collector{}
	c.feed(t, input, 0, Options{SourceCodeLocationInfo: true})

	runes := []rune(input)
	reconstruct := func(loc *Location) string {
		return string(runes[loc.StartOffset:loc.EndOffset])
	}

	want := []struct {
		kind string
		src  string
		line int
		col  int
	}{
		{"Chars", "a", 1, 1},
		{"Space", "\n", 1, 2},
		{"Chars", "b", 2, 1},
		{"StartTag", `<p class="x">`, 2, 2},
		{"Chars", "hi", 2, 15},
		{"EndTag", "</p>", 2, 17},
		{"Comment", "<!--c-->", 2, 21},
	}
	require.GreaterOrEqual(t, len(c.events), len(want))
	for i, w := range want {
		ev := c.events[i]
		require.Equal(t, w.kind, ev.Kind, "event %d", i)
		require.NotNil(t, ev.Loc, "event %d", i)
		assert.Equal(t, w.src, reconstruct(ev.Loc), "event %d source", i)
		assert.Equal(t, w.line, ev.Loc.StartLine, "event %d line", i)
		assert.Equal(t, w.col, ev.Loc.StartCol, "event %d col", i)
		assert.LessOrEqual(t, ev.Loc.StartOffset, ev.Loc.EndOffset, "event %d offsets", i)
	}
	last := c.events[len(c.events)-1]
	require.Equal(t, "EOF", last.Kind)
	assert.Equal(t, len(runes), last.Loc.StartOffset)
}

func TestLocationsDisabled(t *testing.T) {
	t.Parallel()
	c := &collector{}
	c.feed(t, "<p>x\x00</p>", 0, Options{})
	for _, ev := range c.events {
		if ev.Kind == "Error" {
			// getError still reports positions.
			require.NotNil(t, ev.Loc)
			assert.Equal(t, 1, ev.Loc.StartLine)
			continue
		}
		assert.Nil(t, ev.Loc, "kind %s", ev.Kind)
	}
}

func TestInitialStates(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name         string
		state        State
		lastStartTag string
		inHTML       string
		tokens       []event
	}{
		{
			name:         "rcdata",
			state:        StateRCData,
			lastStartTag: "title",
			inHTML:       "x&amp;</title>",
			tokens: []event{
				{Kind: "Chars", Data: "x&"},
				{Kind: "EndTag", Name: "title"},
				{Kind: "EOF"},
			},
		},
		{
			name:         "rawtext does not decode references",
			state:        StateRawText,
			lastStartTag: "style",
			inHTML:       "x&amp;</style>",
			tokens: []event{
				{Kind: "Chars", Data: "x&amp;"},
				{Kind: "EndTag", Name: "style"},
				{Kind: "EOF"},
			},
		},
		{
			name:   "plaintext",
			state:  StatePlaintext,
			inHTML: "</plaintext>",
			tokens: []event{
				{Kind: "Chars", Data: "</plaintext>"},
				{Kind: "EOF"},
			},
		},
		{
			name:   "cdata",
			state:  StateCDATASection,
			inHTML: "x]]>y",
			tokens: []event{
				{Kind: "Chars", Data: "xy"},
				{Kind: "EOF"},
			},
		},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &collector{}
			c.t = NewTokenizer(Options{}, c)
			c.t.State = tt.state
			c.t.LastStartTagName = tt.lastStartTag
			require.NoError(t, c.t.Write(tt.inHTML, true))
			if diff := cmp.Diff(tt.tokens, c.tokens()); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPauseResume(t *testing.T) {
	t.Parallel()
	c := &collector{pauseOnStartTag: true}
	c.t = NewTokenizer(Options{}, c)
	require.NoError(t, c.t.Write("<p>rest</p>", true))

	// The handler paused the machine right after the start tag.
	require.Len(t, c.events, 1)
	require.Equal(t, "StartTag", c.events[0].Kind)

	c.pauseOnStartTag = false
	require.NoError(t, c.t.Resume())
	want := []event{
		{Kind: "StartTag", Name: "p"},
		{Kind: "Chars", Data: "rest"},
		{Kind: "EndTag", Name: "p"},
		{Kind: "EOF"},
	}
	if diff := cmp.Diff(want, c.tokens()); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}

	assert.Error(t, c.t.Resume(), "resume while not paused")
}

func TestWriteAfterLastChunk(t *testing.T) {
	t.Parallel()
	c := &collector{}
	c.t = NewTokenizer(Options{}, c)
	require.NoError(t, c.t.Write("x", true))
	assert.Error(t, c.t.Write("y", false))
}

func TestInsertHTMLAtCurrentPos(t *testing.T) {
	t.Parallel()
	c := &collector{insertOnStartTag: "<x>"}
	c.t = NewTokenizer(Options{}, c)
	require.NoError(t, c.t.Write("<div>after", true))
	want := []event{
		{Kind: "StartTag", Name: "div"},
		{Kind: "StartTag", Name: "x"},
		{Kind: "Chars", Data: "after"},
		{Kind: "EOF"},
	}
	if diff := cmp.Diff(want, c.tokens()); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

// TestHibernation drip-feeds a lookahead-heavy input one code point
// per write and watches the machine suspend instead of committing to
// partial tokens.
func TestHibernation(t *testing.T) {
	t.Parallel()
	input := `<!doctype html><title>t</title>`
	c := &collector{switchTextStates: true}
	c.t = NewTokenizer(Options{}, c)
	runes := []rune(input)
	for i, r := range runes {
		require.NoError(t, c.t.Write(string(r), i == len(runes)-1))
	}
	want := []event{
		{Kind: "Doctype", DoctypeName: strPtr("html")},
		{Kind: "StartTag", Name: "title"},
		{Kind: "Chars", Data: "t"},
		{Kind: "EndTag", Name: "title"},
		{Kind: "EOF"},
	}
	if diff := cmp.Diff(want, c.tokens()); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, c.errCodes())
}

func TestLastStartTagTracking(t *testing.T) {
	t.Parallel()
	c := &collector{switchTextStates: true}
	c.feed(t, "<textarea>a</textarea><title>b</title>", 0, Options{})
	var starts, ends []string
	for _, ev := range c.events {
		switch ev.Kind {
		case "StartTag":
			starts = append(starts, ev.Name)
		case "EndTag":
			ends = append(ends, ev.Name)
		}
	}
	require.Equal(t, starts, ends, "appropriate end tags mirror their start tags")
}

func TestDuplicateAttributePosition(t *testing.T) {
	t.Parallel()
	c := &collector{}
	c.feed(t, `<a x=1 x=2>`, 0, Options{})
	require.Equal(t, []ErrorCode{ErrDuplicateAttribute}, c.errCodes())
	for _, ev := range c.events {
		if ev.Kind == "Error" {
			// The error points at the second x, not the first.
			assert.Greater(t, ev.Loc.StartOffset, 6)
		}
	}
}

func TestStateStringer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "dataState", dataState.String())
	assert.Equal(t, "cdataSectionState", cdataSectionState.String())
	assert.Equal(t, "numericCharacterReferenceEndState", numericCharacterReferenceEndState.String())
	assert.Equal(t, State(68), cdataSectionState, "initial-state numbering is part of the contract")
	assert.Equal(t, State(0), dataState)
}

func TestTagInterning(t *testing.T) {
	t.Parallel()
	c := &collector{}
	c.t = NewTokenizer(Options{}, c)
	require.NoError(t, c.t.Write("<script></script><unknowntag>", true))
	// Re-run through events via the raw handler calls above is enough
	// for names; IDs are checked straight from the table.
	assert.Equal(t, TagScript, GetTagID("script"))
	assert.Equal(t, TagUnknown, GetTagID("unknowntag"))
	assert.Equal(t, TagHTML, GetTagID("html"))
}

func ExampleTokenizer() {
	h := &exampleHandler{}
	tok := NewTokenizer(Options{}, h)
	_ = tok.Write(`<p class="a">hi</p>`, true)
	// Output:
	// StartTag p [{class a  }]
	// Chars "hi"
	// EndTag p
	// EOF
}

type exampleHandler struct{}

func (exampleHandler) OnStartTag(t *TagToken)  { fmt.Println("StartTag", t.TagName, t.Attrs) }
func (exampleHandler) OnEndTag(t *TagToken)    { fmt.Println("EndTag", t.TagName) }
func (exampleHandler) OnComment(*CommentToken) {}
func (exampleHandler) OnDoctype(*DoctypeToken) {}
func (exampleHandler) OnCharacter(t *CharacterToken) {
	fmt.Printf("Chars %q\n", t.Chars)
}
func (exampleHandler) OnNullCharacter(*CharacterToken)       {}
func (exampleHandler) OnWhitespaceCharacter(*CharacterToken) {}
func (exampleHandler) OnEOF(*EOFToken)                       { fmt.Println("EOF") }
func (exampleHandler) OnParseError(*ParseError)              {}

// quick guard that the collector really is a TokenHandler
var _ TokenHandler = (*collector)(nil)
var _ TokenHandler = exampleHandler{}
