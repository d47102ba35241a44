package tokenizer

import "strings"

// Location is the source span of a token. End fields are half-open:
// they point one past the last code point of the token. Offsets count
// code points of the normalized input stream.
type Location struct {
	StartLine   int
	StartCol    int
	StartOffset int
	EndLine     int
	EndCol      int
	EndOffset   int
}

// Attribute is a single name/value pair on a tag token. Namespace and
// Prefix are empty until a tree constructor adjusts the attribute for
// foreign content.
type Attribute struct {
	Name      string
	Value     string
	Namespace string
	Prefix    string
}

// TagToken is a start or end tag. The tokenizer lowercases TagName on
// ingest and interns it as TagID. AckSelfClosing is written by the tree
// constructor when it acknowledges the self-closing flag.
type TagToken struct {
	TagName        string
	TagID          TagID
	SelfClosing    bool
	AckSelfClosing bool
	Attrs          []Attribute
	Location       *Location
}

// Attr returns the value of the named attribute and whether it exists.
func (t *TagToken) Attr(name string) (string, bool) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			return t.Attrs[i].Value, true
		}
	}
	return "", false
}

// CommentToken carries comment (and bogus comment) data.
type CommentToken struct {
	Data     string
	Location *Location
}

// DoctypeToken is a doctype declaration. Name, PublicID and SystemID
// are nil when the declaration omitted them, which is distinct from
// their being present but empty.
type DoctypeToken struct {
	Name        *string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
	Location    *Location
}

// CharacterKind classifies a coalesced character run.
type CharacterKind uint8

const (
	CharacterKindCharacter CharacterKind = iota
	CharacterKindWhitespace
	CharacterKindNull
)

// CharacterToken is a maximal run of adjacent code points of one kind.
type CharacterToken struct {
	Kind     CharacterKind
	Chars    string
	Location *Location
}

// EOFToken terminates the stream.
type EOFToken struct {
	Location *Location
}

type tagKind uint8

const (
	startTag tagKind = iota
	endTag
)

// TokenBuilder is the scratch area for the token under construction.
// One builder is reused across tokens; Reset prepares it for the next
// one. The current attribute is staged in attrName/attrValue and only
// lands in attrs once the name turns out not to be a duplicate.
type TokenBuilder struct {
	curTagType  tagKind
	name        strings.Builder
	data        strings.Builder
	publicID    strings.Builder
	systemID    strings.Builder
	hasName     bool
	hasPublicID bool
	hasSystemID bool
	selfClosing bool
	forceQuirks bool

	attrs     []Attribute
	attrName  strings.Builder
	attrValue strings.Builder
	curAttr   int

	location               *Location
	characterReferenceCode int
}

// MakeTokenBuilder creates an empty builder.
func MakeTokenBuilder() *TokenBuilder {
	return &TokenBuilder{curAttr: -1}
}

// Reset clears all builders for the next token and records the token's
// start location (nil when location tracking is off).
func (t *TokenBuilder) Reset(loc *Location) {
	t.name.Reset()
	t.data.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.hasName = false
	t.hasPublicID = false
	t.hasSystemID = false
	t.selfClosing = false
	t.forceQuirks = false
	t.attrs = nil
	t.attrName.Reset()
	t.attrValue.Reset()
	t.curAttr = -1
	t.location = loc
}

// Location returns the location recorded at Reset.
func (t *TokenBuilder) Location() *Location {
	return t.location
}

// WriteName appends a character to the current tag or doctype name.
func (t *TokenBuilder) WriteName(r rune) {
	t.hasName = true
	t.name.WriteRune(r)
}

// Name returns the name built so far.
func (t *TokenBuilder) Name() string {
	return t.name.String()
}

// WriteData appends a character to the comment data.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteDataString appends a string to the comment data.
func (t *TokenBuilder) WriteDataString(s string) {
	t.data.WriteString(s)
}

// WritePublicIdentifierEmpty marks the public identifier as present
// with no content yet.
func (t *TokenBuilder) WritePublicIdentifierEmpty() {
	t.hasPublicID = true
}

// WritePublicIdentifier appends a character to the public identifier.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.hasPublicID = true
	t.publicID.WriteRune(r)
}

// WriteSystemIdentifierEmpty marks the system identifier as present
// with no content yet.
func (t *TokenBuilder) WriteSystemIdentifierEmpty() {
	t.hasSystemID = true
}

// WriteSystemIdentifier appends a character to the system identifier.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.hasSystemID = true
	t.systemID.WriteRune(r)
}

// EnableSelfClosing sets the self-closing flag.
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks sets the force-quirks flag.
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WriteAttributeName appends a character to the staged attribute name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attrName.WriteRune(r)
}

// WriteAttributeValue appends a character to the staged attribute
// value. Writes that follow a duplicate attribute name are staged and
// then discarded, which is what keeps the first occurrence's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attrValue.WriteRune(r)
}

// CommitAttributeName closes out the staged name. The attribute joins
// attrs unless the name is already taken; the return value reports
// whether it was a duplicate so the caller can raise the parse error.
func (t *TokenBuilder) CommitAttributeName() (duplicate bool) {
	name := t.attrName.String()
	t.attrName.Reset()
	for i := range t.attrs {
		if t.attrs[i].Name == name {
			t.curAttr = -1
			return true
		}
	}
	t.attrs = append(t.attrs, Attribute{Name: name})
	t.curAttr = len(t.attrs) - 1
	return false
}

// CommitAttributeValue moves the staged value onto the attribute that
// owns it, unless the owning name was a duplicate.
func (t *TokenBuilder) CommitAttributeValue() {
	if t.curAttr >= 0 {
		t.attrs[t.curAttr].Value = t.attrValue.String()
	}
	t.attrValue.Reset()
	t.curAttr = -1
}

// SetCharRef sets the numeric character reference accumulator.
func (t *TokenBuilder) SetCharRef(i int) {
	t.characterReferenceCode = i
}

// GetCharRef returns the numeric character reference accumulator.
func (t *TokenBuilder) GetCharRef() int {
	return t.characterReferenceCode
}

// AddToCharRef adds a digit value to the accumulator.
func (t *TokenBuilder) AddToCharRef(i int) {
	t.characterReferenceCode += i
}

// MultByCharRef scales the accumulator by the radix.
func (t *TokenBuilder) MultByCharRef(i int) {
	t.characterReferenceCode *= i
}

// StartTagToken builds the start tag from the current scratch.
func (t *TokenBuilder) StartTagToken() *TagToken {
	name := t.name.String()
	return &TagToken{
		TagName:     name,
		TagID:       GetTagID(name),
		SelfClosing: t.selfClosing,
		Attrs:       t.attrs,
		Location:    t.location,
	}
}

// EndTagToken builds the end tag from the current scratch.
func (t *TokenBuilder) EndTagToken() *TagToken {
	name := t.name.String()
	return &TagToken{
		TagName:     name,
		TagID:       GetTagID(name),
		SelfClosing: t.selfClosing,
		Attrs:       t.attrs,
		Location:    t.location,
	}
}

// CommentToken builds the comment from the current scratch.
func (t *TokenBuilder) CommentToken() *CommentToken {
	return &CommentToken{
		Data:     t.data.String(),
		Location: t.location,
	}
}

// DocTypeToken builds the doctype from the current scratch.
func (t *TokenBuilder) DocTypeToken() *DoctypeToken {
	tok := &DoctypeToken{
		ForceQuirks: t.forceQuirks,
		Location:    t.location,
	}
	if t.hasName {
		name := t.name.String()
		tok.Name = &name
	}
	if t.hasPublicID {
		id := t.publicID.String()
		tok.PublicID = &id
	}
	if t.hasSystemID {
		id := t.systemID.String()
		tok.SystemID = &id
	}
	return tok
}
