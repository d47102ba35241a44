package tokenizer

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Lookahead sequences matched through the preprocessor window.
const (
	seqDashDash   = "--"
	seqDoctype    = "doctype"
	seqCDATAStart = "[CDATA["
	seqScript     = "script"
	seqPublic     = "public"
	seqSystem     = "system"
)

// Tokenizer is the HTML tokenization state machine. It is push-driven:
// the caller feeds chunks through Write and tokens are delivered to
// the handler synchronously while the parsing loop runs. A single
// instance is not safe for concurrent use.
type Tokenizer struct {
	// Fields the tree constructor mutates between tokens, from inside
	// handler callbacks. Nothing else is part of that contract.
	State            State
	ReturnState      State
	InForeignNode    bool
	LastStartTagName string

	opts         Options
	handler      TokenHandler
	preprocessor *Preprocessor
	tokenBuilder *TokenBuilder

	paused bool
	inLoop bool
	active bool

	consumedAfterSnapshot int

	// Coalesced character run under construction.
	hasCurChar   bool
	curCharKind  CharacterKind
	curCharChars strings.Builder
	curCharLoc   *Location

	// Start location stashed for tokens created later than their first
	// code point (doctypes).
	currentLocation *Location
}

// NewTokenizer creates a tokenizer that reports tokens and parse
// errors to handler.
func NewTokenizer(opts Options, handler TokenHandler) *Tokenizer {
	t := &Tokenizer{
		opts:         opts,
		handler:      handler,
		tokenBuilder: MakeTokenBuilder(),
		active:       true,
	}
	t.preprocessor = MakePreprocessor(handler.OnParseError)
	return t
}

// Write feeds a chunk of input. isLast marks the end of the stream.
// The parsing loop runs until the input is exhausted, the machine
// hibernates awaiting another chunk, or a handler pauses it.
func (t *Tokenizer) Write(chunk string, isLast bool) error {
	if t.preprocessor.lastChunkWritten {
		return errors.New("tokenizer: write after the last chunk")
	}
	t.active = true
	t.preprocessor.Write(chunk, isLast)
	t.runParsingLoop()
	return nil
}

// InsertHTMLAtCurrentPos splices a chunk into the input immediately
// after the cursor and resumes tokenization, the document.write path.
func (t *Tokenizer) InsertHTMLAtCurrentPos(chunk string) {
	t.active = true
	t.preprocessor.InsertHTMLAtCurrentPos(chunk)
	t.runParsingLoop()
}

// Pause stops the parsing loop before the next state dispatch. Safe to
// call from inside a handler callback.
func (t *Tokenizer) Pause() {
	t.paused = true
}

// Resume restarts a paused tokenizer. When called from inside a
// handler callback the outer loop picks the work back up instead.
func (t *Tokenizer) Resume() error {
	if !t.paused {
		return errors.New("tokenizer: resume while not paused")
	}
	t.paused = false
	if t.inLoop {
		return nil
	}
	t.runParsingLoop()
	return nil
}

func (t *Tokenizer) runParsingLoop() {
	if t.inLoop {
		return
	}
	t.inLoop = true
	for t.active && !t.paused {
		t.consumedAfterSnapshot = 0
		cp := t.consume()
		if !t.ensureHibernation() {
			if logrus.IsLevelEnabled(logrus.TraceLevel) {
				logrus.Tracef("[TOKEN] cp: %q, mode: %s", cp, t.State)
			}
			t.callState(cp)
		}
	}
	t.inLoop = false
}

func (t *Tokenizer) consume() rune {
	t.consumedAfterSnapshot++
	return t.preprocessor.Advance()
}

func (t *Tokenizer) unconsume(n int) {
	t.consumedAfterSnapshot -= n
	t.preprocessor.Retreat(n)
}

func (t *Tokenizer) advanceBy(n int) {
	t.consumedAfterSnapshot += n
	for i := 0; i < n; i++ {
		t.preprocessor.Advance()
	}
}

// ensureHibernation rewinds everything consumed since the last state
// snapshot when the buffer ran dry mid-state, so the whole state
// re-runs once more input arrives. Partial chunks therefore never
// produce partial tokens, and lookaheads are safely retryable.
func (t *Tokenizer) ensureHibernation() bool {
	if !t.preprocessor.endOfChunkHit {
		return false
	}
	t.unconsume(t.consumedAfterSnapshot)
	t.active = false
	return true
}

func (t *Tokenizer) reconsumeInState(state State, cp rune) {
	t.State = state
	t.callState(cp)
}

func (t *Tokenizer) consumeSequenceIfMatch(pattern string, caseSensitive bool) bool {
	if !t.preprocessor.StartsWith(pattern, caseSensitive) {
		return false
	}
	t.advanceBy(len(pattern) - 1)
	return true
}

func (t *Tokenizer) err(code ErrorCode) {
	t.handler.OnParseError(t.preprocessor.GetError(code))
}

// getCurrentLocation builds a token start location offset code points
// behind the cursor, or nil when location tracking is off.
func (t *Tokenizer) getCurrentLocation(offset int) *Location {
	if !t.opts.SourceCodeLocationInfo {
		return nil
	}
	return &Location{
		StartLine:   t.preprocessor.Line(),
		StartCol:    t.preprocessor.Col() - offset,
		StartOffset: t.preprocessor.Offset() - offset,
		EndLine:     -1,
		EndCol:      -1,
		EndOffset:   -1,
	}
}

// prepareToken flushes the pending character run (its end is the new
// token's start) and stamps the new token's end position. delta is 1
// when the cursor still sits on the closing delimiter and 0 on EOF
// paths, keeping end positions half-open either way.
func (t *Tokenizer) prepareToken(loc *Location, delta int) {
	t.emitCurrentCharacterToken(loc)
	if loc != nil {
		loc.EndLine = t.preprocessor.Line()
		loc.EndCol = t.preprocessor.Col() + delta
		loc.EndOffset = t.preprocessor.Offset() + delta
	}
}

func (t *Tokenizer) emitCurrentTagToken() {
	switch t.tokenBuilder.curTagType {
	case startTag:
		token := t.tokenBuilder.StartTagToken()
		t.prepareToken(token.Location, 1)
		t.LastStartTagName = token.TagName
		t.handler.OnStartTag(token)
	case endTag:
		token := t.tokenBuilder.EndTagToken()
		t.prepareToken(token.Location, 1)
		if len(token.Attrs) > 0 {
			t.err(ErrEndTagWithAttributes)
		}
		if token.SelfClosing {
			t.err(ErrEndTagWithTrailingSolidus)
		}
		t.handler.OnEndTag(token)
	}
	t.preprocessor.DropParsedChunk()
}

func (t *Tokenizer) emitCurrentComment(delta int) {
	token := t.tokenBuilder.CommentToken()
	t.prepareToken(token.Location, delta)
	t.handler.OnComment(token)
	t.preprocessor.DropParsedChunk()
}

func (t *Tokenizer) emitCurrentDoctype(delta int) {
	token := t.tokenBuilder.DocTypeToken()
	t.prepareToken(token.Location, delta)
	t.handler.OnDoctype(token)
	t.preprocessor.DropParsedChunk()
}

func (t *Tokenizer) emitEOFToken() {
	loc := t.getCurrentLocation(0)
	if loc != nil {
		loc.EndLine = loc.StartLine
		loc.EndCol = loc.StartCol
		loc.EndOffset = loc.StartOffset
	}
	t.emitCurrentCharacterToken(loc)
	t.handler.OnEOF(&EOFToken{Location: loc})
	t.active = false
}

// emitCurrentCharacterToken flushes the pending character run. next
// carries the start position of whatever comes after the run; it
// becomes the run's half-open end.
func (t *Tokenizer) emitCurrentCharacterToken(next *Location) {
	if !t.hasCurChar {
		return
	}
	token := &CharacterToken{
		Kind:     t.curCharKind,
		Chars:    t.curCharChars.String(),
		Location: t.curCharLoc,
	}
	if token.Location != nil && next != nil {
		token.Location.EndLine = next.StartLine
		token.Location.EndCol = next.StartCol
		token.Location.EndOffset = next.StartOffset
	}
	switch token.Kind {
	case CharacterKindWhitespace:
		t.handler.OnWhitespaceCharacter(token)
	case CharacterKindNull:
		t.handler.OnNullCharacter(token)
	default:
		t.handler.OnCharacter(token)
	}
	t.hasCurChar = false
	t.curCharChars.Reset()
	t.curCharLoc = nil
}

func (t *Tokenizer) appendCharToCurrentCharacterToken(kind CharacterKind, s string) {
	if t.hasCurChar && t.curCharKind != kind {
		t.emitCurrentCharacterToken(t.getCurrentLocation(0))
		t.preprocessor.DropParsedChunk()
	}
	if !t.hasCurChar {
		t.hasCurChar = true
		t.curCharKind = kind
		t.curCharLoc = t.getCurrentLocation(0)
	}
	t.curCharChars.WriteString(s)
}

func (t *Tokenizer) emitCodePoint(cp rune) {
	kind := CharacterKindCharacter
	if isWhitespace(cp) {
		kind = CharacterKindWhitespace
	} else if cp == '\u0000' {
		kind = CharacterKindNull
	}
	t.appendCharToCurrentCharacterToken(kind, string(cp))
}

func (t *Tokenizer) emitChars(s string) {
	t.appendCharToCurrentCharacterToken(CharacterKindCharacter, s)
}

func wasConsumedByAttribute(returnState State) bool {
	switch returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// flushCodePointConsumedAsCharacterReference routes decoded reference
// output either into the current attribute value or the character run,
// depending on where the reference started.
func (t *Tokenizer) flushCodePointConsumedAsCharacterReference(cp rune) {
	if wasConsumedByAttribute(t.ReturnState) {
		t.tokenBuilder.WriteAttributeValue(cp)
	} else {
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) createStartTagToken() {
	t.tokenBuilder.Reset(t.getCurrentLocation(1))
	t.tokenBuilder.curTagType = startTag
}

func (t *Tokenizer) createEndTagToken() {
	t.tokenBuilder.Reset(t.getCurrentLocation(2))
	t.tokenBuilder.curTagType = endTag
}

func (t *Tokenizer) createCommentToken(offset int) {
	t.tokenBuilder.Reset(t.getCurrentLocation(offset))
}

func (t *Tokenizer) createDoctypeToken() {
	t.tokenBuilder.Reset(t.currentLocation)
}

// handleSpecialEndTag implements the appropriate-end-tag check for the
// RCDATA, RAWTEXT and script data families: after `</`, the window
// must spell lastStartTagName case-insensitively and be followed by
// whitespace, `/` or `>`. On a match the buffer advances past the name
// so the delimiter becomes the current code point; otherwise the state
// is returned unchanged and the caller falls back to literal text.
func (t *Tokenizer) handleSpecialEndTag(_ rune) State {
	if !t.preprocessor.StartsWith(t.LastStartTagName, false) {
		return t.State
	}
	t.createEndTagToken()
	for _, r := range t.LastStartTagName {
		t.tokenBuilder.WriteName(r)
	}
	switch t.preprocessor.Peek(len(t.LastStartTagName)) {
	case '\t', '\n', '\f', ' ':
		t.advanceBy(len(t.LastStartTagName))
		return beforeAttributeNameState
	case '/':
		t.advanceBy(len(t.LastStartTagName))
		return selfClosingStartTagState
	case '>':
		t.advanceBy(len(t.LastStartTagName))
		t.emitCurrentTagToken()
		return dataState
	default:
		return t.State
	}
}

// matchNamedCharacterReference walks the packed trie starting from the
// code point right after `&`. It returns the replacement code points
// of the longest terminated name, or nil on a miss, plus whether the
// match lacked its closing semicolon. The cursor ends up just past the
// matched name; on a miss, or when the legacy attribute rule keeps the
// text literal, everything including the entry code point is rewound.
func (t *Tokenizer) matchNamedCharacterReference(cp rune) ([]rune, bool) {
	var matched []rune
	node := 0
	total := 1
	lastMatchTotal := 0
	withoutSemicolon := false

	for {
		next := determineBranch(node, cp)
		if next < 0 {
			break
		}
		node = next
		if trieValueLength(node) > 0 {
			matched = trieValue(node)
			withoutSemicolon = cp != ';'
			lastMatchTotal = total
			if trieBranchCount(node) == 0 {
				break
			}
		}
		cp = t.consume()
		total++
	}

	if matched == nil {
		t.unconsume(total)
		return nil, false
	}
	t.unconsume(total - lastMatchTotal)

	if withoutSemicolon && wasConsumedByAttribute(t.ReturnState) &&
		isEntityInAttributeInvalidEnd(t.preprocessor.Peek(1)) {
		// Historical quirk: `&param=1` inside an attribute stays
		// literal so query strings survive. Rewind to just after the
		// ampersand and let the name re-run as attribute text.
		t.unconsume(lastMatchTotal)
		return []rune{'&'}, false
	}
	return matched, withoutSemicolon
}

func isEntityInAttributeInvalidEnd(cp rune) bool {
	return cp == '=' || isASCIIAlphaNumeric(cp)
}

// callState dispatches one code point to the current state. The dense
// switch keeps dispatch a computed jump instead of a per-step
// indirect call.
func (t *Tokenizer) callState(cp rune) {
	switch t.State {
	case dataState:
		t.stateData(cp)
	case rcDataState:
		t.stateRCData(cp)
	case rawTextState:
		t.stateRawText(cp)
	case scriptDataState:
		t.stateScriptData(cp)
	case plaintextState:
		t.statePlaintext(cp)
	case tagOpenState:
		t.stateTagOpen(cp)
	case endTagOpenState:
		t.stateEndTagOpen(cp)
	case tagNameState:
		t.stateTagName(cp)
	case rcDataLessThanSignState:
		t.stateRCDataLessThanSign(cp)
	case rcDataEndTagOpenState:
		t.stateRCDataEndTagOpen(cp)
	case rcDataEndTagNameState:
		t.stateRCDataEndTagName(cp)
	case rawTextLessThanSignState:
		t.stateRawTextLessThanSign(cp)
	case rawTextEndTagOpenState:
		t.stateRawTextEndTagOpen(cp)
	case rawTextEndTagNameState:
		t.stateRawTextEndTagName(cp)
	case scriptDataLessThanSignState:
		t.stateScriptDataLessThanSign(cp)
	case scriptDataEndTagOpenState:
		t.stateScriptDataEndTagOpen(cp)
	case scriptDataEndTagNameState:
		t.stateScriptDataEndTagName(cp)
	case scriptDataEscapeStartState:
		t.stateScriptDataEscapeStart(cp)
	case scriptDataEscapeStartDashState:
		t.stateScriptDataEscapeStartDash(cp)
	case scriptDataEscapedState:
		t.stateScriptDataEscaped(cp)
	case scriptDataEscapedDashState:
		t.stateScriptDataEscapedDash(cp)
	case scriptDataEscapedDashDashState:
		t.stateScriptDataEscapedDashDash(cp)
	case scriptDataEscapedLessThanSignState:
		t.stateScriptDataEscapedLessThanSign(cp)
	case scriptDataEscapedEndTagOpenState:
		t.stateScriptDataEscapedEndTagOpen(cp)
	case scriptDataEscapedEndTagNameState:
		t.stateScriptDataEscapedEndTagName(cp)
	case scriptDataDoubleEscapeStartState:
		t.stateScriptDataDoubleEscapeStart(cp)
	case scriptDataDoubleEscapedState:
		t.stateScriptDataDoubleEscaped(cp)
	case scriptDataDoubleEscapedDashState:
		t.stateScriptDataDoubleEscapedDash(cp)
	case scriptDataDoubleEscapedDashDashState:
		t.stateScriptDataDoubleEscapedDashDash(cp)
	case scriptDataDoubleEscapedLessThanSignState:
		t.stateScriptDataDoubleEscapedLessThanSign(cp)
	case scriptDataDoubleEscapeEndState:
		t.stateScriptDataDoubleEscapeEnd(cp)
	case beforeAttributeNameState:
		t.stateBeforeAttributeName(cp)
	case attributeNameState:
		t.stateAttributeName(cp)
	case afterAttributeNameState:
		t.stateAfterAttributeName(cp)
	case beforeAttributeValueState:
		t.stateBeforeAttributeValue(cp)
	case attributeValueDoubleQuotedState:
		t.stateAttributeValueDoubleQuoted(cp)
	case attributeValueSingleQuotedState:
		t.stateAttributeValueSingleQuoted(cp)
	case attributeValueUnquotedState:
		t.stateAttributeValueUnquoted(cp)
	case afterAttributeValueQuotedState:
		t.stateAfterAttributeValueQuoted(cp)
	case selfClosingStartTagState:
		t.stateSelfClosingStartTag(cp)
	case bogusCommentState:
		t.stateBogusComment(cp)
	case markupDeclarationOpenState:
		t.stateMarkupDeclarationOpen(cp)
	case commentStartState:
		t.stateCommentStart(cp)
	case commentStartDashState:
		t.stateCommentStartDash(cp)
	case commentState:
		t.stateComment(cp)
	case commentLessThanSignState:
		t.stateCommentLessThanSign(cp)
	case commentLessThanSignBangState:
		t.stateCommentLessThanSignBang(cp)
	case commentLessThanSignBangDashState:
		t.stateCommentLessThanSignBangDash(cp)
	case commentLessThanSignBangDashDashState:
		t.stateCommentLessThanSignBangDashDash(cp)
	case commentEndDashState:
		t.stateCommentEndDash(cp)
	case commentEndState:
		t.stateCommentEnd(cp)
	case commentEndBangState:
		t.stateCommentEndBang(cp)
	case doctypeState:
		t.stateDoctype(cp)
	case beforeDoctypeNameState:
		t.stateBeforeDoctypeName(cp)
	case doctypeNameState:
		t.stateDoctypeName(cp)
	case afterDoctypeNameState:
		t.stateAfterDoctypeName(cp)
	case afterDoctypePublicKeywordState:
		t.stateAfterDoctypePublicKeyword(cp)
	case beforeDoctypePublicIdentifierState:
		t.stateBeforeDoctypePublicIdentifier(cp)
	case doctypePublicIdentifierDoubleQuotedState:
		t.stateDoctypePublicIdentifierDoubleQuoted(cp)
	case doctypePublicIdentifierSingleQuotedState:
		t.stateDoctypePublicIdentifierSingleQuoted(cp)
	case afterDoctypePublicIdentifierState:
		t.stateAfterDoctypePublicIdentifier(cp)
	case betweenDoctypePublicAndSystemIdentifiersState:
		t.stateBetweenDoctypePublicAndSystemIdentifiers(cp)
	case afterDoctypeSystemKeywordState:
		t.stateAfterDoctypeSystemKeyword(cp)
	case beforeDoctypeSystemIdentifierState:
		t.stateBeforeDoctypeSystemIdentifier(cp)
	case doctypeSystemIdentifierDoubleQuotedState:
		t.stateDoctypeSystemIdentifierDoubleQuoted(cp)
	case doctypeSystemIdentifierSingleQuotedState:
		t.stateDoctypeSystemIdentifierSingleQuoted(cp)
	case afterDoctypeSystemIdentifierState:
		t.stateAfterDoctypeSystemIdentifier(cp)
	case bogusDoctypeState:
		t.stateBogusDoctype(cp)
	case cdataSectionState:
		t.stateCDATASection(cp)
	case cdataSectionBracketState:
		t.stateCDATASectionBracket(cp)
	case cdataSectionEndState:
		t.stateCDATASectionEnd(cp)
	case characterReferenceState:
		t.stateCharacterReference(cp)
	case namedCharacterReferenceState:
		t.stateNamedCharacterReference(cp)
	case ambiguousAmpersandState:
		t.stateAmbiguousAmpersand(cp)
	case numericCharacterReferenceState:
		t.stateNumericCharacterReference(cp)
	case hexadecimalCharacterReferenceStartState:
		t.stateHexadecimalCharacterReferenceStart(cp)
	case hexadecimalCharacterReferenceState:
		t.stateHexadecimalCharacterReference(cp)
	case decimalCharacterReferenceState:
		t.stateDecimalCharacterReference(cp)
	case numericCharacterReferenceEndState:
		t.stateNumericCharacterReferenceEnd(cp)
	default:
		panic(errors.Errorf("tokenizer: unreachable state %d", t.State))
	}
}

func (t *Tokenizer) stateData(cp rune) {
	switch cp {
	case '<':
		t.State = tagOpenState
	case '&':
		t.ReturnState = dataState
		t.State = characterReferenceState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(cp)
	case EOF:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateRCData(cp rune) {
	switch cp {
	case '&':
		t.ReturnState = rcDataState
		t.State = characterReferenceState
	case '<':
		t.State = rcDataLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
	case EOF:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateRawText(cp rune) {
	switch cp {
	case '<':
		t.State = rawTextLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
	case EOF:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateScriptData(cp rune) {
	switch cp {
	case '<':
		t.State = scriptDataLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
	case EOF:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) statePlaintext(cp rune) {
	switch cp {
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
	case EOF:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateTagOpen(cp rune) {
	switch {
	case cp == '!':
		t.State = markupDeclarationOpenState
	case cp == '/':
		t.State = endTagOpenState
	case isASCIILetter(cp):
		t.createStartTagToken()
		t.State = tagNameState
		t.stateTagName(cp)
	case cp == '?':
		t.err(ErrUnexpectedQuestionMarkInsteadOfTagName)
		t.createCommentToken(1)
		t.State = bogusCommentState
		t.stateBogusComment(cp)
	case cp == EOF:
		t.err(ErrEOFBeforeTagName)
		t.emitChars("<")
		t.emitEOFToken()
	default:
		t.err(ErrInvalidFirstCharacterOfTagName)
		t.emitChars("<")
		t.reconsumeInState(dataState, cp)
	}
}

func (t *Tokenizer) stateEndTagOpen(cp rune) {
	switch {
	case isASCIILetter(cp):
		t.createEndTagToken()
		t.State = tagNameState
		t.stateTagName(cp)
	case cp == '>':
		t.err(ErrMissingEndTagName)
		t.State = dataState
	case cp == EOF:
		t.err(ErrEOFBeforeTagName)
		t.emitChars("</")
		t.emitEOFToken()
	default:
		t.err(ErrInvalidFirstCharacterOfTagName)
		t.createCommentToken(2)
		t.State = bogusCommentState
		t.stateBogusComment(cp)
	}
}

func (t *Tokenizer) stateTagName(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = beforeAttributeNameState
	case cp == '/':
		t.State = selfClosingStartTagState
	case cp == '>':
		t.State = dataState
		t.emitCurrentTagToken()
	case isASCIIUpper(cp):
		t.tokenBuilder.WriteName(toASCIILower(cp))
	case cp == '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteName('\uFFFD')
	case cp == EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteName(cp)
	}
}

func (t *Tokenizer) stateRCDataLessThanSign(cp rune) {
	if cp == '/' {
		t.State = rcDataEndTagOpenState
	} else {
		t.emitChars("<")
		t.reconsumeInState(rcDataState, cp)
	}
}

func (t *Tokenizer) stateRCDataEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.State = rcDataEndTagNameState
		t.stateRCDataEndTagName(cp)
	} else {
		t.emitChars("</")
		t.reconsumeInState(rcDataState, cp)
	}
}

func (t *Tokenizer) stateRCDataEndTagName(cp rune) {
	next := t.handleSpecialEndTag(cp)
	if t.ensureHibernation() {
		return
	}
	if next == t.State {
		t.emitChars("</")
		t.reconsumeInState(rcDataState, cp)
		return
	}
	t.State = next
}

func (t *Tokenizer) stateRawTextLessThanSign(cp rune) {
	if cp == '/' {
		t.State = rawTextEndTagOpenState
	} else {
		t.emitChars("<")
		t.reconsumeInState(rawTextState, cp)
	}
}

func (t *Tokenizer) stateRawTextEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.State = rawTextEndTagNameState
		t.stateRawTextEndTagName(cp)
	} else {
		t.emitChars("</")
		t.reconsumeInState(rawTextState, cp)
	}
}

func (t *Tokenizer) stateRawTextEndTagName(cp rune) {
	next := t.handleSpecialEndTag(cp)
	if t.ensureHibernation() {
		return
	}
	if next == t.State {
		t.emitChars("</")
		t.reconsumeInState(rawTextState, cp)
		return
	}
	t.State = next
}

func (t *Tokenizer) stateScriptDataLessThanSign(cp rune) {
	switch {
	case cp == '/':
		t.State = scriptDataEndTagOpenState
	case cp == '!':
		t.emitChars("<!")
		t.State = scriptDataEscapeStartState
	default:
		t.emitChars("<")
		t.reconsumeInState(scriptDataState, cp)
	}
}

func (t *Tokenizer) stateScriptDataEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.State = scriptDataEndTagNameState
		t.stateScriptDataEndTagName(cp)
	} else {
		t.emitChars("</")
		t.reconsumeInState(scriptDataState, cp)
	}
}

func (t *Tokenizer) stateScriptDataEndTagName(cp rune) {
	next := t.handleSpecialEndTag(cp)
	if t.ensureHibernation() {
		return
	}
	if next == t.State {
		t.emitChars("</")
		t.reconsumeInState(scriptDataState, cp)
		return
	}
	t.State = next
}

func (t *Tokenizer) stateScriptDataEscapeStart(cp rune) {
	if cp == '-' {
		t.emitChars("-")
		t.State = scriptDataEscapeStartDashState
	} else {
		t.reconsumeInState(scriptDataState, cp)
	}
}

func (t *Tokenizer) stateScriptDataEscapeStartDash(cp rune) {
	if cp == '-' {
		t.emitChars("-")
		t.State = scriptDataEscapedDashDashState
	} else {
		t.reconsumeInState(scriptDataState, cp)
	}
}

func (t *Tokenizer) stateScriptDataEscaped(cp rune) {
	switch cp {
	case '-':
		t.emitChars("-")
		t.State = scriptDataEscapedDashState
	case '<':
		t.State = scriptDataEscapedLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
	case EOF:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateScriptDataEscapedDash(cp rune) {
	switch cp {
	case '-':
		t.emitChars("-")
		t.State = scriptDataEscapedDashDashState
	case '<':
		t.State = scriptDataEscapedLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
		t.State = scriptDataEscapedState
	case EOF:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = scriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedDashDash(cp rune) {
	switch cp {
	case '-':
		t.emitChars("-")
	case '<':
		t.State = scriptDataEscapedLessThanSignState
	case '>':
		t.emitChars(">")
		t.State = scriptDataState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
		t.State = scriptDataEscapedState
	case EOF:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = scriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedLessThanSign(cp rune) {
	switch {
	case cp == '/':
		t.State = scriptDataEscapedEndTagOpenState
	case isASCIILetter(cp):
		t.emitChars("<")
		t.State = scriptDataDoubleEscapeStartState
		t.stateScriptDataDoubleEscapeStart(cp)
	default:
		t.emitChars("<")
		t.reconsumeInState(scriptDataEscapedState, cp)
	}
}

func (t *Tokenizer) stateScriptDataEscapedEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.State = scriptDataEscapedEndTagNameState
		t.stateScriptDataEscapedEndTagName(cp)
	} else {
		t.emitChars("</")
		t.reconsumeInState(scriptDataEscapedState, cp)
	}
}

func (t *Tokenizer) stateScriptDataEscapedEndTagName(cp rune) {
	next := t.handleSpecialEndTag(cp)
	if t.ensureHibernation() {
		return
	}
	if next == t.State {
		t.emitChars("</")
		t.reconsumeInState(scriptDataEscapedState, cp)
		return
	}
	t.State = next
}

func (t *Tokenizer) stateScriptDataDoubleEscapeStart(cp rune) {
	if t.preprocessor.StartsWith(seqScript, false) &&
		isScriptDataDoubleEscapeSequenceEnd(t.preprocessor.Peek(len(seqScript))) {
		t.emitCodePoint(cp)
		for i := 0; i < len(seqScript)-1; i++ {
			t.emitCodePoint(t.consume())
		}
		t.State = scriptDataDoubleEscapedState
	} else if !t.ensureHibernation() {
		t.reconsumeInState(scriptDataEscapedState, cp)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscaped(cp rune) {
	switch cp {
	case '-':
		t.emitChars("-")
		t.State = scriptDataDoubleEscapedDashState
	case '<':
		t.emitChars("<")
		t.State = scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
	case EOF:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDash(cp rune) {
	switch cp {
	case '-':
		t.emitChars("-")
		t.State = scriptDataDoubleEscapedDashDashState
	case '<':
		t.emitChars("<")
		t.State = scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
		t.State = scriptDataDoubleEscapedState
	case EOF:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDashDash(cp rune) {
	switch cp {
	case '-':
		t.emitChars("-")
	case '<':
		t.emitChars("<")
		t.State = scriptDataDoubleEscapedLessThanSignState
	case '>':
		t.emitChars(">")
		t.State = scriptDataState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.emitChars("\uFFFD")
		t.State = scriptDataDoubleEscapedState
	case EOF:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedLessThanSign(cp rune) {
	if cp == '/' {
		t.emitChars("/")
		t.State = scriptDataDoubleEscapeEndState
	} else {
		t.reconsumeInState(scriptDataDoubleEscapedState, cp)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapeEnd(cp rune) {
	if t.preprocessor.StartsWith(seqScript, false) &&
		isScriptDataDoubleEscapeSequenceEnd(t.preprocessor.Peek(len(seqScript))) {
		t.emitCodePoint(cp)
		for i := 0; i < len(seqScript)-1; i++ {
			t.emitCodePoint(t.consume())
		}
		t.State = scriptDataEscapedState
	} else if !t.ensureHibernation() {
		t.reconsumeInState(scriptDataDoubleEscapedState, cp)
	}
}

func (t *Tokenizer) stateBeforeAttributeName(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '/' || cp == '>' || cp == EOF:
		t.reconsumeInState(afterAttributeNameState, cp)
	case cp == '=':
		t.err(ErrUnexpectedEqualsSignBeforeAttributeName)
		t.tokenBuilder.WriteAttributeName(cp)
		t.State = attributeNameState
	default:
		t.reconsumeInState(attributeNameState, cp)
	}
}

func (t *Tokenizer) stateAttributeName(cp rune) {
	switch {
	case isWhitespace(cp) || cp == '/' || cp == '>' || cp == EOF:
		t.leaveAttrName()
		t.reconsumeInState(afterAttributeNameState, cp)
	case cp == '=':
		t.leaveAttrName()
		t.State = beforeAttributeValueState
	case isASCIIUpper(cp):
		t.tokenBuilder.WriteAttributeName(toASCIILower(cp))
	case cp == '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteAttributeName('\uFFFD')
	case cp == '"' || cp == '\'' || cp == '<':
		t.err(ErrUnexpectedCharacterInAttributeName)
		t.tokenBuilder.WriteAttributeName(cp)
	default:
		t.tokenBuilder.WriteAttributeName(cp)
	}
}

func (t *Tokenizer) leaveAttrName() {
	if t.tokenBuilder.CommitAttributeName() {
		t.err(ErrDuplicateAttribute)
	}
}

func (t *Tokenizer) stateAfterAttributeName(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '/':
		t.State = selfClosingStartTagState
	case cp == '=':
		t.State = beforeAttributeValueState
	case cp == '>':
		t.State = dataState
		t.emitCurrentTagToken()
	case cp == EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.reconsumeInState(attributeNameState, cp)
	}
}

func (t *Tokenizer) stateBeforeAttributeValue(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '"':
		t.State = attributeValueDoubleQuotedState
	case cp == '\'':
		t.State = attributeValueSingleQuotedState
	case cp == '>':
		t.err(ErrMissingAttributeValue)
		t.State = dataState
		t.emitCurrentTagToken()
	default:
		t.reconsumeInState(attributeValueUnquotedState, cp)
	}
}

func (t *Tokenizer) stateAttributeValueDoubleQuoted(cp rune) {
	switch cp {
	case '"':
		t.tokenBuilder.CommitAttributeValue()
		t.State = afterAttributeValueQuotedState
	case '&':
		t.ReturnState = attributeValueDoubleQuotedState
		t.State = characterReferenceState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteAttributeValue('\uFFFD')
	case EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteAttributeValue(cp)
	}
}

func (t *Tokenizer) stateAttributeValueSingleQuoted(cp rune) {
	switch cp {
	case '\'':
		t.tokenBuilder.CommitAttributeValue()
		t.State = afterAttributeValueQuotedState
	case '&':
		t.ReturnState = attributeValueSingleQuotedState
		t.State = characterReferenceState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteAttributeValue('\uFFFD')
	case EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteAttributeValue(cp)
	}
}

func (t *Tokenizer) stateAttributeValueUnquoted(cp rune) {
	switch {
	case isWhitespace(cp):
		t.tokenBuilder.CommitAttributeValue()
		t.State = beforeAttributeNameState
	case cp == '&':
		t.ReturnState = attributeValueUnquotedState
		t.State = characterReferenceState
	case cp == '>':
		t.tokenBuilder.CommitAttributeValue()
		t.State = dataState
		t.emitCurrentTagToken()
	case cp == '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteAttributeValue('\uFFFD')
	case cp == '"' || cp == '\'' || cp == '<' || cp == '=' || cp == '`':
		t.err(ErrUnexpectedCharacterInUnquotedAttributeValue)
		t.tokenBuilder.WriteAttributeValue(cp)
	case cp == EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteAttributeValue(cp)
	}
}

func (t *Tokenizer) stateAfterAttributeValueQuoted(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = beforeAttributeNameState
	case cp == '/':
		t.State = selfClosingStartTagState
	case cp == '>':
		t.State = dataState
		t.emitCurrentTagToken()
	case cp == EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.err(ErrMissingWhitespaceBetweenAttributes)
		t.reconsumeInState(beforeAttributeNameState, cp)
	}
}

func (t *Tokenizer) stateSelfClosingStartTag(cp rune) {
	switch cp {
	case '>':
		t.tokenBuilder.EnableSelfClosing()
		t.State = dataState
		t.emitCurrentTagToken()
	case EOF:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.err(ErrUnexpectedSolidusInTag)
		t.reconsumeInState(beforeAttributeNameState, cp)
	}
}

func (t *Tokenizer) stateBogusComment(cp rune) {
	switch cp {
	case '>':
		t.State = dataState
		t.emitCurrentComment(1)
	case EOF:
		t.emitCurrentComment(0)
		t.emitEOFToken()
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteData('\uFFFD')
	default:
		t.tokenBuilder.WriteData(cp)
	}
}

func (t *Tokenizer) stateMarkupDeclarationOpen(cp rune) {
	switch {
	case t.consumeSequenceIfMatch(seqDashDash, true):
		t.createCommentToken(len(seqDashDash) + 1)
		t.State = commentStartState
	case t.consumeSequenceIfMatch(seqDoctype, false):
		// The doctype token is created later, in the name states.
		t.currentLocation = t.getCurrentLocation(len(seqDoctype) + 1)
		t.State = doctypeState
	case t.consumeSequenceIfMatch(seqCDATAStart, true):
		if t.InForeignNode {
			t.State = cdataSectionState
		} else {
			t.err(ErrCDATAInHTMLContent)
			t.createCommentToken(len(seqCDATAStart) + 1)
			t.tokenBuilder.WriteDataString("[CDATA[")
			t.State = bogusCommentState
		}
	case !t.ensureHibernation():
		t.err(ErrIncorrectlyOpenedComment)
		t.createCommentToken(2)
		t.State = bogusCommentState
		t.stateBogusComment(cp)
	}
}

func (t *Tokenizer) stateCommentStart(cp rune) {
	switch cp {
	case '-':
		t.State = commentStartDashState
	case '>':
		t.err(ErrAbruptClosingOfEmptyComment)
		t.State = dataState
		t.emitCurrentComment(1)
	default:
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateCommentStartDash(cp rune) {
	switch cp {
	case '-':
		t.State = commentEndState
	case '>':
		t.err(ErrAbruptClosingOfEmptyComment)
		t.State = dataState
		t.emitCurrentComment(1)
	case EOF:
		t.err(ErrEOFInComment)
		t.emitCurrentComment(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteData('-')
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateComment(cp rune) {
	switch cp {
	case '<':
		t.tokenBuilder.WriteData(cp)
		t.State = commentLessThanSignState
	case '-':
		t.State = commentEndDashState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteData('\uFFFD')
	case EOF:
		t.err(ErrEOFInComment)
		t.emitCurrentComment(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteData(cp)
	}
}

func (t *Tokenizer) stateCommentLessThanSign(cp rune) {
	switch cp {
	case '!':
		t.tokenBuilder.WriteData(cp)
		t.State = commentLessThanSignBangState
	case '<':
		t.tokenBuilder.WriteData(cp)
	default:
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateCommentLessThanSignBang(cp rune) {
	if cp == '-' {
		t.State = commentLessThanSignBangDashState
	} else {
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateCommentLessThanSignBangDash(cp rune) {
	if cp == '-' {
		t.State = commentLessThanSignBangDashDashState
	} else {
		t.reconsumeInState(commentEndDashState, cp)
	}
}

func (t *Tokenizer) stateCommentLessThanSignBangDashDash(cp rune) {
	if cp != '>' && cp != EOF {
		t.err(ErrNestedComment)
	}
	t.reconsumeInState(commentEndState, cp)
}

func (t *Tokenizer) stateCommentEndDash(cp rune) {
	switch cp {
	case '-':
		t.State = commentEndState
	case EOF:
		t.err(ErrEOFInComment)
		t.emitCurrentComment(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteData('-')
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateCommentEnd(cp rune) {
	switch cp {
	case '>':
		t.State = dataState
		t.emitCurrentComment(1)
	case '!':
		t.State = commentEndBangState
	case '-':
		t.tokenBuilder.WriteData('-')
	case EOF:
		t.err(ErrEOFInComment)
		t.emitCurrentComment(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteData('-')
		t.tokenBuilder.WriteData('-')
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateCommentEndBang(cp rune) {
	switch cp {
	case '-':
		t.tokenBuilder.WriteDataString("--!")
		t.State = commentEndDashState
	case '>':
		t.err(ErrIncorrectlyClosedComment)
		t.State = dataState
		t.emitCurrentComment(1)
	case EOF:
		t.err(ErrEOFInComment)
		t.emitCurrentComment(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteDataString("--!")
		t.reconsumeInState(commentState, cp)
	}
}

func (t *Tokenizer) stateDoctype(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = beforeDoctypeNameState
	case cp == '>':
		t.reconsumeInState(beforeDoctypeNameState, cp)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.createDoctypeToken()
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingWhitespaceBeforeDoctypeName)
		t.reconsumeInState(beforeDoctypeNameState, cp)
	}
}

func (t *Tokenizer) stateBeforeDoctypeName(cp rune) {
	switch {
	case isWhitespace(cp):
	case isASCIIUpper(cp):
		t.createDoctypeToken()
		t.tokenBuilder.WriteName(toASCIILower(cp))
		t.State = doctypeNameState
	case cp == '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.createDoctypeToken()
		t.tokenBuilder.WriteName('\uFFFD')
		t.State = doctypeNameState
	case cp == '>':
		t.err(ErrMissingDoctypeName)
		t.createDoctypeToken()
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.createDoctypeToken()
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.createDoctypeToken()
		t.tokenBuilder.WriteName(cp)
		t.State = doctypeNameState
	}
}

func (t *Tokenizer) stateDoctypeName(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = afterDoctypeNameState
	case cp == '>':
		t.State = dataState
		t.emitCurrentDoctype(1)
	case isASCIIUpper(cp):
		t.tokenBuilder.WriteName(toASCIILower(cp))
	case cp == '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteName('\uFFFD')
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteName(cp)
	}
}

func (t *Tokenizer) stateAfterDoctypeName(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '>':
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	case t.consumeSequenceIfMatch(seqPublic, false):
		t.State = afterDoctypePublicKeywordState
	case t.consumeSequenceIfMatch(seqSystem, false):
		t.State = afterDoctypeSystemKeywordState
	case !t.ensureHibernation():
		t.err(ErrInvalidCharacterSequenceAfterDoctypeName)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = beforeDoctypePublicIdentifierState
	case cp == '"':
		t.err(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		t.tokenBuilder.WritePublicIdentifierEmpty()
		t.State = doctypePublicIdentifierDoubleQuotedState
	case cp == '\'':
		t.err(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		t.tokenBuilder.WritePublicIdentifierEmpty()
		t.State = doctypePublicIdentifierSingleQuotedState
	case cp == '>':
		t.err(ErrMissingDoctypePublicIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateBeforeDoctypePublicIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '"':
		t.tokenBuilder.WritePublicIdentifierEmpty()
		t.State = doctypePublicIdentifierDoubleQuotedState
	case cp == '\'':
		t.tokenBuilder.WritePublicIdentifierEmpty()
		t.State = doctypePublicIdentifierSingleQuotedState
	case cp == '>':
		t.err(ErrMissingDoctypePublicIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifierDoubleQuoted(cp rune) {
	switch cp {
	case '"':
		t.State = afterDoctypePublicIdentifierState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WritePublicIdentifier('\uFFFD')
	case '>':
		t.err(ErrAbruptDoctypePublicIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WritePublicIdentifier(cp)
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifierSingleQuoted(cp rune) {
	switch cp {
	case '\'':
		t.State = afterDoctypePublicIdentifierState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WritePublicIdentifier('\uFFFD')
	case '>':
		t.err(ErrAbruptDoctypePublicIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WritePublicIdentifier(cp)
	}
}

func (t *Tokenizer) stateAfterDoctypePublicIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = betweenDoctypePublicAndSystemIdentifiersState
	case cp == '>':
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == '"':
		t.err(ErrMissingWhitespaceBetweenDoctypePublicAndSystemID)
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierDoubleQuotedState
	case cp == '\'':
		t.err(ErrMissingWhitespaceBetweenDoctypePublicAndSystemID)
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierSingleQuotedState
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '>':
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == '"':
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierDoubleQuotedState
	case cp == '\'':
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierSingleQuotedState
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = beforeDoctypeSystemIdentifierState
	case cp == '"':
		t.err(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierDoubleQuotedState
	case cp == '\'':
		t.err(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierSingleQuotedState
	case cp == '>':
		t.err(ErrMissingDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateBeforeDoctypeSystemIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '"':
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierDoubleQuotedState
	case cp == '\'':
		t.tokenBuilder.WriteSystemIdentifierEmpty()
		t.State = doctypeSystemIdentifierSingleQuotedState
	case cp == '>':
		t.err(ErrMissingDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierDoubleQuoted(cp rune) {
	switch cp {
	case '"':
		t.State = afterDoctypeSystemIdentifierState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteSystemIdentifier('\uFFFD')
	case '>':
		t.err(ErrAbruptDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteSystemIdentifier(cp)
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierSingleQuoted(cp rune) {
	switch cp {
	case '\'':
		t.State = afterDoctypeSystemIdentifierState
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
		t.tokenBuilder.WriteSystemIdentifier('\uFFFD')
	case '>':
		t.err(ErrAbruptDoctypeSystemIdentifier)
		t.tokenBuilder.EnableForceQuirks()
		t.State = dataState
		t.emitCurrentDoctype(1)
	case EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.tokenBuilder.WriteSystemIdentifier(cp)
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
	case cp == '>':
		t.State = dataState
		t.emitCurrentDoctype(1)
	case cp == EOF:
		t.err(ErrEOFInDoctype)
		t.tokenBuilder.EnableForceQuirks()
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	default:
		t.err(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (t *Tokenizer) stateBogusDoctype(cp rune) {
	switch cp {
	case '>':
		t.State = dataState
		t.emitCurrentDoctype(1)
	case '\u0000':
		t.err(ErrUnexpectedNullCharacter)
	case EOF:
		t.emitCurrentDoctype(0)
		t.emitEOFToken()
	}
}

func (t *Tokenizer) stateCDATASection(cp rune) {
	switch cp {
	case ']':
		t.State = cdataSectionBracketState
	case EOF:
		t.err(ErrEOFInCDATA)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateCDATASectionBracket(cp rune) {
	if cp == ']' {
		t.State = cdataSectionEndState
	} else {
		t.emitChars("]")
		t.reconsumeInState(cdataSectionState, cp)
	}
}

func (t *Tokenizer) stateCDATASectionEnd(cp rune) {
	switch cp {
	case '>':
		t.State = dataState
	case ']':
		t.emitChars("]")
	default:
		t.emitChars("]]")
		t.reconsumeInState(cdataSectionState, cp)
	}
}

func (t *Tokenizer) stateCharacterReference(cp rune) {
	switch {
	case cp == '#':
		t.State = numericCharacterReferenceState
	case isASCIIAlphaNumeric(cp):
		t.State = namedCharacterReferenceState
		t.stateNamedCharacterReference(cp)
	default:
		t.flushCodePointConsumedAsCharacterReference('&')
		t.reconsumeInState(t.ReturnState, cp)
	}
}

func (t *Tokenizer) stateNamedCharacterReference(cp rune) {
	matched, withoutSemicolon := t.matchNamedCharacterReference(cp)
	if t.ensureHibernation() {
		// Re-run the whole match once more input arrives; a longer
		// name may still complete.
		return
	}
	if matched != nil {
		if withoutSemicolon {
			t.err(ErrMissingSemicolonAfterCharacterReference)
		}
		for _, r := range matched {
			t.flushCodePointConsumedAsCharacterReference(r)
		}
		t.State = t.ReturnState
	} else {
		t.flushCodePointConsumedAsCharacterReference('&')
		t.State = ambiguousAmpersandState
	}
}

func (t *Tokenizer) stateAmbiguousAmpersand(cp rune) {
	if isASCIIAlphaNumeric(cp) {
		t.flushCodePointConsumedAsCharacterReference(cp)
		return
	}
	if cp == ';' {
		t.err(ErrUnknownNamedCharacterReference)
	}
	t.reconsumeInState(t.ReturnState, cp)
}

func (t *Tokenizer) stateNumericCharacterReference(cp rune) {
	t.tokenBuilder.SetCharRef(0)
	switch {
	case cp == 'x' || cp == 'X':
		t.State = hexadecimalCharacterReferenceStartState
	case isASCIIDigit(cp):
		t.State = decimalCharacterReferenceState
		t.stateDecimalCharacterReference(cp)
	default:
		t.err(ErrAbsenceOfDigitsInNumericCharacterReference)
		t.flushCodePointConsumedAsCharacterReference('&')
		t.flushCodePointConsumedAsCharacterReference('#')
		t.reconsumeInState(t.ReturnState, cp)
	}
}

func (t *Tokenizer) stateHexadecimalCharacterReferenceStart(cp rune) {
	if isASCIIHexDigit(cp) {
		t.State = hexadecimalCharacterReferenceState
		t.stateHexadecimalCharacterReference(cp)
		return
	}
	t.err(ErrAbsenceOfDigitsInNumericCharacterReference)
	// Push back the x and the current code point so both re-run as
	// plain text in the return state.
	t.unconsume(2)
	t.flushCodePointConsumedAsCharacterReference('&')
	t.flushCodePointConsumedAsCharacterReference('#')
	t.State = t.ReturnState
}

func (t *Tokenizer) stateHexadecimalCharacterReference(cp rune) {
	switch {
	case isASCIIDigit(cp):
		t.accumulateCharRef(16, int(cp-0x30))
	case cp >= 'A' && cp <= 'F':
		t.accumulateCharRef(16, int(cp-0x37))
	case cp >= 'a' && cp <= 'f':
		t.accumulateCharRef(16, int(cp-0x57))
	case cp == ';':
		t.State = numericCharacterReferenceEndState
	default:
		t.err(ErrMissingSemicolonAfterCharacterReference)
		t.State = numericCharacterReferenceEndState
		t.stateNumericCharacterReferenceEnd(cp)
	}
}

func (t *Tokenizer) stateDecimalCharacterReference(cp rune) {
	switch {
	case isASCIIDigit(cp):
		t.accumulateCharRef(10, int(cp-0x30))
	case cp == ';':
		t.State = numericCharacterReferenceEndState
	default:
		t.err(ErrMissingSemicolonAfterCharacterReference)
		t.State = numericCharacterReferenceEndState
		t.stateNumericCharacterReferenceEnd(cp)
	}
}

// accumulateCharRef folds a digit into the reference accumulator. Once
// the value is out of range further digits cannot bring it back, so
// they stop accumulating; that also keeps pathological digit runs from
// overflowing.
func (t *Tokenizer) accumulateCharRef(radix, digit int) {
	if t.tokenBuilder.GetCharRef() > 0x10FFFF {
		return
	}
	t.tokenBuilder.MultByCharRef(radix)
	t.tokenBuilder.AddToCharRef(digit)
}

// numericCharacterReferenceEndStateTable maps the C1 control range to
// the Windows-1252 characters legacy content meant by them.
var numericCharacterReferenceEndStateTable = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

func (t *Tokenizer) stateNumericCharacterReferenceEnd(cp rune) {
	code := t.tokenBuilder.GetCharRef()
	switch {
	case code == 0:
		t.err(ErrNullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		t.err(ErrCharacterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case isSurrogate(rune(code)):
		t.err(ErrSurrogateCharacterReference)
		code = 0xFFFD
	case isNonCharacter(rune(code)):
		t.err(ErrNoncharacterCharacterReference)
	case isControlCodePoint(rune(code)) || code == 0x0D:
		t.err(ErrControlCharacterReference)
		if mapped, ok := numericCharacterReferenceEndStateTable[code]; ok {
			code = int(mapped)
		}
	}
	t.flushCodePointConsumedAsCharacterReference(rune(code))
	t.reconsumeInState(t.ReturnState, cp)
}

func isScriptDataDoubleEscapeSequenceEnd(cp rune) bool {
	return isWhitespace(cp) || cp == '/' || cp == '>'
}

func isWhitespace(cp rune) bool {
	switch cp {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func isASCIIUpper(cp rune) bool {
	return cp >= 'A' && cp <= 'Z'
}

func isASCIILower(cp rune) bool {
	return cp >= 'a' && cp <= 'z'
}

func isASCIILetter(cp rune) bool {
	return isASCIIUpper(cp) || isASCIILower(cp)
}

func isASCIIDigit(cp rune) bool {
	return cp >= '0' && cp <= '9'
}

func isASCIIHexDigit(cp rune) bool {
	return isASCIIDigit(cp) || (cp >= 'A' && cp <= 'F') || (cp >= 'a' && cp <= 'f')
}

func isASCIIAlphaNumeric(cp rune) bool {
	return isASCIILetter(cp) || isASCIIDigit(cp)
}

func toASCIILower(cp rune) rune {
	if isASCIIUpper(cp) {
		return cp + 0x20
	}
	return cp
}

func isSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}

func isNonCharacter(cp rune) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	return cp >= 0 && cp <= 0x10FFFF && cp&0xFFFE == 0xFFFE
}

// isControlCodePoint matches the controls the input stream and numeric
// references flag, which excludes NUL and the ASCII whitespace set.
func isControlCodePoint(cp rune) bool {
	return (cp >= 0x01 && cp <= 0x1F && !isWhitespace(cp) && cp != '\r') ||
		(cp >= 0x7F && cp <= 0x9F)
}
