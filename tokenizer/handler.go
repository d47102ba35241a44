package tokenizer

// TokenHandler receives the token stream. Callbacks fire synchronously,
// in stream order, while the parsing loop runs; a pending character run
// is always flushed before any other token type. Token references are
// only valid for the duration of the callback, so a handler that wants
// to keep one around has to copy it.
//
// A handler is allowed to mutate the tokenizer's State, ReturnState,
// InForeignNode and LastStartTagName fields from inside a callback.
// That is how a tree constructor switches the tokenizer into RCDATA,
// RAWTEXT or script data after emitting start tags for <title>,
// <textarea>, <script> and friends.
type TokenHandler interface {
	OnStartTag(*TagToken)
	OnEndTag(*TagToken)
	OnComment(*CommentToken)
	OnDoctype(*DoctypeToken)
	OnCharacter(*CharacterToken)
	OnNullCharacter(*CharacterToken)
	OnWhitespaceCharacter(*CharacterToken)
	OnEOF(*EOFToken)
	OnParseError(*ParseError)
}

// Options configures a Tokenizer at construction time.
type Options struct {
	// SourceCodeLocationInfo enables location tracking on emitted
	// tokens. Parse errors carry positions either way.
	SourceCodeLocationInfo bool
}
