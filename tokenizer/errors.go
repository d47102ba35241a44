package tokenizer

import "fmt"

// ErrorCode identifies a parse error from the HTML tokenization spec.
// The values are the conformance-checker error ids, so embedders can
// match them against the spec's error list directly.
type ErrorCode string

const (
	ErrAbruptClosingOfEmptyComment                      ErrorCode = "abrupt-closing-of-empty-comment"
	ErrAbruptDoctypePublicIdentifier                    ErrorCode = "abrupt-doctype-public-identifier"
	ErrAbruptDoctypeSystemIdentifier                    ErrorCode = "abrupt-doctype-system-identifier"
	ErrAbsenceOfDigitsInNumericCharacterReference       ErrorCode = "absence-of-digits-in-numeric-character-reference"
	ErrCDATAInHTMLContent                               ErrorCode = "cdata-in-html-content"
	ErrCharacterReferenceOutsideUnicodeRange            ErrorCode = "character-reference-outside-unicode-range"
	ErrControlCharacterInInputStream                    ErrorCode = "control-character-in-input-stream"
	ErrControlCharacterReference                        ErrorCode = "control-character-reference"
	ErrDuplicateAttribute                               ErrorCode = "duplicate-attribute"
	ErrEndTagWithAttributes                             ErrorCode = "end-tag-with-attributes"
	ErrEndTagWithTrailingSolidus                        ErrorCode = "end-tag-with-trailing-solidus"
	ErrEOFBeforeTagName                                 ErrorCode = "eof-before-tag-name"
	ErrEOFInCDATA                                       ErrorCode = "eof-in-cdata"
	ErrEOFInComment                                     ErrorCode = "eof-in-comment"
	ErrEOFInDoctype                                     ErrorCode = "eof-in-doctype"
	ErrEOFInScriptHTMLCommentLikeText                   ErrorCode = "eof-in-script-html-comment-like-text"
	ErrEOFInTag                                         ErrorCode = "eof-in-tag"
	ErrIncorrectlyClosedComment                         ErrorCode = "incorrectly-closed-comment"
	ErrIncorrectlyOpenedComment                         ErrorCode = "incorrectly-opened-comment"
	ErrInvalidCharacterSequenceAfterDoctypeName         ErrorCode = "invalid-character-sequence-after-doctype-name"
	ErrInvalidFirstCharacterOfTagName                   ErrorCode = "invalid-first-character-of-tag-name"
	ErrMissingAttributeValue                            ErrorCode = "missing-attribute-value"
	ErrMissingDoctypeName                               ErrorCode = "missing-doctype-name"
	ErrMissingDoctypePublicIdentifier                   ErrorCode = "missing-doctype-public-identifier"
	ErrMissingDoctypeSystemIdentifier                   ErrorCode = "missing-doctype-system-identifier"
	ErrMissingEndTagName                                ErrorCode = "missing-end-tag-name"
	ErrMissingQuoteBeforeDoctypePublicIdentifier        ErrorCode = "missing-quote-before-doctype-public-identifier"
	ErrMissingQuoteBeforeDoctypeSystemIdentifier        ErrorCode = "missing-quote-before-doctype-system-identifier"
	ErrMissingSemicolonAfterCharacterReference          ErrorCode = "missing-semicolon-after-character-reference"
	ErrMissingWhitespaceAfterDoctypePublicKeyword       ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	ErrMissingWhitespaceAfterDoctypeSystemKeyword       ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	ErrMissingWhitespaceBeforeDoctypeName               ErrorCode = "missing-whitespace-before-doctype-name"
	ErrMissingWhitespaceBetweenAttributes               ErrorCode = "missing-whitespace-between-attributes"
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemID ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	ErrNestedComment                                    ErrorCode = "nested-comment"
	ErrNoncharacterCharacterReference                   ErrorCode = "noncharacter-character-reference"
	ErrNoncharacterInInputStream                        ErrorCode = "noncharacter-in-input-stream"
	ErrNullCharacterReference                           ErrorCode = "null-character-reference"
	ErrSurrogateCharacterReference                      ErrorCode = "surrogate-character-reference"
	ErrSurrogateInInputStream                           ErrorCode = "surrogate-in-input-stream"
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier  ErrorCode = "unexpected-character-after-doctype-system-identifier"
	ErrUnexpectedCharacterInAttributeName               ErrorCode = "unexpected-character-in-attribute-name"
	ErrUnexpectedCharacterInUnquotedAttributeValue      ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	ErrUnexpectedEqualsSignBeforeAttributeName          ErrorCode = "unexpected-equals-sign-before-attribute-name"
	ErrUnexpectedNullCharacter                          ErrorCode = "unexpected-null-character"
	ErrUnexpectedQuestionMarkInsteadOfTagName           ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	ErrUnexpectedSolidusInTag                           ErrorCode = "unexpected-solidus-in-tag"
	ErrUnknownNamedCharacterReference                   ErrorCode = "unknown-named-character-reference"
)

// ParseError reports a tokenization error together with the source
// position of the offending code point. Positions are 1-based for line
// and column; offsets count code points of the normalized input.
type ParseError struct {
	Code        ErrorCode
	StartLine   int
	StartCol    int
	StartOffset int
	EndLine     int
	EndCol      int
	EndOffset   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Code, e.StartLine, e.StartCol)
}
