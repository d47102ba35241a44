package main

import (
	"fmt"
	"io/ioutil"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltok/tokenizer"
)

type options struct {
	Locations bool `short:"l" long:"locations" description:"attach source locations to tokens"`
	Trace     bool `short:"t" long:"trace" description:"log every state machine step"`
	ChunkSize int  `short:"c" long:"chunk-size" default:"4096" description:"feed input in chunks of this many code points"`
	Args      struct {
		File string `positional-arg-name:"file"`
	} `positional-args:"yes"`
}

// printHandler dumps the token stream and demonstrates the state
// feedback a tree constructor performs: after a start tag for a text
// element it switches the tokenizer into the matching text state.
type printHandler struct {
	t *tokenizer.Tokenizer
}

func (h *printHandler) OnStartTag(tok *tokenizer.TagToken) {
	fmt.Printf("StartTag  %s attrs=%d selfClosing=%v\n", tok.TagName, len(tok.Attrs), tok.SelfClosing)
	switch tok.TagID {
	case tokenizer.TagTitle, tokenizer.TagTextarea:
		h.t.State = tokenizer.StateRCData
	case tokenizer.TagStyle, tokenizer.TagXmp, tokenizer.TagIframe,
		tokenizer.TagNoembed, tokenizer.TagNoframes:
		h.t.State = tokenizer.StateRawText
	case tokenizer.TagScript:
		h.t.State = tokenizer.StateScriptData
	case tokenizer.TagPlaintext:
		h.t.State = tokenizer.StatePlaintext
	}
}

func (h *printHandler) OnEndTag(tok *tokenizer.TagToken) {
	fmt.Printf("EndTag    %s\n", tok.TagName)
}

func (h *printHandler) OnComment(tok *tokenizer.CommentToken) {
	fmt.Printf("Comment   %q\n", tok.Data)
}

func (h *printHandler) OnDoctype(tok *tokenizer.DoctypeToken) {
	name := "<nil>"
	if tok.Name != nil {
		name = *tok.Name
	}
	fmt.Printf("Doctype   %s quirks=%v\n", name, tok.ForceQuirks)
}

func (h *printHandler) OnCharacter(tok *tokenizer.CharacterToken) {
	fmt.Printf("Character %q\n", tok.Chars)
}

func (h *printHandler) OnNullCharacter(tok *tokenizer.CharacterToken) {
	fmt.Printf("NullChar  %q\n", tok.Chars)
}

func (h *printHandler) OnWhitespaceCharacter(tok *tokenizer.CharacterToken) {
	fmt.Printf("Space     %q\n", tok.Chars)
}

func (h *printHandler) OnEOF(*tokenizer.EOFToken) {
	fmt.Println("EOF")
}

func (h *printHandler) OnParseError(err *tokenizer.ParseError) {
	logrus.Warnf("parse error: %s", err)
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if opts.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}

	var (
		input []byte
		err   error
	)
	if opts.Args.File != "" {
		input, err = ioutil.ReadFile(opts.Args.File)
	} else {
		input, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		logrus.Fatal(err)
	}

	handler := &printHandler{}
	handler.t = tokenizer.NewTokenizer(tokenizer.Options{
		SourceCodeLocationInfo: opts.Locations,
	}, handler)

	runes := []rune(string(input))
	for len(runes) > 0 {
		n := opts.ChunkSize
		if n <= 0 || n > len(runes) {
			n = len(runes)
		}
		if err := handler.t.Write(string(runes[:n]), n == len(runes)); err != nil {
			logrus.Fatal(err)
		}
		runes = runes[n:]
	}
}
