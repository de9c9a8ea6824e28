package nlp

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/rs/zerolog/log"
)

var ErrTokenizerUnavailable = errors.New("tokenizer unavailable")

// Token is one surface token of a tokenized message.
type Token struct {
	Text    string
	IsPunct bool
}

// Tokenizer splits text into ordered tokens. Implementations must be safe for
// concurrent use.
type Tokenizer interface {
	Tokenize(text string) []Token
}

type proseTokenizer struct {
	opts []prose.DocOpt
}

// NewProseTokenizer builds the tokenizer once at startup and verifies it on a
// probe sentence so a broken install fails before serving traffic.
func NewProseTokenizer() (Tokenizer, error) {
	t := &proseTokenizer{
		opts: []prose.DocOpt{
			prose.WithTokenization(true),
			prose.WithSegmentation(false),
			prose.WithTagging(false),
			prose.WithExtraction(false),
		},
	}

	doc, err := prose.NewDocument("tokenizer warm up", t.opts...)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialise prose tokenizer")
		return nil, fmt.Errorf("%w: %v", ErrTokenizerUnavailable, err)
	}
	if len(doc.Tokens()) == 0 {
		return nil, fmt.Errorf("%w: probe produced no tokens", ErrTokenizerUnavailable)
	}

	log.Info().Msg("Prose tokenizer initialized")
	return t, nil
}

func (t *proseTokenizer) Tokenize(text string) []Token {
	doc, err := prose.NewDocument(text, t.opts...)
	if err != nil {
		log.Error().Err(err).Msg("Prose tokenization failed")
		return nil
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, Token{
			Text:    tok.Text,
			IsPunct: IsPunctuation(tok.Text),
		})
	}
	log.Trace().Int("token_count", len(tokens)).Msg("Tokenized message")
	return tokens
}

// IsPunctuation reports whether every rune of s is punctuation. Empty strings
// are not punctuation.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
