// SPDX-License-Identifier: MIT
package tokenizer

// REF: https://github.com/sh4t/sql-parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/fll/token"
)

type (
	// Tokenizer defines a single-pass, single-lookahead scanner turning
	// source text into its ordered token sequence.
	//
	// A Tokenizer owns one caret Position for the duration of a Tokenize
	// call; instances are not safe for concurrent use.
	Tokenizer struct {
		logger logrus.FieldLogger
		debug  bool

		// source is the input being scanned.
		source io.RuneReader

		// pending holds a rune surfaced by peek but not yet consumed.
		pending    rune
		hasPending bool

		caret Position
	}
)

const defTokenCapacity = 10

// Scan errors.
var (
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// UnrecognizedCharacterError reports a source character outside every
// defined lexical class, at the Position it occupies.
type UnrecognizedCharacterError struct {
	Character rune
	Position  Position
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("%v '%c'%s", ErrUnrecognizedCharacter, e.Character, e.Position)
}

func (e *UnrecognizedCharacterError) Unwrap() error { return ErrUnrecognizedCharacter }

// New creates a Tokenizer.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		logger: logrus.New(),
		source: strings.NewReader(""),
		caret:  NewPosition(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Logger obtains the logger.
func (t *Tokenizer) Logger() logrus.FieldLogger { return t.logger }

// CaretPos obtains a snapshot of the caret's current position.
//
// After a completed Tokenize this is the position one past the last consumed
// rune of the input.
func (t *Tokenizer) CaretPos() Position { return t.caret }

// Tokenize scans input left to right into its ordered token sequence.
//
// The result is either a complete sequence whose final element is the single
// EndOfFile token, or an error; never a partial sequence paired with an
// error.
func (t *Tokenizer) Tokenize(ctx context.Context, input string) (tokens []token.Token, err error) {
	t.source = strings.NewReader(input)
	t.pending, t.hasPending = 0, false
	t.caret = NewPosition()

	tokens = make([]token.Token, 0, defTokenCapacity)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pos := t.caret

		r, ok := t.next()
		if !ok {
			// The end-of-input signal still reaches the caret; it freezes in
			// place.
			t.caret.Process(EndOfInput)
			tokens = append(tokens, t.emit(token.EndOfFile()))

			return tokens, nil
		}

		switch {
		case r == '(':
			tokens = append(tokens, t.emit(token.Parenthesis(token.Opening)))
		case r == ')':
			tokens = append(tokens, t.emit(token.Parenthesis(token.Closing)))
		case r == '<':
			tokens = append(tokens, t.emit(token.Operator(token.OpGenericBlockBegin)))
		case r == '>':
			tokens = append(tokens, t.emit(token.Operator(token.OpGenericBlockEnd)))
		case r == ';':
			tokens = append(tokens, t.emit(token.Operator(token.OpStatementTerminator)))
		case r == ':':
			tokens = append(tokens, t.emit(token.Operator(token.OpTypeSpecifier)))
		case r == ',':
			tokens = append(tokens, t.emit(token.Operator(token.OpCommaSeparator)))
		case r == '-':
			// `-` is only recognized as the head of `->`; the grammar has no
			// bare subtraction rule yet.
			next, nextOK := t.peek()
			if !nextOK || next != '>' {
				return nil, &UnrecognizedCharacterError{Character: r, Position: pos}
			}
			t.next()

			tokens = append(tokens, t.emit(token.Operator(token.OpReturnType)))
		case r == '+':
			tokens = append(tokens, t.emit(token.Operator(token.OpAddition)))
		case r == '{':
			tokens = append(tokens, t.emit(token.Brace(token.Opening)))
		case r == '}':
			tokens = append(tokens, t.emit(token.Brace(token.Closing)))
		case r == ' ':
			// A maximal run of spaces collapses into one token; the run
			// length is discarded.
			t.acceptWhile(isSpace)
			tokens = append(tokens, t.emit(token.Whitespace()))
		case r == '\n':
			tokens = append(tokens, t.emit(token.NewLine()))
		case token.IsIdentifierChar(r, true) || token.IsKeywordChar(r):
			tokens = append(tokens, t.emit(t.lexWord(r)))
		default:
			return nil, &UnrecognizedCharacterError{Character: r, Position: pos}
		}
	}
}

// lexWord greedily accumulates an identifier/keyword lexeme beginning with
// first.
//
// The scan admits runes satisfying either the identifier-continue or the
// keyword character class without recording which; the lexeme is classified
// once, at the end, by exact match against the keyword set.
func (t *Tokenizer) lexWord(first rune) token.Token {
	buf := []rune{first}

	for {
		r, ok := t.peek()
		if !ok || !(token.IsIdentifierChar(r, false) || token.IsKeywordChar(r)) {
			break
		}
		t.next()

		buf = append(buf, r)
	}

	text := string(buf)
	if token.IsKeyword(text) {
		return token.Keyword(text)
	}

	return token.Identifier(text)
}

// next consumes one rune & feeds it to the caret.
func (t *Tokenizer) next() (r rune, ok bool) {
	if t.hasPending {
		r, ok = t.pending, true
		t.hasPending = false
		t.caret.Process(r)

		return
	}

	var err error
	if r, _, err = t.source.ReadRune(); err != nil {
		// Error can only be io.EOF
		return
	}
	ok = true
	t.caret.Process(r)

	return
}

// peek returns the next rune without consuming it; the caret does not
// advance.
func (t *Tokenizer) peek() (r rune, ok bool) {
	if t.hasPending {
		return t.pending, true
	}

	var err error
	if r, _, err = t.source.ReadRune(); err != nil {
		return
	}
	t.pending, t.hasPending = r, true
	ok = true

	return
}

// acceptWhile consumes runes while condition is true, leaving the first rune
// that fails it unconsumed.
func (t *Tokenizer) acceptWhile(fn func(rune) bool) {
	for {
		r, ok := t.peek()
		if !ok || !fn(r) {
			return
		}
		t.next()
	}
}

// emit logs a scanned token when debugging.
func (t *Tokenizer) emit(tok token.Token) token.Token {
	if t.debug {
		t.logger.Debug("tokenizer emit: ", tok.Kind)
	}

	return tok
}

// isSpace return true for a space; runs of these collapse into a single
// Whitespace token.
func isSpace(r rune) bool { return r == ' ' }
