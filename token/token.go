// SPDX-License-Identifier: MIT
package token

import (
	"golang.org/x/exp/slices"
)

type (
	// Kind int identifying the lexical category of a Token.
	Kind int

	// Direction int indicating whether a bracket-family Token opens or closes.
	Direction int

	// Token type holding the classified result of recognizing one lexeme.
	//
	// Payload fields are populated per Kind: Text for Keyword & Identifier,
	// Direction for the bracket families, Op for Operator. The remaining
	// fields hold their zero values.
	Token struct {
		Text      string
		Kind      Kind
		Direction Direction
		Op        Op
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_               Kind = iota // Consume 0 to start actual numbering at 1.
	KindEndOfFile               // Marks the unique, final token of a sequence.
	KindNewLine                 // One per `\n` consumed.
	KindWhitespace              // One per maximal run of spaces.
	KindKeyword                 // Reserved word.
	KindIdentifier              // Identifier-grammar lexeme outside the keyword set.
	KindParenthesis             // '(' | ')'.
	KindBracket                 // '[' | ']'.
	KindBrace                   // '{' | '}'.
	KindOperator                // See Op.
)

// Bracket directions shared by the Parenthesis, Bracket & Brace families.
//
// No cross-family matching or balance tracking happens at this level; that is
// parser work.
const (
	_       Direction = iota
	Opening           // '(', '[' & '{'.
	Closing           // ')', ']' & '}'.
)

// keywords is the closed set of reserved words; membership is checked by
// exact match, never by prefix.
var keywords = []string{"u8", "return"}

var kindNames = [...]string{
	KindEndOfFile:   "EndOfFile",
	KindNewLine:     "NewLine",
	KindWhitespace:  "Whitespace",
	KindKeyword:     "Keyword",
	KindIdentifier:  "Identifier",
	KindParenthesis: "Parenthesis",
	KindBracket:     "Bracket",
	KindBrace:       "Brace",
	KindOperator:    "Operator",
}

// String yields the Kind's name.
func (k Kind) String() string {
	if k < 1 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// String yields the Direction's name.
func (d Direction) String() string {
	switch d {
	case Opening:
		return "Opening"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// EndOfFile creates the Token marking the end of a token sequence.
func EndOfFile() Token { return Token{Kind: KindEndOfFile} }

// NewLine creates a Token for a consumed `\n`.
func NewLine() Token { return Token{Kind: KindNewLine} }

// Whitespace creates a Token for a maximal run of consecutive spaces.
//
// The run's length is not retained.
func Whitespace() Token { return Token{Kind: KindWhitespace} }

// Keyword creates a Token for a member of the reserved word set.
func Keyword(text string) Token { return Token{Kind: KindKeyword, Text: text} }

// Identifier creates a Token for an identifier lexeme.
func Identifier(text string) Token { return Token{Kind: KindIdentifier, Text: text} }

// Parenthesis creates a Token for `(` or `)`.
func Parenthesis(d Direction) Token { return Token{Kind: KindParenthesis, Direction: d} }

// Bracket creates a Token for `[` or `]`.
func Bracket(d Direction) Token { return Token{Kind: KindBracket, Direction: d} }

// Brace creates a Token for `{` or `}`.
func Brace(d Direction) Token { return Token{Kind: KindBrace, Direction: d} }

// Operator creates a Token for an operator lexeme.
func Operator(op Op) Token { return Token{Kind: KindOperator, Op: op} }

// Equal compares two Tokens by Kind ONLY; payloads are ignored.
//
// Two Keyword tokens with different text compare equal. This coarse identity
// mirrors the behaviour downstream consumers rely on & is intentional, not an
// oversight to harden away.
func (t Token) Equal(other Token) bool { return t.Kind == other.Kind }

// IsKeyword reports whether text is exactly a member of the reserved word
// set.
//
// A lexeme in this set always classifies as Keyword, never Identifier, even
// though it satisfies the identifier grammar.
func IsKeyword(text string) bool { return slices.Contains(keywords, text) }

// Keywords lists the reserved word set.
func Keywords() []string { return slices.Clone(keywords) }

// IsKeywordChar reports whether r may appear in a keyword lexeme; the
// reserved words use lowercase letters only.
func IsKeywordChar(r rune) bool { return r >= 'a' && r <= 'z' }

// IsIdentifierChar reports whether r may appear in an identifier lexeme.
//
// The first character accepts letters & underscore; subsequent characters
// additionally accept digits.
func IsIdentifierChar(r rune, beginning bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= '0' && r <= '9':
		return !beginning
	default:
		return false
	}
}
