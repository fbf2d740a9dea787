// SPDX-License-Identifier: MIT
package tokenizer

import "fmt"

// Position defines a 1-based (line, column) caret location within source
// text.
//
// A Position only moves through Process; it never rewinds within a scan. The
// line is monotonically non-decreasing & the column strictly increases
// between newline resets.
type Position struct {
	line   int
	column int
}

// EndOfInput is the rune fed to Process once the source is exhausted.
const EndOfInput rune = 0

// NewPosition creates a Position at the start of a source text, (1, 1).
func NewPosition() Position { return Position{line: 1, column: 1} }

// Line obtains the 1-based line.
func (p Position) Line() int { return p.line }

// Column obtains the 1-based column.
func (p Position) Column() int { return p.column }

// Process advances the Position over one consumed rune.
//
// EndOfInput freezes the Position in place. Any other rune increments the
// column; a newline additionally resets the column to 1 & increments the
// line.
func (p *Position) Process(r rune) {
	if r == EndOfInput {
		return
	}

	p.column++

	if r == '\n' {
		p.line++
		p.column = 1
	}
}

// String renders the Position as `:<line>:<column>` for embedding in
// diagnostic messages.
func (p Position) String() string { return fmt.Sprintf(":%d:%d", p.line, p.column) }
