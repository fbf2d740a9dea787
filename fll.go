// SPDX-License-Identifier: MIT

// Package fll is the lexical front end for the fll language: it loads source
// files & scans them into classified token sequences, tracking line/column
// positions for diagnostics.
package fll

import (
	"context"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/fll/source"
	"gitlab.com/fisherprime/fll/token"
	"gitlab.com/fisherprime/fll/tokenizer"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// TokenizeFile scans one source file into its ordered token sequence,
// returning the caret's final position alongside.
func TokenizeFile(ctx context.Context, path string) ([]token.Token, tokenizer.Position, error) {
	return tokenizeFile(ctx, path, fLogger)
}

// tokenizeFile performs the load-then-scan pipeline grunt work.
func tokenizeFile(ctx context.Context, path string, logger logrus.FieldLogger) (tokens []token.Token, pos tokenizer.Position, err error) {
	t := tokenizer.New(tokenizer.WithLogger(logger))
	pos = t.CaretPos()

	var contents string
	if contents, err = source.New(path).ReadToString(); err != nil {
		return
	}

	tokens, err = t.Tokenize(ctx, contents)
	pos = t.CaretPos()

	return
}
