// SPDX-License-Identifier: MIT
package fll

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/fll/token"
	"gitlab.com/fisherprime/fll/tokenizer"
)

type (
	// Result holds one file's outcome from a batch scan.
	Result struct {
		Err    error
		Path   string
		Tokens []token.Token
		Pos    tokenizer.Position
	}

	// Batch defines options for TokenizeFiles.
	Batch struct {
		logger      logrus.FieldLogger
		concurrency int
	}

	// BatchOption defines the Batch functional option type.
	BatchOption func(*Batch)
)

const defConcurrency = 4

// ErrBatchFailed tags a batch scan with at least one failed file.
var ErrBatchFailed = errors.New("batch tokenization failed")

// WithConcurrency configures the batch worker pool size.
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger configures the batch logger.
func WithBatchLogger(l logrus.FieldLogger) BatchOption {
	return func(b *Batch) {
		if l != nil {
			b.logger = l
		}
	}
}

// TokenizeFiles scans source files concurrently over a worker pool.
//
// Results follow the order of paths. Outcomes are isolated per file; a read
// or lexical failure in one file never aborts the others, the aggregate
// ErrBatchFailed is returned alongside the full Result list instead.
func TokenizeFiles(ctx context.Context, paths []string, opts ...BatchOption) ([]Result, error) {
	b := &Batch{logger: fLogger, concurrency: defConcurrency}
	for _, opt := range opts {
		opt(b)
	}

	pool, err := ants.NewPool(b.concurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBatchFailed, err)
	}
	defer pool.Release()

	results := make([]Result, len(paths))

	wg := new(sync.WaitGroup)
	for index := range paths {
		index, path := index, paths[index]

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			// Each file gets its own Tokenizer; instances are
			// single-caller.
			tokens, pos, err := tokenizeFile(ctx, path, b.logger)
			results[index] = Result{Path: path, Tokens: tokens, Pos: pos, Err: err}
		}); err != nil {
			wg.Done()
			results[index] = Result{Path: path, Err: err}
		}
	}
	wg.Wait()

	failed := 0
	for index := range results {
		if results[index].Err != nil {
			failed++
		}
	}
	if failed > 0 {
		b.logger.Debugf("batch results: %s", spew.Sdump(results))

		return results, fmt.Errorf("%w: %d of %d files", ErrBatchFailed, failed, len(paths))
	}

	return results, nil
}
