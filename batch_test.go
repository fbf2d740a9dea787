// SPDX-License-Identifier: MIT
package fll

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gitlab.com/fisherprime/fll/token"
)

func TestTokenizeFiles(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "main_fn.fl"),
		filepath.Join("testdata", "other_fn.fl"),
		filepath.Join("testdata", "add.fl"),
	}
	wantLens := []int{6, 11, 35}

	results, err := TokenizeFiles(context.Background(), paths, WithConcurrency(2))
	if err != nil {
		t.Fatalf("TokenizeFiles() error = %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("TokenizeFiles() len = %d, want %d", len(results), len(paths))
	}

	for index := range results {
		result := results[index]

		if result.Path != paths[index] {
			t.Errorf("Result[%d].Path = %s, want %s", index, result.Path, paths[index])
		}
		if result.Err != nil {
			t.Errorf("Result[%d].Err = %v", index, result.Err)
			continue
		}
		if len(result.Tokens) != wantLens[index] {
			t.Errorf("Result[%d] len = %d, want %d", index, len(result.Tokens), wantLens[index])
		}
		if last := result.Tokens[len(result.Tokens)-1]; last.Kind != token.KindEndOfFile {
			t.Errorf("Result[%d] last kind = %v, want EndOfFile", index, last.Kind)
		}
	}
}

// A failing file surfaces in its Result & the aggregate error without
// aborting its peers.
func TestTokenizeFiles_partialFailure(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "main_fn.fl"),
		filepath.Join("testdata", "absent.fl"),
	}

	results, err := TokenizeFiles(context.Background(), paths, WithConcurrency(1))
	if !errors.Is(err, ErrBatchFailed) {
		t.Fatalf("TokenizeFiles() error = %v, want ErrBatchFailed", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("TokenizeFiles() len = %d, want %d", len(results), len(paths))
	}

	if results[0].Err != nil {
		t.Errorf("Result[0].Err = %v, want nil", results[0].Err)
	}
	if len(results[0].Tokens) != 6 {
		t.Errorf("Result[0] len = %d, want 6", len(results[0].Tokens))
	}
	if results[1].Err == nil {
		t.Error("Result[1].Err = nil, want error")
	}
}
