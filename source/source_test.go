// SPDX-License-Identifier: MIT
package source

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
)

const fromFileContents = "main(): -> u8 := {\n  return 0;\n}\n"

func TestSource_ReadToString(t *testing.T) {
	type args struct {
		path string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "existing file",
			args: args{filepath.Join("testdata", "from_file.fl")},
			want: fromFileContents,
		},
		{
			name:    "missing file",
			args:    args{filepath.Join("testdata", "absent.fl")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args.path).ReadToString()
			if (err != nil) != tt.wantErr {
				t.Errorf("Source.ReadToString() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnavailable) {
					t.Errorf("Source.ReadToString() error = %v, want ErrUnavailable", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Source.ReadToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSource_BufReader(t *testing.T) {
	reader, closeFn, err := New(filepath.Join("testdata", "from_file.fl")).BufReader()
	if err != nil {
		t.Fatalf("Source.BufReader() error = %v", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			t.Errorf("close error = %v", err)
		}
	}()

	contents, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(contents) != fromFileContents {
		t.Errorf("Source.BufReader() contents = %q, want %q", contents, fromFileContents)
	}
}

func TestSource_File_missing(t *testing.T) {
	if _, err := New(filepath.Join("testdata", "absent.fl")).File(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Source.File() error = %v, want ErrUnavailable", err)
	}
}
