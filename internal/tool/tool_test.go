// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

// fakeExecutor implements executor with a fixed set of available binaries.
type fakeExecutor struct {
	onPath  map[string]bool
	runErr  error
	ranName string
	ranArgs []string
	stdout  string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", file)
}

func (f *fakeExecutor) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f.ranName = name
	f.ranArgs = args
	if f.stdout != "" {
		io.WriteString(stdout, f.stdout)
	}
	return f.runErr
}

func TestFind_FirstAvailable(t *testing.T) {
	tests := []struct {
		name    string
		onPath  map[string]bool
		names   []string
		want    string
		wantErr bool
	}{
		{
			name:   "first name found",
			onPath: map[string]bool{"soffice": true, "libreoffice": true},
			names:  []string{"soffice", "libreoffice"},
			want:   "soffice",
		},
		{
			name:   "falls through to second",
			onPath: map[string]bool{"libreoffice": true},
			names:  []string{"soffice", "libreoffice"},
			want:   "libreoffice",
		},
		{
			name:    "none available",
			onPath:  map[string]bool{},
			names:   []string{"soffice", "libreoffice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := find(&fakeExecutor{onPath: tt.onPath}, tt.names...)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got tool %s", got.Name())
				}
				if !strings.Contains(err.Error(), "soffice, libreoffice") {
					t.Errorf("error %q does not name the tried binaries", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", got.Name(), tt.want)
			}
		})
	}
}

func TestTool_Run(t *testing.T) {
	fake := &fakeExecutor{onPath: map[string]bool{"pandoc": true}, stdout: "ok"}
	tl, err := find(fake, "pandoc")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := tl.Run([]string{"--version"}, nil, &out, io.Discard); err != nil {
		t.Fatal(err)
	}

	if fake.ranName != "pandoc" {
		t.Errorf("ran %q, want pandoc", fake.ranName)
	}
	if len(fake.ranArgs) != 1 || fake.ranArgs[0] != "--version" {
		t.Errorf("args = %v, want [--version]", fake.ranArgs)
	}
	if out.String() != "ok" {
		t.Errorf("stdout = %q, want ok", out.String())
	}
}

func TestTool_RunError(t *testing.T) {
	cause := errors.New("exit status 1")
	fake := &fakeExecutor{onPath: map[string]bool{"pandoc": true}, runErr: cause}
	tl, err := find(fake, "pandoc")
	if err != nil {
		t.Fatal(err)
	}

	err = tl.Run(nil, nil, io.Discard, io.Discard)

	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap the run failure", err)
	}
	if !strings.Contains(err.Error(), "pandoc") {
		t.Errorf("error %q does not name the binary", err)
	}
}
