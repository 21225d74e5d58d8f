// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool locates and runs the external converter binaries: pandoc for
// whole-document conversion and LibreOffice for .docx to .doc export.
// Implements: docs/ARCHITECTURE § External Converters.
package tool

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	binPandoc      = "pandoc"
	binSoffice     = "soffice"
	binLibreOffice = "libreoffice"
)

// executor abstracts command lookup and execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Tool wraps one external binary resolved on PATH.
type Tool struct {
	bin  string
	exec executor
}

// Name returns the resolved binary name.
func (t *Tool) Name() string { return t.bin }

// Run executes the binary with the given arguments.
func (t *Tool) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := t.exec.Run(t.bin, args, stdin, stdout, stderr); err != nil {
		return fmt.Errorf("running %s: %w", t.bin, err)
	}
	return nil
}

// Pandoc resolves the pandoc binary. An error means pandoc is not installed
// and the caller should fall back to the built-in renderer.
func Pandoc() (*Tool, error) {
	return find(defaultExec, binPandoc)
}

// Soffice resolves the LibreOffice binary, trying soffice first and the
// libreoffice alias second.
func Soffice() (*Tool, error) {
	return find(defaultExec, binSoffice, binLibreOffice)
}

func find(exec executor, names ...string) (*Tool, error) {
	for _, name := range names {
		if _, err := exec.LookPath(name); err == nil {
			return &Tool{bin: name, exec: exec}, nil
		}
	}
	return nil, fmt.Errorf("no binary found on PATH: tried %s", strings.Join(names, ", "))
}
