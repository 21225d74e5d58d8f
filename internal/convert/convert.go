// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/md2office/internal/style"
	"github.com/pdiddy/md2office/internal/tool"
	"github.com/pdiddy/md2office/pkg/types"
)

// Options selects what to convert and how.
type Options struct {
	// Input is the Markdown file path.
	Input string

	// Output is the target path (.docx or .doc). Empty means the input
	// base name with a .docx extension, alongside the input.
	Output string

	// Header is the page header text; overrides the style config's text.
	Header string

	// StylesPath points at a YAML or JSON style configuration file.
	StylesPath string

	// FallbackOnly skips pandoc even when it is installed.
	FallbackOnly bool
}

// Result describes a finished conversion.
type Result struct {
	Status types.ConvertStatus

	// OutputPath is the requested final document.
	OutputPath string

	// DocxPath is the .docx that was written; for .doc output it is the
	// kept intermediate, otherwise it equals OutputPath.
	DocxPath string
}

// ConvertFile converts one Markdown file, preferring pandoc and falling back
// to the built-in renderer, then exporting to .doc through LibreOffice when
// that format was requested. Advisory diagnostics go to w; the returned
// error is fatal to this conversion only.
func ConvertFile(opts Options, w io.Writer) (Result, error) {
	input, err := filepath.Abs(opts.Input)
	if err != nil {
		return Result{Status: types.ConvertFailed}, fmt.Errorf("resolving input: %w", err)
	}
	if _, err := os.Stat(input); err != nil {
		return Result{Status: types.ConvertFailed}, fmt.Errorf("input file: %w", err)
	}

	output, format, err := resolveOutput(input, opts.Output)
	if err != nil {
		return Result{Status: types.ConvertFailed}, err
	}
	docxTarget := output
	if format == types.FormatDoc {
		docxTarget = strings.TrimSuffix(output, filepath.Ext(output)) + ".docx"
	}

	cfg := style.LoadConfig(opts.StylesPath, w)
	sheet := style.Resolve(cfg)

	status := types.ConvertFallback
	if !opts.FallbackOnly {
		if converted := tryPandoc(input, docxTarget, sheet, opts.Header, w); converted {
			status = types.ConvertPandoc
		}
	}
	if status != types.ConvertPandoc {
		if err := (FallbackConverter{}).Convert(input, docxTarget, sheet, opts.Header); err != nil {
			return Result{Status: types.ConvertFailed}, fmt.Errorf("fallback conversion: %w", err)
		}
	}

	result := Result{Status: status, OutputPath: output, DocxPath: docxTarget}

	if format == types.FormatDoc {
		st, err := tool.Soffice()
		if err != nil {
			return result, fmt.Errorf(".docx written to %s but .doc export needs LibreOffice: %w", docxTarget, err)
		}
		if err := exportDoc(st, docxTarget, output); err != nil {
			return result, fmt.Errorf(".docx written to %s but .doc export failed: %w", docxTarget, err)
		}
	}
	return result, nil
}

// newPandoc constructs the pandoc backend. A package variable so tests can
// substitute a failing converter.
var newPandoc = func() (Converter, error) {
	return NewPandocConverter()
}

// tryPandoc attempts the pandoc path, reporting why it was skipped or failed.
func tryPandoc(input, output string, sheet types.StyleSheet, header string, w io.Writer) bool {
	pc, err := newPandoc()
	if err != nil {
		fmt.Fprintf(w, "pandoc unavailable (%v), using built-in renderer\n", err)
		return false
	}
	if err := pc.Convert(input, output, sheet, header); err != nil {
		fmt.Fprintf(w, "pandoc failed (%v), using built-in renderer\n", err)
		return false
	}
	return true
}

// resolveOutput derives the final output path and format from the input and
// the optional requested output path.
func resolveOutput(input, requested string) (string, types.OutputFormat, error) {
	if requested == "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return filepath.Join(filepath.Dir(input), base+".docx"), types.FormatDocx, nil
	}
	abs, err := filepath.Abs(requested)
	if err != nil {
		return "", "", fmt.Errorf("resolving output: %w", err)
	}
	switch format := types.OutputFormat(strings.ToLower(filepath.Ext(abs))); format {
	case types.FormatDocx, types.FormatDoc:
		return abs, format, nil
	default:
		return "", "", fmt.Errorf("unsupported output format %q: only .docx and .doc are supported", filepath.Ext(abs))
	}
}
