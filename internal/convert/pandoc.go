// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/md2office/internal/docx"
	"github.com/pdiddy/md2office/internal/style"
	"github.com/pdiddy/md2office/internal/tool"
	"github.com/pdiddy/md2office/pkg/types"
)

// pandocFrom enables the Markdown extensions the layout depends on.
const pandocFrom = "markdown+tex_math_dollars+pipe_tables+table_captions"

// PandocConverter converts whole documents through the pandoc binary,
// passing the resolved styles via a generated reference.docx.
type PandocConverter struct {
	tool *tool.Tool
}

// NewPandocConverter resolves pandoc on PATH. An error means pandoc is not
// installed; callers fall back to the built-in renderer.
func NewPandocConverter() (*PandocConverter, error) {
	t, err := tool.Pandoc()
	if err != nil {
		return nil, err
	}
	return &PandocConverter{tool: t}, nil
}

// Convert implements Converter.
func (p *PandocConverter) Convert(inputPath, outputPath string, sheet types.StyleSheet, headerText string) error {
	tmpDir, err := os.MkdirTemp("", "md2office-ref-")
	if err != nil {
		return fmt.Errorf("creating reference dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	refPath := filepath.Join(tmpDir, "reference.docx")
	if err := writeReferenceDoc(refPath, sheet, headerText); err != nil {
		return err
	}

	args := []string{
		"--standalone",
		"--from=" + pandocFrom,
		"--reference-doc=" + refPath,
		"-o", outputPath,
		inputPath,
	}
	var stderr bytes.Buffer
	if err := p.tool.Run(args, nil, io.Discard, &stderr); err != nil {
		return fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("pandoc produced no output at %s", outputPath)
	}
	return nil
}

// writeReferenceDoc builds the empty styled document pandoc copies its
// layout from. One empty paragraph forces the style parts to be written.
func writeReferenceDoc(path string, sheet types.StyleSheet, headerText string) error {
	doc := docx.New()
	style.Apply(doc, sheet, headerText)
	doc.AddParagraph("")
	return docx.WriteFile(doc, path)
}
