// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates Markdown-to-office-document conversion with
// pluggable backends: pandoc when installed, the built-in renderer otherwise,
// and LibreOffice for the optional .doc export step.
// Implements: docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"os"

	"github.com/pdiddy/md2office/internal/builder"
	"github.com/pdiddy/md2office/internal/docx"
	"github.com/pdiddy/md2office/internal/markdown"
	"github.com/pdiddy/md2office/internal/style"
	"github.com/pdiddy/md2office/pkg/types"
)

// Converter produces a .docx file from a Markdown file. The pandoc backend
// and the built-in fallback renderer both implement it.
type Converter interface {
	// Convert reads Markdown at inputPath and writes a .docx at outputPath
	// styled by sheet, with headerText as the page header when non-empty.
	Convert(inputPath, outputPath string, sheet types.StyleSheet, headerText string) error
}

// FallbackConverter is the built-in rendering path: tokenize the source,
// walk the tokens into a document, stamp the style sheet, and serialize.
type FallbackConverter struct{}

// Convert implements Converter.
func (FallbackConverter) Convert(inputPath, outputPath string, sheet types.StyleSheet, headerText string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	tokens := markdown.Parse(source)
	doc := builder.Build(tokens, sheet)
	style.Apply(doc, sheet, headerText)

	return docx.WriteFile(doc, outputPath)
}
