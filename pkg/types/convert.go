// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertStatus indicates which path produced the output document.
type ConvertStatus string

const (
	// ConvertPandoc means the external pandoc tool produced the output.
	ConvertPandoc ConvertStatus = "pandoc"

	// ConvertFallback means the built-in renderer produced the output.
	ConvertFallback ConvertStatus = "fallback"

	// ConvertFailed means no output document was produced.
	ConvertFailed ConvertStatus = "failed"
)

// OutputFormat is the requested office-document format, derived from the
// output path extension.
type OutputFormat string

const (
	FormatDocx OutputFormat = ".docx"
	FormatDoc  OutputFormat = ".doc"
)
