// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// docRunner is the slice of tool.Tool the export needs; an interface so
// tests can fake the soffice invocation.
type docRunner interface {
	Name() string
	Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// exportDoc converts an existing .docx to .doc with LibreOffice. soffice
// always writes into --outdir under the input's base name, so the produced
// file is renamed onto docPath when the two differ. The intermediate .docx
// is left in place.
func exportDoc(t docRunner, docxPath, docPath string) error {
	absDocx, err := filepath.Abs(docxPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", docxPath, err)
	}
	absDoc, err := filepath.Abs(docPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", docPath, err)
	}
	outDir := filepath.Dir(absDoc)

	args := []string{"--headless", "--convert-to", "doc", absDocx, "--outdir", outDir}
	var stderr bytes.Buffer
	if err := t.Run(args, nil, io.Discard, &stderr); err != nil {
		return fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	base := strings.TrimSuffix(filepath.Base(absDocx), filepath.Ext(absDocx))
	produced := filepath.Join(outDir, base+".doc")
	if produced != absDoc {
		if err := os.Rename(produced, absDoc); err != nil {
			return fmt.Errorf("moving %s: %w", produced, err)
		}
	}

	if _, err := os.Stat(absDoc); err != nil {
		return fmt.Errorf("%s export produced no output: %w", t.Name(), err)
	}
	return nil
}
