// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	relIDStyles = "rId1"
	relIDHeader = "rId2"
	relIDFooter = "rId3"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>
  <Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>
</Relationships>`

// escape writes s with XML character escaping applied. EscapeText also
// escapes quotes, so the result is safe inside double-quoted attributes.
func escape(b *strings.Builder, s string) {
	xml.EscapeText(b, []byte(s))
}

// attr writes one escaped attribute, leading space included.
func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	escape(b, value)
	b.WriteByte('"')
}

// writeRun emits one w:r. Newlines become w:br and tabs become w:tab,
// matching how office libraries translate run text.
func writeRun(b *strings.Builder, r Run) {
	b.WriteString("<w:r>")
	if r.Font != "" || r.SizePt > 0 {
		b.WriteString("<w:rPr>")
		if r.Font != "" {
			b.WriteString("<w:rFonts")
			attr(b, "w:ascii", r.Font)
			attr(b, "w:hAnsi", r.Font)
			attr(b, "w:eastAsia", r.Font)
			attr(b, "w:cs", r.Font)
			b.WriteString("/>")
		}
		if r.SizePt > 0 {
			half := ptToHalfPoints(r.SizePt)
			fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, half, half)
		}
		b.WriteString("</w:rPr>")
	}
	for i, seg := range strings.Split(r.Text, "\n") {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		for j, piece := range strings.Split(seg, "\t") {
			if j > 0 {
				b.WriteString("<w:tab/>")
			}
			if piece == "" {
				continue
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			escape(b, piece)
			b.WriteString("</w:t>")
		}
	}
	b.WriteString("</w:r>")
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	b.WriteString("<w:p>")
	if p.StyleID != "" || p.LineSpacingPt > 0 {
		b.WriteString("<w:pPr>")
		if p.StyleID != "" {
			b.WriteString("<w:pStyle")
			attr(b, "w:val", p.StyleID)
			b.WriteString("/>")
		}
		if p.LineSpacingPt > 0 {
			fmt.Fprintf(b, `<w:spacing w:line="%d" w:lineRule="exact"/>`, ptToTwips(p.LineSpacingPt))
		}
		b.WriteString("</w:pPr>")
	}
	for _, r := range p.Runs {
		writeRun(b, r)
	}
	b.WriteString("</w:p>")
}

func documentXML(d *Document) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:document xmlns:w="%s" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`, nsMain)
	b.WriteString("<w:body>")
	for _, p := range d.Paragraphs {
		writeParagraph(&b, p)
	}
	b.WriteString("<w:sectPr>")
	fmt.Fprintf(&b, `<w:headerReference w:type="default" r:id="%s"/>`, relIDHeader)
	fmt.Fprintf(&b, `<w:footerReference w:type="default" r:id="%s"/>`, relIDFooter)
	fmt.Fprintf(&b, `<w:pgSz w:w="%d" w:h="%d"/>`,
		mmToTwips(d.Section.PageWidthMM), mmToTwips(d.Section.PageHeightMM))
	fmt.Fprintf(&b, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="%d" w:footer="%d" w:gutter="0"/>`,
		mmToTwips(d.Section.MarginTopMM), mmToTwips(d.Section.MarginRightMM),
		mmToTwips(d.Section.MarginBottomMM), mmToTwips(d.Section.MarginLeftMM),
		mmToTwips(12.7), mmToTwips(12.7))
	b.WriteString("</w:sectPr></w:body></w:document>")
	return []byte(b.String())
}

func headerFooterXML(root string, hf HeaderFooter) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:%s xmlns:w="%s">`, root, nsMain)
	if len(hf.Paragraphs) == 0 {
		// Word requires at least one paragraph per part.
		b.WriteString("<w:p/>")
	}
	for _, p := range hf.Paragraphs {
		writeParagraph(&b, p)
	}
	fmt.Fprintf(&b, "</w:%s>", root)
	return []byte(b.String())
}

// Write serializes the document as a .docx package to w.
func Write(d *Document, w io.Writer) error {
	styles, err := stylesXML(d)
	if err != nil {
		return err
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", documentXML(d)},
		{"word/styles.xml", styles},
		{"word/header1.xml", headerFooterXML("hdr", d.Header)},
		{"word/footer1.xml", headerFooterXML("ftr", d.Footer)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("creating package part %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return fmt.Errorf("writing package part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}

// WriteFile serializes the document to a .docx file at path.
func WriteFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(d, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
