// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

// buildTestDoc assembles a small styled document by hand.
func buildTestDoc() *Document {
	d := New()
	d.Section = Section{
		PageWidthMM:    210,
		PageHeightMM:   297,
		MarginTopMM:    30,
		MarginBottomMM: 25,
		MarginLeftMM:   30,
		MarginRightMM:  25,
	}
	d.Normal = NamedStyle{
		ID:            "Normal",
		Name:          "Normal",
		EastAsiaFont:  "SimSun",
		AsciiFont:     "Times New Roman",
		SizePt:        12,
		LineSpacingPt: 20,
	}
	d.SetHeadingStyle(1, NamedStyle{EastAsiaFont: "SimHei", AsciiFont: "SimHei", SizePt: 16, Align: "center", SpaceBeforePt: 12, SpaceAfterPt: 12})

	d.AddHeading("Introduction", 1)
	d.AddParagraph("Body text.")
	code := d.AddParagraph("")
	run := code.AddRun("x := 1")
	run.Font = "Consolas"
	return d
}

// readParts unzips a serialized document into part name -> content.
func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestWrite_PackageParts(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(buildTestDoc(), &buf); err != nil {
		t.Fatal(err)
	}

	parts := readParts(t, buf.Bytes())

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/header1.xml",
		"word/footer1.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}
}

func TestWrite_DocumentXML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(buildTestDoc(), &buf); err != nil {
		t.Fatal(err)
	}
	doc := readParts(t, buf.Bytes())["word/document.xml"]

	// A4 at 1440 twips/inch: 210mm -> 11906, 297mm -> 16838.
	for _, want := range []string{
		`<w:pgSz w:w="11906" w:h="16838"/>`,
		`w:top="1701"`,    // 30mm
		`w:bottom="1417"`, // 25mm
		`<w:pStyle w:val="Heading1"/>`,
		`<w:t xml:space="preserve">Introduction</w:t>`,
		`<w:t xml:space="preserve">Body text.</w:t>`,
		`<w:rFonts w:ascii="Consolas"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}
}

func TestWrite_StylesXML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(buildTestDoc(), &buf); err != nil {
		t.Fatal(err)
	}
	styles := readParts(t, buf.Bytes())["word/styles.xml"]

	for _, want := range []string{
		`w:styleId="Normal"`,
		`w:eastAsia="SimSun"`,
		`w:ascii="Times New Roman"`,
		// Exact 20pt line spacing, not "at least".
		`w:line="400" w:lineRule="exact"`,
		`w:styleId="Heading1"`,
		`<w:jc w:val="center">`,
		// 12pt before/after in twips.
		`w:before="240" w:after="240"`,
		// 16pt heading in half-points.
		`<w:sz w:val="32">`,
	} {
		if !strings.Contains(styles, want) {
			t.Errorf("styles.xml missing %s", want)
		}
	}
}

func TestWrite_RunTextEscaped(t *testing.T) {
	d := New()
	d.AddParagraph(`a < b & "c"`)

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatal(err)
	}
	doc := readParts(t, buf.Bytes())["word/document.xml"]

	if !strings.Contains(doc, "a &lt; b &amp; &#34;c&#34;") {
		t.Errorf("text not escaped in %s", doc)
	}
}

func TestWrite_AttributeValuesEscaped(t *testing.T) {
	d := New()
	p := d.AddParagraph("")
	run := p.AddRun("body")
	run.Font = `Sim"Sun & Co`
	hp := d.Header.AddParagraph()
	hr := hp.AddRun("header")
	hr.Font = `Sim"Sun & Co`

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatal(err)
	}
	parts := readParts(t, buf.Bytes())

	// The font name comes from user style config, so every part carrying a
	// run must stay well-formed XML.
	for _, name := range []string{"word/document.xml", "word/header1.xml"} {
		dec := xml.NewDecoder(strings.NewReader(parts[name]))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("%s is not well-formed: %v", name, err)
				break
			}
		}
		if strings.Contains(parts[name], `w:ascii="Sim"Sun`) {
			t.Errorf("%s has unescaped attribute value: %s", name, parts[name])
		}
	}
}

func TestWrite_NewlinesBecomeBreaks(t *testing.T) {
	d := New()
	p := d.AddParagraph("")
	r := p.AddRun("one\ntwo")
	r.Font = "Consolas"

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatal(err)
	}
	doc := readParts(t, buf.Bytes())["word/document.xml"]

	want := `<w:t xml:space="preserve">one</w:t><w:br/><w:t xml:space="preserve">two</w:t>`
	if !strings.Contains(doc, want) {
		t.Errorf("document.xml missing %s in %s", want, doc)
	}
}

func TestWrite_HeaderFooterParts(t *testing.T) {
	d := buildTestDoc()
	hp := d.Header.AddParagraph()
	run := hp.AddRun("My Thesis")
	run.Font = "SimSun"
	run.SizePt = 9

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatal(err)
	}
	parts := readParts(t, buf.Bytes())

	header := parts["word/header1.xml"]
	if !strings.Contains(header, "My Thesis") {
		t.Errorf("header1.xml missing header text: %s", header)
	}
	if !strings.Contains(header, `<w:sz w:val="18"/>`) {
		t.Errorf("header run size not written: %s", header)
	}

	docXML := parts["word/document.xml"]
	if !strings.Contains(docXML, `<w:headerReference w:type="default" r:id="rId2"/>`) {
		t.Errorf("sectPr missing header reference: %s", docXML)
	}
}
