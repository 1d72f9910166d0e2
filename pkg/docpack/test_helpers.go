// test_helpers.go contains functions that are exposed only for testing purposes.
// These should not be used in production code.

package docpack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

type testPackageOptions struct {
	documentXML  string
	footerXML    string
	stylesXML    string
	settingsXML  string
	numberingXML string
	corePropsXML string
}

// TestPackageOption customizes the package produced by BuildTestPackageBytes
type TestPackageOption func(*testPackageOptions)

// WithDocument replaces the default main document part content
func WithDocument(xml string) TestPackageOption {
	return func(o *testPackageOptions) { o.documentXML = xml }
}

// WithFooter adds word/footer1.xml with the given content, related to the
// main document part
func WithFooter(xml string) TestPackageOption {
	return func(o *testPackageOptions) { o.footerXML = xml }
}

// WithStyles adds word/styles.xml with the given content, related to the
// main document part and to the footer part when one is present
func WithStyles(xml string) TestPackageOption {
	return func(o *testPackageOptions) { o.stylesXML = xml }
}

// WithSettings adds word/settings.xml with the given content
func WithSettings(xml string) TestPackageOption {
	return func(o *testPackageOptions) { o.settingsXML = xml }
}

// WithNumbering adds word/numbering.xml with the given content
func WithNumbering(xml string) TestPackageOption {
	return func(o *testPackageOptions) { o.numberingXML = xml }
}

// WithCoreProperties adds docProps/core.xml with the given content
func WithCoreProperties(xml string) TestPackageOption {
	return func(o *testPackageOptions) { o.corePropsXML = xml }
}

const testDocumentXML = xmlDeclaration + `
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r>
        <w:t>Hello World</w:t>
      </w:r>
    </w:p>
  </w:body>
</w:document>`

// BuildTestPackageBytes creates a minimal package in memory with the
// requested parts and the relationship metadata wiring them together
func BuildTestPackageBytes(opts ...TestPackageOption) []byte {
	options := &testPackageOptions{documentXML: testDocumentXML}
	for _, opt := range opts {
		opt(options)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	// Package-level relationships.
	pkgRels := []string{
		`<Relationship Id="rId1" Type="` + string(RTOfficeDocument) + `" Target="word/document.xml"/>`,
	}
	if options.corePropsXML != "" {
		pkgRels = append(pkgRels,
			`<Relationship Id="rId2" Type="`+string(RTCoreProperties)+`" Target="docProps/core.xml"/>`)
	}
	writeTestEntry(w, "_rels/.rels", relsDocument(pkgRels))

	// Dependent-part relationships, carried by the document part and, when
	// a footer is present, by the footer part as well.
	var depRels []string
	rid := 1
	addDep := func(relType RelationshipType, target string) {
		depRels = append(depRels,
			fmt.Sprintf(`<Relationship Id="rId%d" Type="%s" Target="%s"/>`, rid, relType, target))
		rid++
	}
	if options.stylesXML != "" {
		addDep(RTStyles, "styles.xml")
	}
	if options.settingsXML != "" {
		addDep(RTSettings, "settings.xml")
	}
	if options.numberingXML != "" {
		addDep(RTNumbering, "numbering.xml")
	}

	docRels := depRels
	if options.footerXML != "" {
		docRels = append(docRels,
			fmt.Sprintf(`<Relationship Id="rId%d" Type="%s" Target="footer1.xml"/>`, rid, RTFooter))
	}
	writeTestEntry(w, "word/_rels/document.xml.rels", relsDocument(docRels))
	if options.footerXML != "" && len(depRels) > 0 {
		writeTestEntry(w, "word/_rels/footer1.xml.rels", relsDocument(depRels))
	}

	writeTestEntry(w, "word/document.xml", options.documentXML)

	overrides := []string{
		`<Override PartName="/word/document.xml" ContentType="` + ctDocument + `"/>`,
	}
	if options.footerXML != "" {
		writeTestEntry(w, "word/footer1.xml", options.footerXML)
		overrides = append(overrides, `<Override PartName="/word/footer1.xml" ContentType="`+ctFooter+`"/>`)
	}
	if options.stylesXML != "" {
		writeTestEntry(w, "word/styles.xml", options.stylesXML)
		overrides = append(overrides, `<Override PartName="/word/styles.xml" ContentType="`+ctStyles+`"/>`)
	}
	if options.settingsXML != "" {
		writeTestEntry(w, "word/settings.xml", options.settingsXML)
		overrides = append(overrides, `<Override PartName="/word/settings.xml" ContentType="`+ctSettings+`"/>`)
	}
	if options.numberingXML != "" {
		writeTestEntry(w, "word/numbering.xml", options.numberingXML)
		overrides = append(overrides, `<Override PartName="/word/numbering.xml" ContentType="`+ctNumbering+`"/>`)
	}
	if options.corePropsXML != "" {
		writeTestEntry(w, "docProps/core.xml", options.corePropsXML)
		overrides = append(overrides, `<Override PartName="/docProps/core.xml" ContentType="`+ctCoreProperties+`"/>`)
	}

	writeTestEntry(w, contentTypesPartName, xmlDeclaration+`
<Types xmlns="`+contentTypesNamespace+`">
  <Default Extension="rels" ContentType="`+ctRelationships+`"/>
  <Default Extension="xml" ContentType="`+ctXML+`"/>
  `+strings.Join(overrides, "\n  ")+`
</Types>`)

	w.Close()
	return buf.Bytes()
}

// OpenTestPackage opens a package built by BuildTestPackageBytes
func OpenTestPackage(opts ...TestPackageOption) (*Package, error) {
	content := BuildTestPackageBytes(opts...)
	return OpenPackage(bytes.NewReader(content), int64(len(content)))
}

func relsDocument(rels []string) string {
	return xmlDeclaration + `
<Relationships xmlns="` + relationshipsNamespace + `">
  ` + strings.Join(rels, "\n  ") + `
</Relationships>`
}

func writeTestEntry(w *zip.Writer, name, content string) {
	fw, _ := w.Create(name)
	io.WriteString(fw, content)
}
