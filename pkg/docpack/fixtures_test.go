package docpack

import "encoding/xml"

// Shared XML fixtures for package tests.

const testStylesXML = xmlDeclaration + `
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="Heading 1"/>
    <w:basedOn w:val="Normal"/>
  </w:style>
  <w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont">
    <w:name w:val="Default Paragraph Font"/>
  </w:style>
  <w:style w:type="character" w:styleId="Strong">
    <w:name w:val="Strong"/>
  </w:style>
  <w:style w:type="table" w:default="1" w:styleId="TableNormal">
    <w:name w:val="Normal Table"/>
  </w:style>
</w:styles>`

// testFooterXML carries id attributes {3, 7, "x", 1} spread across element
// kinds, including one malformed value.
const testFooterXML = xmlDeclaration + `
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:p>
    <w:bookmarkStart w:id="3" w:name="top"/>
    <w:r>
      <w:t>Page </w:t>
    </w:r>
    <w:bookmarkEnd w:id="7"/>
  </w:p>
  <w:p>
    <w:customMark w:id="x"/>
    <w:bookmarkStart w:id="1" w:name="bottom"/>
    <w:r>
      <w:t>of document</w:t>
    </w:r>
  </w:p>
</w:ftr>`

// testEmptyFooterXML carries no id attributes at all
const testEmptyFooterXML = xmlDeclaration + `
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:p>
    <w:r>
      <w:t>plain footer</w:t>
    </w:r>
  </w:p>
</w:ftr>`

const testSettingsXML = xmlDeclaration + `
<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:evenAndOddHeaders/>
</w:settings>`

const testNumberingXML = xmlDeclaration + `
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="0">
    <w:lvl w:ilvl="0"/>
  </w:abstractNum>
  <w:num w:numId="1">
    <w:abstractNumId w:val="0"/>
  </w:num>
</w:numbering>`

const testCorePropsXML = xmlDeclaration + `
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>Quarterly Report</dc:title>
  <dc:creator>Jane Analyst</dc:creator>
  <cp:revision>4</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T09:30:00Z</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">2024-04-15T17:45:00Z</dcterms:modified>
</cp:coreProperties>`

func mustXMLName(local string) xml.Name {
	return xml.Name{Space: wmlNamespace, Local: local}
}

func mustIDAttr(value string) []xml.Attr {
	return []xml.Attr{{Name: xml.Name{Space: wmlNamespace, Local: "id"}, Value: value}}
}

// openFooterPackage opens a test package containing a footer and returns
// the package and its footer part
func openFooterPackage(opts ...TestPackageOption) (*Package, *FooterPart, error) {
	pkg, err := OpenTestPackage(opts...)
	if err != nil {
		return nil, nil, err
	}
	footers, err := pkg.FooterParts()
	if err != nil {
		return nil, nil, err
	}
	if len(footers) != 1 {
		return nil, nil, NewPartNotFoundError("word/footer1.xml")
	}
	return pkg, footers[0], nil
}
