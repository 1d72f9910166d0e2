package docpack

import "fmt"

const numberingPartName = "word/numbering.xml"

// defaultNumberingXML is the content of a synthesized, empty numbering part
const defaultNumberingXML = xmlDeclaration + `
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:numbering>`

// NumberingPart is the package part holding the document's numbering
// definitions
type NumberingPart struct {
	XmlPart
}

// NumberingDefinition is one concrete numbering instance (a w:num
// element) binding a numbering id to an abstract definition
type NumberingDefinition struct {
	NumID         string
	AbstractNumID string
}

// newNumberingPart constructs a numbering part from persisted content
func newNumberingPart(partName string, blob []byte, pkg *Package) (*NumberingPart, error) {
	base, err := newXmlPart(partName, ctNumbering, blob, pkg)
	if err != nil {
		return nil, err
	}
	return &NumberingPart{XmlPart: *base}, nil
}

// NewNumberingPart creates an empty numbering part, used when a package
// has no numbering part of its own
func NewNumberingPart(pkg *Package) *NumberingPart {
	part, err := newNumberingPart(numberingPartName, []byte(defaultNumberingXML), pkg)
	if err != nil {
		panic(fmt.Sprintf("docpack: invalid built-in numbering part: %v", err))
	}
	return part
}

// Definitions returns the concrete numbering definitions in this part
func (p *NumberingPart) Definitions() []NumberingDefinition {
	var defs []NumberingDefinition
	for _, num := range p.element.FindAll("num") {
		def := NumberingDefinition{}
		def.NumID, _ = num.Attr("numId")
		if abstract := num.Find("abstractNumId"); abstract != nil {
			def.AbstractNumID, _ = abstract.Attr("val")
		}
		defs = append(defs, def)
	}
	return defs
}
