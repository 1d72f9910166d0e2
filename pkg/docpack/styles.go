package docpack

import (
	"encoding/xml"
	"fmt"
)

// StyleType categorizes a style definition
type StyleType string

const (
	StyleTypeParagraph StyleType = "paragraph"
	StyleTypeCharacter StyleType = "character"
	StyleTypeTable     StyleType = "table"
	StyleTypeNumbering StyleType = "numbering"
)

const stylesPartName = "word/styles.xml"

// defaultStylesXML is the content of a synthesized styles part, standing
// in for the format's implicit defaults when a package omits styles.xml.
const defaultStylesXML = xmlDeclaration + `
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:qFormat/>
  </w:style>
  <w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont">
    <w:name w:val="Default Paragraph Font"/>
    <w:uiPriority w:val="1"/>
    <w:semiHidden/>
    <w:unhideWhenUsed/>
  </w:style>
  <w:style w:type="table" w:default="1" w:styleId="TableNormal">
    <w:name w:val="Normal Table"/>
    <w:uiPriority w:val="99"/>
    <w:semiHidden/>
    <w:unhideWhenUsed/>
  </w:style>
</w:styles>`

// Styles represents the w:styles element in styles.xml and provides the
// style query surface used by the part facades
type Styles struct {
	XMLName xml.Name `xml:"styles"`
	Styles  []Style  `xml:"style"`
}

// Style represents a single w:style element
type Style struct {
	XMLName     xml.Name  `xml:"style"`
	Type        StyleType `xml:"type,attr"`
	StyleID     string    `xml:"styleId,attr"`
	DefaultAttr string    `xml:"default,attr"`
	NameElement styleName `xml:"name"`
	RawXML      []byte    `xml:",innerxml"`
}

type styleName struct {
	Val string `xml:"val,attr"`
}

// Name returns the style's human-readable name, e.g. "Heading 1"
func (s *Style) Name() string {
	return s.NameElement.Val
}

// IsDefault reports whether this style is the designated default for its
// style type
func (s *Style) IsDefault() bool {
	switch s.DefaultAttr {
	case "1", "true", "on":
		return true
	}
	return false
}

// parseStyles parses a styles.xml part body
func parseStyles(stylesXML []byte) (*Styles, error) {
	var styles Styles
	if err := xml.Unmarshal(stylesXML, &styles); err != nil {
		return nil, fmt.Errorf("failed to parse styles part: %w", err)
	}
	return &styles, nil
}

// ByID returns the style with the given id, or nil
func (st *Styles) ByID(styleID string) *Style {
	for i := range st.Styles {
		if st.Styles[i].StyleID == styleID {
			return &st.Styles[i]
		}
	}
	return nil
}

// ByName returns the style with the given human-readable name, or nil
func (st *Styles) ByName(name string) *Style {
	for i := range st.Styles {
		if st.Styles[i].Name() == name {
			return &st.Styles[i]
		}
	}
	return nil
}

// DefaultFor returns the designated default style for styleType, or nil
// when the document defines none
func (st *Styles) DefaultFor(styleType StyleType) *Style {
	for i := range st.Styles {
		if st.Styles[i].Type == styleType && st.Styles[i].IsDefault() {
			return &st.Styles[i]
		}
	}
	return nil
}

// GetByID returns the style matching styleID and styleType. It returns the
// default style for styleType if styleID is empty or does not match a
// defined style of styleType; it never fails.
func (st *Styles) GetByID(styleID string, styleType StyleType) *Style {
	if styleID == "" {
		return st.DefaultFor(styleType)
	}
	style := st.ByID(styleID)
	if style == nil || style.Type != styleType {
		return st.DefaultFor(styleType)
	}
	return style
}

// GetStyleID returns the canonical style id of the style of styleType
// matching styleOrName, which may be either a style id or a style name.
// It returns "" if the style resolves to the default for styleType or if
// styleOrName is itself empty. It returns a WrongStyleTypeError when the
// resolved style has a different type, and a StyleNotFoundError when no
// style matches at all.
func (st *Styles) GetStyleID(styleOrName string, styleType StyleType) (string, error) {
	if styleOrName == "" {
		return "", nil
	}
	style := st.ByID(styleOrName)
	if style == nil {
		style = st.ByName(styleOrName)
	}
	if style == nil {
		return "", NewStyleNotFoundError(styleOrName)
	}
	if style.Type != styleType {
		return "", NewWrongStyleTypeError(styleOrName, styleType, style.Type)
	}
	if def := st.DefaultFor(styleType); def != nil && def.StyleID == style.StyleID {
		return "", nil
	}
	return style.StyleID, nil
}

// StylesPart is the package part holding the document's style definitions
type StylesPart struct {
	XmlPart
	styles *Styles
}

// newStylesPart constructs a styles part from persisted content
func newStylesPart(partName string, blob []byte, pkg *Package) (*StylesPart, error) {
	base, err := newXmlPart(partName, ctStyles, blob, pkg)
	if err != nil {
		return nil, err
	}
	styles, err := parseStyles(blob)
	if err != nil {
		return nil, NewPackageError("parse", partName, err)
	}
	return &StylesPart{XmlPart: *base, styles: styles}, nil
}

// DefaultStylesPart creates a styles part seeded with the built-in default
// styles, used when a package has no styles part of its own
func DefaultStylesPart(pkg *Package) *StylesPart {
	part, err := newStylesPart(stylesPartName, []byte(defaultStylesXML), pkg)
	if err != nil {
		// The built-in XML is constant and known-good.
		panic(fmt.Sprintf("docpack: invalid built-in styles part: %v", err))
	}
	return part
}

// Styles returns the style query surface for this part
func (p *StylesPart) Styles() *Styles {
	return p.styles
}
