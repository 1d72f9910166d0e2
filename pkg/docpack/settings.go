package docpack

import (
	"encoding/xml"
	"fmt"
)

const settingsPartName = "word/settings.xml"

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// defaultSettingsXML is the content of a synthesized settings part
const defaultSettingsXML = xmlDeclaration + `
<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:settings>`

// SettingsPart is the package part holding document-level settings
type SettingsPart struct {
	XmlPart
	settings *Settings
}

// newSettingsPart constructs a settings part from persisted content
func newSettingsPart(partName string, blob []byte, pkg *Package) (*SettingsPart, error) {
	base, err := newXmlPart(partName, ctSettings, blob, pkg)
	if err != nil {
		return nil, err
	}
	part := &SettingsPart{XmlPart: *base}
	part.settings = &Settings{part: part}
	return part, nil
}

// DefaultSettingsPart creates a settings part with default content, used
// when a package has no settings part of its own
func DefaultSettingsPart(pkg *Package) *SettingsPart {
	part, err := newSettingsPart(settingsPartName, []byte(defaultSettingsXML), pkg)
	if err != nil {
		panic(fmt.Sprintf("docpack: invalid built-in settings part: %v", err))
	}
	return part
}

// Settings returns the settings query surface for this part
func (p *SettingsPart) Settings() *Settings {
	return p.settings
}

// Settings provides read/write access to document-level settings
type Settings struct {
	part *SettingsPart
}

// OddAndEvenPagesHeaderFooter reports whether the document uses distinct
// headers and footers for odd and even pages (the w:evenAndOddHeaders
// setting). An on/off element present without a val attribute means on.
func (s *Settings) OddAndEvenPagesHeaderFooter() bool {
	el := s.part.element.Find("evenAndOddHeaders")
	if el == nil {
		return false
	}
	val, ok := el.Attr("val")
	if !ok {
		return true
	}
	switch val {
	case "0", "false", "off":
		return false
	}
	return true
}

// SetOddAndEvenPagesHeaderFooter enables or disables distinct odd and
// even page headers and footers
func (s *Settings) SetOddAndEvenPagesHeaderFooter(value bool) {
	s.part.element.RemoveChildren("evenAndOddHeaders")
	if value {
		s.part.element.AppendChild(&Element{
			Name: xml.Name{Space: wmlNamespace, Local: "evenAndOddHeaders"},
		})
	}
	s.part.markDirty()
}
