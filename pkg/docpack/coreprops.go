package docpack

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const corePropertiesPartName = "docProps/core.xml"

// CoreProperties provides read/write access to the core document
// properties of a package: the Dublin Core metadata stored in
// docProps/core.xml
type CoreProperties struct {
	Title          string
	Subject        string
	Creator        string
	Keywords       string
	Description    string
	LastModifiedBy string
	Category       string
	ContentStatus  string
	Language       string
	Version        string
	Revision       int
	Created        time.Time
	Modified       time.Time
}

// corePropsXML is the unmarshaling shape for docProps/core.xml. Field tags
// match on local name, so namespace prefixes in the source do not matter.
type corePropsXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Category       string   `xml:"category"`
	ContentStatus  string   `xml:"contentStatus"`
	Language       string   `xml:"language"`
	Version        string   `xml:"version"`
	Revision       string   `xml:"revision"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

// parseCoreProperties parses a docProps/core.xml part body
func parseCoreProperties(blob []byte) (*CoreProperties, error) {
	var raw corePropsXML
	if err := xml.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse core properties: %w", err)
	}
	props := &CoreProperties{
		Title:          raw.Title,
		Subject:        raw.Subject,
		Creator:        raw.Creator,
		Keywords:       raw.Keywords,
		Description:    raw.Description,
		LastModifiedBy: raw.LastModifiedBy,
		Category:       raw.Category,
		ContentStatus:  raw.ContentStatus,
		Language:       raw.Language,
		Version:        raw.Version,
	}
	if raw.Revision != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw.Revision)); err == nil {
			props.Revision = n
		}
	}
	props.Created = parseW3CDTF(raw.Created)
	props.Modified = parseW3CDTF(raw.Modified)
	return props, nil
}

// parseW3CDTF parses the date formats permitted in core properties,
// returning the zero time for empty or malformed values
func parseW3CDTF(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CorePropertiesPart is the package part holding core document properties.
// Its content is always re-serialized from the property values on save.
type CorePropertiesPart struct {
	partName string
	pkg      *Package
	props    *CoreProperties
}

// newCorePropertiesPart constructs a core-properties part from persisted
// content
func newCorePropertiesPart(partName string, blob []byte, pkg *Package) (*CorePropertiesPart, error) {
	props, err := parseCoreProperties(blob)
	if err != nil {
		return nil, NewPackageError("parse", partName, err)
	}
	return &CorePropertiesPart{partName: partName, pkg: pkg, props: props}, nil
}

// DefaultCorePropertiesPart creates an empty core-properties part, used
// when a package has none
func DefaultCorePropertiesPart(pkg *Package) *CorePropertiesPart {
	return &CorePropertiesPart{
		partName: corePropertiesPartName,
		pkg:      pkg,
		props:    &CoreProperties{},
	}
}

// PartName returns the package-internal name of this part
func (p *CorePropertiesPart) PartName() string {
	return p.partName
}

// ContentType returns the content type registered for this part
func (p *CorePropertiesPart) ContentType() string {
	return ctCoreProperties
}

// Props returns the property values held by this part
func (p *CorePropertiesPart) Props() *CoreProperties {
	return p.props
}

// Blob serializes the part content
func (p *CorePropertiesPart) Blob() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(xmlDeclaration)
	sb.WriteString("\n")
	sb.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)

	writeTextElement(&sb, "dc:title", p.props.Title)
	writeTextElement(&sb, "dc:subject", p.props.Subject)
	writeTextElement(&sb, "dc:creator", p.props.Creator)
	writeTextElement(&sb, "cp:keywords", p.props.Keywords)
	writeTextElement(&sb, "dc:description", p.props.Description)
	writeTextElement(&sb, "cp:lastModifiedBy", p.props.LastModifiedBy)
	writeTextElement(&sb, "cp:category", p.props.Category)
	writeTextElement(&sb, "cp:contentStatus", p.props.ContentStatus)
	writeTextElement(&sb, "dc:language", p.props.Language)
	writeTextElement(&sb, "cp:version", p.props.Version)
	if p.props.Revision > 0 {
		writeTextElement(&sb, "cp:revision", strconv.Itoa(p.props.Revision))
	}
	writeDateElement(&sb, "dcterms:created", p.props.Created)
	writeDateElement(&sb, "dcterms:modified", p.props.Modified)

	sb.WriteString(`</cp:coreProperties>`)
	return []byte(sb.String()), nil
}

func writeTextElement(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "<%s>%s</%s>", name, escapeXML(value), name)
}

func writeDateElement(sb *strings.Builder, name string, value time.Time) {
	if value.IsZero() {
		return
	}
	fmt.Fprintf(sb, `<%s xsi:type="dcterms:W3CDTF">%s</%s>`,
		name, value.UTC().Format("2006-01-02T15:04:05Z"), name)
}
