package docpack

// Part is implemented by every constituent unit of a document package.
// A part knows its package-internal name and content type and can
// serialize itself for persistence.
type Part interface {
	PartName() string
	ContentType() string
	Blob() ([]byte, error)
}

// XmlPart is the base for parts whose content is an XML subtree. It holds
// a non-owning back-reference to the package so a part can broker services
// (relationship lookup, persistence) without owning its container.
type XmlPart struct {
	partName    string
	contentType string
	element     *Element
	pkg         *Package
	blob        []byte
	dirty       bool
}

func newXmlPart(partName, contentType string, blob []byte, pkg *Package) (*XmlPart, error) {
	element, err := ParseElement(blob)
	if err != nil {
		return nil, NewPackageError("parse", partName, err)
	}
	return &XmlPart{
		partName:    partName,
		contentType: contentType,
		element:     element,
		pkg:         pkg,
		blob:        blob,
	}, nil
}

// PartName returns the package-internal name of this part, e.g.
// "word/footer1.xml"
func (p *XmlPart) PartName() string {
	return p.partName
}

// ContentType returns the content type registered for this part
func (p *XmlPart) ContentType() string {
	return p.contentType
}

// Element returns the root of this part's XML subtree
func (p *XmlPart) Element() *Element {
	return p.element
}

// Package returns the package owning this part
func (p *XmlPart) Package() *Package {
	return p.pkg
}

// Blob serializes the part content. Unmodified parts round-trip their
// original bytes; modified parts are re-serialized from the element tree.
func (p *XmlPart) Blob() ([]byte, error) {
	if !p.dirty && p.blob != nil {
		return p.blob, nil
	}
	body, err := p.element.Marshal()
	if err != nil {
		return nil, NewPackageError("serialize", p.partName, err)
	}
	return append([]byte(xmlDeclaration+"\n"), body...), nil
}

// markDirty records that the element tree no longer matches the original
// blob, forcing re-serialization on save
func (p *XmlPart) markDirty() {
	p.dirty = true
}

// relateTo creates a typed edge from this part to target, registering
// target with the package, and returns the assigned rId
func (p *XmlPart) relateTo(target Part, relType RelationshipType) string {
	return p.pkg.RelateTo(p.partName, target, relType)
}

// partRelatedBy returns the part this one is related to by relType
func (p *XmlPart) partRelatedBy(relType RelationshipType) (Part, error) {
	return p.pkg.PartRelatedBy(p.partName, relType)
}

// NextID returns the next available positive integer id value in this
// part's subtree. Calculated by incrementing the maximum existing id
// value; gaps in the existing id sequence are not filled. The id attribute
// value is unique within the part without regard to the element type it
// appears on, and values that are not non-negative integers are ignored.
// Each call re-scans the subtree, so the result always reflects the
// latest mutations.
func (p *XmlPart) NextID() int {
	maxID := 0
	found := false
	for _, value := range p.element.AttrValues("id") {
		n, ok := parseNonNegativeInt(value)
		if !ok {
			continue
		}
		found = true
		if n > maxID {
			maxID = n
		}
	}
	if !found {
		return 1
	}
	return maxID + 1
}

// binaryPart carries opaque, non-XML content (media, fonts) unchanged
type binaryPart struct {
	partName    string
	contentType string
	blob        []byte
}

func (p *binaryPart) PartName() string      { return p.partName }
func (p *binaryPart) ContentType() string   { return p.contentType }
func (p *binaryPart) Blob() ([]byte, error) { return p.blob, nil }

// parseNonNegativeInt reports whether s consists solely of ASCII digits
// and, if so, its integer value
func parseNonNegativeInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
