package docpack

// FooterPart is a footer part of a WordprocessingML package. It acts as
// broker to other parts such as the styles, numbering, and settings parts,
// and as a convenient delegate when a content object needs a service
// involving a remote ancestor.
type FooterPart struct {
	storyPart
}

// newFooterPart constructs a footer part from persisted content
func newFooterPart(partName string, blob []byte, pkg *Package) (*FooterPart, error) {
	base, err := newXmlPart(partName, ctFooter, blob, pkg)
	if err != nil {
		return nil, err
	}
	return &FooterPart{storyPart: storyPart{XmlPart: *base}}, nil
}

// Footer returns the footer content view for this part
func (p *FooterPart) Footer() *Footer {
	return &Footer{element: p.element, part: p}
}

// Footer is a view object over a footer part's content, giving read access
// to its block-level text
type Footer struct {
	element *Element
	part    *FooterPart
}

// Part returns the footer part this view was constructed from
func (f *Footer) Part() *FooterPart {
	return f.part
}

// Paragraphs returns the text of each paragraph in the footer, in
// document order
func (f *Footer) Paragraphs() []string {
	var paragraphs []string
	for _, p := range f.element.FindAll("p") {
		text := ""
		for _, t := range p.FindAll("t") {
			text += t.InnerText()
		}
		paragraphs = append(paragraphs, text)
	}
	return paragraphs
}

// Text returns the footer's full text, paragraphs joined by newlines
func (f *Footer) Text() string {
	text := ""
	for i, para := range f.Paragraphs() {
		if i > 0 {
			text += "\n"
		}
		text += para
	}
	return text
}
