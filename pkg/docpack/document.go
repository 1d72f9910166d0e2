package docpack

// DocumentPart is the main document part of a WordprocessingML package.
// Like FooterPart it brokers access to the styles, numbering, and settings
// parts on behalf of the content objects it contains.
type DocumentPart struct {
	storyPart
}

// newDocumentPart constructs a main document part from persisted content
func newDocumentPart(partName string, blob []byte, pkg *Package) (*DocumentPart, error) {
	base, err := newXmlPart(partName, ctDocument, blob, pkg)
	if err != nil {
		return nil, err
	}
	return &DocumentPart{storyPart: storyPart{XmlPart: *base}}, nil
}

// Body returns the document body content view for this part
func (p *DocumentPart) Body() *DocumentBody {
	return &DocumentBody{element: p.element, part: p}
}

// DocumentBody is a view object over the main document part's content
type DocumentBody struct {
	element *Element
	part    *DocumentPart
}

// Part returns the document part this view was constructed from
func (b *DocumentBody) Part() *DocumentPart {
	return b.part
}

// Paragraphs returns the text of each paragraph in the body, in document
// order
func (b *DocumentBody) Paragraphs() []string {
	var paragraphs []string
	for _, p := range b.element.FindAll("p") {
		text := ""
		for _, t := range p.FindAll("t") {
			text += t.InnerText()
		}
		paragraphs = append(paragraphs, text)
	}
	return paragraphs
}
