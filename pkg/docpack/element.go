package docpack

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// wellKnownPrefixes maps namespace URIs to the conventional prefixes used
// when serializing part content. Namespaces outside this table are
// assigned generated prefixes on the root element.
var wellKnownPrefixes = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":          "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":   "r",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":           "mc",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                 "a",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://purl.org/dc/elements/1.1/":                                      "dc",
	"http://purl.org/dc/terms/":                                             "dcterms",
	"http://schemas.openxmlformats.org/package/2006/metadata/core-properties": "cp",
	"http://www.w3.org/2001/XMLSchema-instance":                             "xsi",
}

// Element is a generic XML node. Part content is held in this form so that
// queries that cut across element kinds (such as collecting every id
// attribute in a subtree) do not depend on typed unmarshaling.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
	Text     string
}

// ParseElement parses an XML document body into an element tree
func ParseElement(data []byte) (*Element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var stack []*Element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse part XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name}
			// Copy attributes, dropping namespace declarations; they are
			// re-derived at serialization time.
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, attr)
			}
			if root == nil {
				root = el
			} else if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("failed to parse part XML: no root element")
	}
	return root, nil
}

// AttrValues collects the values of every attribute with the given local
// name anywhere in the subtree, regardless of namespace or element kind.
// Document order is preserved.
func (e *Element) AttrValues(local string) []string {
	var values []string
	e.walk(func(el *Element) {
		for _, attr := range el.Attrs {
			if attr.Name.Local == local {
				values = append(values, attr.Value)
			}
		}
	})
	return values
}

// Attr returns the value of the attribute with the given local name on
// this element only
func (e *Element) Attr(local string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the attribute with the given name on this element
func (e *Element) SetAttr(name xml.Name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name.Local == name.Local && e.Attrs[i].Name.Space == name.Space {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: name, Value: value})
}

// Find returns the first descendant element with the given local name,
// in depth-first document order, or nil
func (e *Element) Find(local string) *Element {
	var found *Element
	e.walk(func(el *Element) {
		if found == nil && el != e && el.Name.Local == local {
			found = el
		}
	})
	return found
}

// FindAll returns every descendant element with the given local name,
// in depth-first document order
func (e *Element) FindAll(local string) []*Element {
	var found []*Element
	e.walk(func(el *Element) {
		if el != e && el.Name.Local == local {
			found = append(found, el)
		}
	})
	return found
}

// AppendChild appends a child element
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// RemoveChildren removes every direct child with the given local name and
// reports whether anything was removed
func (e *Element) RemoveChildren(local string) bool {
	kept := e.Children[:0]
	removed := false
	for _, child := range e.Children {
		if child.Name.Local == local {
			removed = true
			continue
		}
		kept = append(kept, child)
	}
	e.Children = kept
	return removed
}

// InnerText returns the concatenated character data of this element and
// all of its descendants. An element's own text is emitted before its
// children's, so mixed content does not keep its interleaving; part
// content holds text in leaf elements only.
func (e *Element) InnerText() string {
	var sb strings.Builder
	var gather func(el *Element)
	gather = func(el *Element) {
		sb.WriteString(el.Text)
		for _, child := range el.Children {
			gather(child)
		}
	}
	gather(e)
	return sb.String()
}

func (e *Element) walk(visit func(*Element)) {
	visit(e)
	for _, child := range e.Children {
		child.walk(visit)
	}
}

// Marshal serializes the element tree back to XML. Namespace declarations
// are emitted on the root element, using the conventional prefixes for
// known OOXML namespaces and generated ones otherwise.
func (e *Element) Marshal() ([]byte, error) {
	prefixes := make(map[string]string)
	e.collectNamespaces(prefixes)

	var sb strings.Builder
	e.write(&sb, prefixes, true)
	return []byte(sb.String()), nil
}

func (e *Element) collectNamespaces(prefixes map[string]string) {
	e.walk(func(el *Element) {
		registerNamespace(prefixes, el.Name.Space)
		for _, attr := range el.Attrs {
			registerNamespace(prefixes, attr.Name.Space)
		}
	})
}

func registerNamespace(prefixes map[string]string, space string) {
	if space == "" || space == "xml" {
		return
	}
	if _, ok := prefixes[space]; ok {
		return
	}
	if prefix, ok := wellKnownPrefixes[space]; ok {
		prefixes[space] = prefix
		return
	}
	prefixes[space] = fmt.Sprintf("ns%d", len(prefixes)+1)
}

func (e *Element) write(sb *strings.Builder, prefixes map[string]string, isRoot bool) {
	name := qualifiedName(e.Name, prefixes)
	sb.WriteString("<")
	sb.WriteString(name)

	if isRoot {
		// Declarations sorted by URI for deterministic output.
		var spaces []string
		for space := range prefixes {
			spaces = append(spaces, space)
		}
		sort.Strings(spaces)
		for _, space := range spaces {
			fmt.Fprintf(sb, ` xmlns:%s="%s"`, prefixes[space], escapeXML(space))
		}
	}

	for _, attr := range e.Attrs {
		fmt.Fprintf(sb, ` %s="%s"`, qualifiedName(attr.Name, prefixes), escapeXML(attr.Value))
	}

	if len(e.Children) == 0 && e.Text == "" {
		sb.WriteString("/>")
		return
	}

	sb.WriteString(">")
	if e.Text != "" {
		sb.WriteString(escapeXML(e.Text))
	}
	for _, child := range e.Children {
		child.write(sb, prefixes, false)
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">")
}

func qualifiedName(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if name.Space == "xml" {
		return "xml:" + name.Local
	}
	if prefix, ok := prefixes[name.Space]; ok {
		return prefix + ":" + name.Local
	}
	return name.Local
}

func escapeXML(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}
