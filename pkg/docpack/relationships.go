package docpack

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// RelationshipType identifies the kind of a typed edge between two parts.
// Values are the full OPC relationship type URIs as persisted in the
// package's .rels metadata.
type RelationshipType string

const (
	RTOfficeDocument RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RTStyles         RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RTNumbering      RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RTSettings       RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RTFooter         RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	RTHeader         RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	RTHyperlink      RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RTImage          RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RTFontTable      RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable"
	RTTheme          RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RTCoreProperties RelationshipType = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

const relationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"

// Relationship represents a single typed edge in the package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships originating
// from one source part (or from the package itself)
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// parseRelationships parses the content of a .rels part
func parseRelationships(data []byte) (*Relationships, error) {
	var rels Relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	return &rels, nil
}

// newRelationships creates an empty relationship collection
func newRelationships() *Relationships {
	return &Relationships{Namespace: relationshipsNamespace}
}

// FindByType returns the first relationship of the given type, or nil
// when no such edge exists. Singleton relationship types (styles,
// numbering, settings) have at most one matching edge per source.
func (r *Relationships) FindByType(relType RelationshipType) *Relationship {
	for i := range r.Relationship {
		if r.Relationship[i].Type == string(relType) {
			return &r.Relationship[i]
		}
	}
	return nil
}

// FindByID returns the relationship with the given rId, or nil
func (r *Relationships) FindByID(id string) *Relationship {
	for i := range r.Relationship {
		if r.Relationship[i].ID == id {
			return &r.Relationship[i]
		}
	}
	return nil
}

// nextRelationshipID returns the next free rId value, computed by
// incrementing the highest numeric suffix already in use
func (r *Relationships) nextRelationshipID() string {
	maxID := 0
	for _, rel := range r.Relationship {
		if strings.HasPrefix(rel.ID, "rId") {
			numStr := strings.TrimPrefix(rel.ID, "rId")
			if num, err := strconv.Atoi(numStr); err == nil && num > maxID {
				maxID = num
			}
		}
	}
	return fmt.Sprintf("rId%d", maxID+1)
}

// Add appends a new relationship of the given type targeting the given
// (source-relative) target, assigning it a fresh rId
func (r *Relationships) Add(relType RelationshipType, target string) *Relationship {
	newRel := Relationship{
		ID:     r.nextRelationshipID(),
		Type:   string(relType),
		Target: target,
	}
	r.Relationship = append(r.Relationship, newRel)
	return &r.Relationship[len(r.Relationship)-1]
}

// Marshal serializes the relationship collection as a .rels part body,
// including the XML declaration Word requires
func (r *Relationships) Marshal() ([]byte, error) {
	if r.Namespace == "" {
		r.Namespace = relationshipsNamespace
	}
	output, err := xml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal relationships: %w", err)
	}
	return append([]byte(xmlDeclaration+"\n"), output...), nil
}
