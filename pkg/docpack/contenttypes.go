package docpack

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const contentTypesPartName = "[Content_Types].xml"
const contentTypesNamespace = "http://schemas.openxmlformats.org/package/2006/content-types"

// Part content types for the kinds this library materializes.
const (
	ctDocument       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctFooter         = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	ctHeader         = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ctStyles         = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumbering      = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctSettings       = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctCoreProperties = "application/vnd.openxmlformats-package.core-properties+xml"
	ctRelationships  = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML            = "application/xml"
)

// ContentTypeDefault maps a file extension to a content type
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps a single part name to a content type
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes represents the package's [Content_Types].xml index
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// parseContentTypes parses a [Content_Types].xml part
func parseContentTypes(data []byte) (*ContentTypes, error) {
	var ct ContentTypes
	if err := xml.Unmarshal(data, &ct); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", contentTypesPartName, err)
	}
	return &ct, nil
}

// newContentTypes creates a content-type index with the standard defaults
func newContentTypes() *ContentTypes {
	return &ContentTypes{
		Namespace: contentTypesNamespace,
		Defaults: []ContentTypeDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
	}
}

// TypeOf returns the content type registered for the given part name
func (ct *ContentTypes) TypeOf(partName string) string {
	for _, override := range ct.Overrides {
		if strings.TrimPrefix(override.PartName, "/") == partName {
			return override.ContentType
		}
	}
	ext := strings.TrimPrefix(strings.ToLower(partExtension(partName)), ".")
	for _, def := range ct.Defaults {
		if strings.ToLower(def.Extension) == ext {
			return def.ContentType
		}
	}
	return ""
}

// Register records an override content type for partName, replacing any
// previous registration
func (ct *ContentTypes) Register(partName, contentType string) {
	name := "/" + strings.TrimPrefix(partName, "/")
	for i := range ct.Overrides {
		if ct.Overrides[i].PartName == name {
			ct.Overrides[i].ContentType = contentType
			return
		}
	}
	ct.Overrides = append(ct.Overrides, ContentTypeOverride{
		PartName:    name,
		ContentType: contentType,
	})
}

// Marshal serializes the index, including the XML declaration
func (ct *ContentTypes) Marshal() ([]byte, error) {
	if ct.Namespace == "" {
		ct.Namespace = contentTypesNamespace
	}
	output, err := xml.Marshal(ct)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", contentTypesPartName, err)
	}
	return append([]byte(xmlDeclaration+"\n"), output...), nil
}

func partExtension(partName string) string {
	if idx := strings.LastIndex(partName, "."); idx != -1 {
		return partName[idx:]
	}
	return ""
}
