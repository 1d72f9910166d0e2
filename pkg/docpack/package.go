package docpack

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Package is the top-level container coordinating all parts, their
// relationships, and persistence. It exclusively owns every part reachable
// from it; parts hold non-owning back-references for upward delegation.
type Package struct {
	blobs        map[string][]byte         // raw content by part name
	rels         map[string]*Relationships // keyed by source part name, "" = package level
	parts        map[string]Part           // typed parts, constructed on demand
	contentTypes *ContentTypes
}

// NewPackage creates an empty in-memory package
func NewPackage() *Package {
	return &Package{
		blobs:        make(map[string][]byte),
		rels:         make(map[string]*Relationships),
		parts:        make(map[string]Part),
		contentTypes: newContentTypes(),
	}
}

// OpenPackage reads a package from zip container content
func OpenPackage(r io.ReaderAt, size int64) (*Package, error) {
	reader, err := newPackageReader(r, size)
	if err != nil {
		return nil, NewPackageError("open", "", err)
	}

	pkg := NewPackage()

	for name := range reader.entries {
		content, err := reader.readEntry(name)
		if err != nil {
			return nil, NewPackageError("open", name, err)
		}

		if name == contentTypesPartName {
			ct, err := parseContentTypes(content)
			if err != nil {
				return nil, NewPackageError("open", name, err)
			}
			pkg.contentTypes = ct
			continue
		}

		if source, ok := relsSourceName(name); ok {
			rels, err := parseRelationships(content)
			if err != nil {
				return nil, NewPackageError("open", name, err)
			}
			pkg.rels[source] = rels
			continue
		}

		pkg.blobs[name] = content
	}

	return pkg, nil
}

// OpenPackageFile reads a package from a filesystem location
func OpenPackageFile(path string) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewPackageError("open", path, err)
	}
	return OpenPackage(bytes.NewReader(content), int64(len(content)))
}

// PartNames returns the names of all parts in the package, sorted
func (pkg *Package) PartNames() []string {
	seen := make(map[string]bool, len(pkg.blobs)+len(pkg.parts))
	for name := range pkg.blobs {
		seen[name] = true
	}
	for name := range pkg.parts {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RelationshipsOf returns the relationship collection originating from the
// given source part name ("" for the package level), creating an empty one
// if none exists yet
func (pkg *Package) RelationshipsOf(source string) *Relationships {
	rels, ok := pkg.rels[source]
	if !ok {
		rels = newRelationships()
		pkg.rels[source] = rels
	}
	return rels
}

// RelationshipSources returns the source part names that carry outbound
// relationships, sorted, with "" denoting the package level
func (pkg *Package) RelationshipSources() []string {
	sources := make([]string, 0, len(pkg.rels))
	for source, rels := range pkg.rels {
		if len(rels.Relationship) == 0 {
			continue
		}
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// PartRelatedBy returns the part related to source by relType. It returns
// a RelationshipNotFoundError when no edge of that type exists, and a
// PartNotFoundError when the edge exists but its target has no content
// (a dangling relationship).
func (pkg *Package) PartRelatedBy(source string, relType RelationshipType) (Part, error) {
	rels, ok := pkg.rels[source]
	if !ok {
		return nil, NewRelationshipNotFoundError(source, relType)
	}
	rel := rels.FindByType(relType)
	if rel == nil || rel.TargetMode == "External" {
		return nil, NewRelationshipNotFoundError(source, relType)
	}
	target := resolveTarget(source, rel.Target)
	return pkg.partByName(target, relType)
}

// RelateTo registers target with the package and records a typed edge
// from source ("" for the package level) to it, returning the new rId.
// The caller is responsible for the singleton discipline: dependent-part
// types get at most one edge per source, which holds because every
// creation site first consults PartRelatedBy.
func (pkg *Package) RelateTo(source string, target Part, relType RelationshipType) string {
	pkg.registerPart(target)
	rels := pkg.RelationshipsOf(source)
	rel := rels.Add(relType, relativeTarget(source, target.PartName()))
	GetLogger().Debug("related %q to %s via %s", source, target.PartName(), rel.ID)
	return rel.ID
}

// registerPart makes target reachable by name and included in saves
func (pkg *Package) registerPart(target Part) {
	pkg.parts[target.PartName()] = target
	pkg.contentTypes.Register(target.PartName(), target.ContentType())
}

// partByName returns the typed part with the given name, constructing and
// caching it on first access. relType guides which part kind to build.
func (pkg *Package) partByName(name string, relType RelationshipType) (Part, error) {
	if part, ok := pkg.parts[name]; ok {
		return part, nil
	}
	blob, ok := pkg.blobs[name]
	if !ok {
		return nil, NewPartNotFoundError(name)
	}
	part, err := pkg.newTypedPart(relType, name, blob)
	if err != nil {
		return nil, err
	}
	pkg.parts[name] = part
	return part, nil
}

// newTypedPart constructs the part kind associated with relType
func (pkg *Package) newTypedPart(relType RelationshipType, name string, blob []byte) (Part, error) {
	switch relType {
	case RTStyles:
		return newStylesPart(name, blob, pkg)
	case RTNumbering:
		return newNumberingPart(name, blob, pkg)
	case RTSettings:
		return newSettingsPart(name, blob, pkg)
	case RTCoreProperties:
		return newCorePropertiesPart(name, blob, pkg)
	case RTOfficeDocument:
		return newDocumentPart(name, blob, pkg)
	case RTFooter:
		return newFooterPart(name, blob, pkg)
	}
	if strings.HasSuffix(name, ".xml") {
		return newXmlPart(name, pkg.contentTypes.TypeOf(name), blob, pkg)
	}
	return &binaryPart{
		partName:    name,
		contentType: pkg.contentTypes.TypeOf(name),
		blob:        blob,
	}, nil
}

// MainDocumentPart returns the package's main document part, located via
// the package-level officeDocument relationship
func (pkg *Package) MainDocumentPart() (*DocumentPart, error) {
	part, err := pkg.PartRelatedBy("", RTOfficeDocument)
	if err != nil {
		return nil, err
	}
	docPart, ok := part.(*DocumentPart)
	if !ok {
		return nil, fmt.Errorf("officeDocument relationship targets %s, not a document part", part.PartName())
	}
	return docPart, nil
}

// FooterParts returns every footer part related to the main document
func (pkg *Package) FooterParts() ([]*FooterPart, error) {
	docPart, err := pkg.MainDocumentPart()
	if err != nil {
		return nil, err
	}
	rels, ok := pkg.rels[docPart.PartName()]
	if !ok {
		return nil, nil
	}
	var footers []*FooterPart
	for _, rel := range rels.Relationship {
		if rel.Type != string(RTFooter) {
			continue
		}
		part, err := pkg.partByName(resolveTarget(docPart.PartName(), rel.Target), RTFooter)
		if err != nil {
			return nil, err
		}
		if footer, ok := part.(*FooterPart); ok {
			footers = append(footers, footer)
		}
	}
	return footers, nil
}

// CorePropertiesPart returns the package's core-properties part, creating
// a default one if the package has none
func (pkg *Package) CorePropertiesPart() *CorePropertiesPart {
	part, err := pkg.PartRelatedBy("", RTCoreProperties)
	if err == nil {
		if cpPart, ok := part.(*CorePropertiesPart); ok {
			return cpPart
		}
	} else if !IsRelationshipNotFound(err) && !IsPartNotFound(err) {
		GetLogger().Warn("core properties lookup failed, substituting default: %v", err)
	}
	cpPart := DefaultCorePropertiesPart(pkg)
	rels := pkg.RelationshipsOf("")
	if rel := rels.FindByType(RTCoreProperties); rel != nil {
		// Repair a dangling edge in place instead of duplicating it.
		pkg.registerPart(cpPart)
		rel.Target = cpPart.PartName()
		return cpPart
	}
	pkg.RelateTo("", cpPart, RTCoreProperties)
	return cpPart
}

// CoreProperties returns read/write access to the package's core document
// properties (title, author, created, ...)
func (pkg *Package) CoreProperties() *CoreProperties {
	return pkg.CorePropertiesPart().Props()
}

// SaveFile saves this package to a filesystem location
func (pkg *Package) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewPackageError("save", path, err)
	}
	defer f.Close()
	if err := pkg.Save(f); err != nil {
		return err
	}
	return f.Close()
}
