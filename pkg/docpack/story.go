package docpack

import "io"

// storyPart carries the behavior shared by parts that hold running
// document content (the main document part, footers, headers): brokering
// access to the styles, numbering, and settings parts, style resolution,
// id allocation, and save delegation. Content objects reach these services
// through their owning part rather than knowing the package layout.
//
// Dependent-part accessors are computed once per in-memory part instance
// and reused. That is safe because nothing removes or replaces
// relationships after creation; concurrent first access from multiple
// goroutines requires external serialization.
type storyPart struct {
	XmlPart
	stylesPart    *StylesPart
	numberingPart *NumberingPart
	settingsPart  *SettingsPart
}

// StylesPart returns the styles part for this document, creating an empty
// styles part if one is not present
func (sp *storyPart) StylesPart() *StylesPart {
	if sp.stylesPart == nil {
		sp.stylesPart = sp.resolveStylesPart()
	}
	return sp.stylesPart
}

func (sp *storyPart) resolveStylesPart() *StylesPart {
	part, err := sp.partRelatedBy(RTStyles)
	if err == nil {
		if stylesPart, ok := part.(*StylesPart); ok {
			return stylesPart
		}
	} else if !IsRelationshipNotFound(err) {
		GetLogger().Warn("styles part unreachable from %s, substituting default: %v", sp.partName, err)
	}
	def := DefaultStylesPart(sp.pkg)
	sp.relateDefault(def, RTStyles)
	return def
}

// NumberingPart returns the numbering part providing access to the
// numbering definitions for this document, creating an empty numbering
// part if one is not present
func (sp *storyPart) NumberingPart() *NumberingPart {
	if sp.numberingPart == nil {
		sp.numberingPart = sp.resolveNumberingPart()
	}
	return sp.numberingPart
}

func (sp *storyPart) resolveNumberingPart() *NumberingPart {
	part, err := sp.partRelatedBy(RTNumbering)
	if err == nil {
		if numberingPart, ok := part.(*NumberingPart); ok {
			return numberingPart
		}
	} else if !IsRelationshipNotFound(err) {
		GetLogger().Warn("numbering part unreachable from %s, substituting default: %v", sp.partName, err)
	}
	def := NewNumberingPart(sp.pkg)
	sp.relateDefault(def, RTNumbering)
	return def
}

// SettingsPart returns the settings part holding document-level settings,
// creating a default settings part if one is not present
func (sp *storyPart) SettingsPart() *SettingsPart {
	if sp.settingsPart == nil {
		sp.settingsPart = sp.resolveSettingsPart()
	}
	return sp.settingsPart
}

func (sp *storyPart) resolveSettingsPart() *SettingsPart {
	part, err := sp.partRelatedBy(RTSettings)
	if err == nil {
		if settingsPart, ok := part.(*SettingsPart); ok {
			return settingsPart
		}
	} else if !IsRelationshipNotFound(err) {
		GetLogger().Warn("settings part unreachable from %s, substituting default: %v", sp.partName, err)
	}
	def := DefaultSettingsPart(sp.pkg)
	sp.relateDefault(def, RTSettings)
	return def
}

// relateDefault wires def as the target of this part's relType edge. A
// dangling edge of that type is repaired in place rather than duplicated,
// preserving the one-edge-per-singleton-type invariant.
func (sp *storyPart) relateDefault(def Part, relType RelationshipType) {
	rels := sp.pkg.RelationshipsOf(sp.partName)
	if rel := rels.FindByType(relType); rel != nil {
		sp.pkg.registerPart(def)
		rel.Target = relativeTarget(sp.partName, def.PartName())
		return
	}
	sp.relateTo(def, relType)
}

// Styles returns the style query surface of this document's styles part
func (sp *storyPart) Styles() *Styles {
	return sp.StylesPart().Styles()
}

// GetStyle returns the style in this document matching styleID. It returns
// the default style for styleType if styleID is empty or does not match a
// defined style of styleType.
func (sp *storyPart) GetStyle(styleID string, styleType StyleType) *Style {
	return sp.Styles().GetByID(styleID, styleType)
}

// GetStyleID returns the style id of the style of styleType matching
// styleOrName. It returns "" if the style resolves to the default style
// for styleType or if styleOrName is itself empty. It returns an error if
// styleOrName is a style of the wrong type or names a style not present
// in the document.
func (sp *storyPart) GetStyleID(styleOrName string, styleType StyleType) (string, error) {
	return sp.Styles().GetStyleID(styleOrName, styleType)
}

// Settings returns the settings of this document's settings part
func (sp *storyPart) Settings() *Settings {
	return sp.SettingsPart().Settings()
}

// CoreProperties provides read/write access to the core properties of the
// package owning this part
func (sp *storyPart) CoreProperties() *CoreProperties {
	return sp.pkg.CoreProperties()
}

// Save saves the package owning this part to destination
func (sp *storyPart) Save(destination io.Writer) error {
	return sp.pkg.Save(destination)
}

// SaveFile saves the package owning this part to a filesystem location
func (sp *storyPart) SaveFile(path string) error {
	return sp.pkg.SaveFile(path)
}
