package docpack

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
)

// Save writes this package to destination as a zip container. Typed parts
// are serialized through their Blob method; parts never touched since load
// round-trip their original bytes. Relationship metadata and the
// content-type index are regenerated from the in-memory state, so edges
// added during this session are persisted.
func (pkg *Package) Save(destination io.Writer) error {
	w := zip.NewWriter(destination)

	ctBlob, err := pkg.contentTypes.Marshal()
	if err != nil {
		return NewPackageError("save", contentTypesPartName, err)
	}
	if err := writeEntry(w, contentTypesPartName, ctBlob); err != nil {
		return err
	}

	// Relationship parts, package level first.
	sources := make([]string, 0, len(pkg.rels))
	for source := range pkg.rels {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		rels := pkg.rels[source]
		if len(rels.Relationship) == 0 {
			continue
		}
		blob, err := rels.Marshal()
		if err != nil {
			return NewPackageError("save", relsPartName(source), err)
		}
		if err := writeEntry(w, relsPartName(source), blob); err != nil {
			return err
		}
	}

	for _, name := range pkg.PartNames() {
		blob, err := pkg.partBlob(name)
		if err != nil {
			return NewPackageError("save", name, err)
		}
		if err := writeEntry(w, name, blob); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return NewPackageError("save", "", err)
	}
	return nil
}

// partBlob returns the bytes to persist for the named part, preferring the
// typed part's serialization when one has been constructed
func (pkg *Package) partBlob(name string) ([]byte, error) {
	if part, ok := pkg.parts[name]; ok {
		return part.Blob()
	}
	if blob, ok := pkg.blobs[name]; ok {
		return blob, nil
	}
	return nil, NewPartNotFoundError(name)
}

func writeEntry(w *zip.Writer, name string, content []byte) error {
	fw, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
