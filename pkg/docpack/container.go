package docpack

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// packageReader handles reading the zip container of an OPC package
type packageReader struct {
	reader  *zip.Reader
	entries map[string]*zip.File
}

// newPackageReader opens the zip container and indexes its entries
func newPackageReader(r io.ReaderAt, size int64) (*packageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pr := &packageReader{
		reader:  zipReader,
		entries: make(map[string]*zip.File),
	}

	for _, file := range zipReader.File {
		// Directory entries carry no part content.
		if strings.HasSuffix(file.Name, "/") {
			continue
		}
		pr.entries[file.Name] = file
	}

	// A well-formed package carries its content-type index.
	if _, ok := pr.entries[contentTypesPartName]; !ok {
		return nil, fmt.Errorf("not a valid package: missing %s", contentTypesPartName)
	}

	return pr, nil
}

// readEntry retrieves the raw content of a zip entry
func (pr *packageReader) readEntry(name string) ([]byte, error) {
	file, ok := pr.entries[name]
	if !ok {
		return nil, NewPartNotFoundError(name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", name, err)
	}

	return content, nil
}

// relsPartName converts a part name to its relationships part name,
// e.g. "word/footer1.xml" -> "word/_rels/footer1.xml.rels". The empty
// source name denotes the package level, whose edges live in "_rels/.rels".
func relsPartName(partName string) string {
	if partName == "" {
		return "_rels/.rels"
	}
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}
	if dir == "" {
		return fmt.Sprintf("_rels/%s.rels", base)
	}
	return fmt.Sprintf("%s/_rels/%s.rels", dir, base)
}

// relsSourceName is the inverse of relsPartName: given a .rels entry name
// it returns the source part name, or ("", false) when the name is not a
// relationships part
func relsSourceName(relsName string) (string, bool) {
	if relsName == "_rels/.rels" {
		return "", true
	}
	if !strings.HasSuffix(relsName, ".rels") {
		return "", false
	}
	dir, base := path.Split(relsName)
	dir = strings.TrimSuffix(dir, "/")
	if !strings.HasSuffix(dir, "_rels") {
		return "", false
	}
	parent := strings.TrimSuffix(strings.TrimSuffix(dir, "_rels"), "/")
	source := strings.TrimSuffix(base, ".rels")
	if parent == "" {
		return source, true
	}
	return parent + "/" + source, true
}

// resolveTarget resolves a relationship target, which is stored relative
// to its source part's directory, into an absolute part name
func resolveTarget(sourcePartName, target string) string {
	target = strings.TrimPrefix(target, "/")
	dir := ""
	if idx := strings.LastIndex(sourcePartName, "/"); idx != -1 {
		dir = sourcePartName[:idx]
	}
	return path.Clean(path.Join(dir, target))
}

// relativeTarget converts an absolute part name into a target relative to
// the source part's directory, as persisted in .rels metadata
func relativeTarget(sourcePartName, targetPartName string) string {
	dir := ""
	if idx := strings.LastIndex(sourcePartName, "/"); idx != -1 {
		dir = sourcePartName[:idx]
	}
	if dir == "" {
		return targetPartName
	}
	if rel, err := filepathRel(dir, targetPartName); err == nil {
		return rel
	}
	return targetPartName
}

func filepathRel(baseDir, target string) (string, error) {
	if strings.HasPrefix(target, baseDir+"/") {
		return strings.TrimPrefix(target, baseDir+"/"), nil
	}
	// Walk up from baseDir until target becomes reachable.
	up := ""
	for dir := baseDir; dir != "" && dir != "."; dir = path.Dir(dir) {
		up += "../"
		parent := path.Dir(dir)
		prefix := parent + "/"
		if parent == "." || parent == "" {
			return up + target, nil
		}
		if strings.HasPrefix(target, prefix) {
			return up + strings.TrimPrefix(target, prefix), nil
		}
	}
	return "", fmt.Errorf("no relative path from %s to %s", baseDir, target)
}
