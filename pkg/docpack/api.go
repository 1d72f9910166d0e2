// Package docpack models an OOXML (WordprocessingML) document package:
// its parts, the typed relationships between them, and the services a part
// brokers on behalf of its content objects.
//
// Basic Usage:
//
//	pkg, err := docpack.OpenPackageFile("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	footers, err := pkg.FooterParts()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, footer := range footers {
//	    // Dependent parts are resolved lazily: a package without a
//	    // styles part gets a default one on first access.
//	    style := footer.GetStyle("Heading1", docpack.StyleTypeParagraph)
//	    fmt.Println(style.Name(), footer.NextID())
//	}
//
//	err = pkg.SaveFile("out.docx")
//
// Parts reached through a relationship that does not exist yet (styles,
// numbering, settings, core properties) are created as defaults and wired
// into the package, matching how the format's implicit defaults behave
// when those parts are omitted.
package docpack

import (
	"fmt"
	"os"
)

// Engine provides the main API for opening packages, with optional
// caching of opened packages by path
type Engine struct {
	cache  *PackageCache
	config *Config
}

// New creates a new Engine with the global configuration
func New() *Engine {
	return NewWithConfig(GetGlobalConfig())
}

// NewWithConfig creates a new Engine with the given configuration
func NewWithConfig(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{
		cache: NewPackageCacheWithConfig(CacheConfig{
			MaxSize: config.CacheMaxSize,
			TTL:     config.CacheTTL,
		}),
		config: config,
	}
}

// Open opens the package at path, bypassing the cache
func (e *Engine) Open(path string) (*Package, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, NewPackageError("open", path, err)
	}
	return OpenPackageFile(path)
}

// OpenCached returns the package cached under path, opening it on a miss.
// The returned package is shared with later callers; open uncached before
// mutating.
func (e *Engine) OpenCached(path string) (*Package, error) {
	return e.cache.Open(path)
}

// Evict drops the package cached under path, if any
func (e *Engine) Evict(path string) {
	e.cache.Remove(path)
}

// Close releases the engine's cached packages
func (e *Engine) Close() error {
	e.cache.Clear()
	return nil
}

// Version returns the library version
func Version() string {
	return fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionPatch)
}

const (
	versionMajor = 0
	versionMinor = 1
	versionPatch = 0
)
