package docpack

import (
	"container/list"
	"sync"
	"time"
)

// CacheConfig contains configuration options for the package cache
type CacheConfig struct {
	// MaxSize is the maximum number of packages to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached packages. 0 means no expiration.
	TTL time.Duration
}

// PackageCache provides LRU caching of opened packages, keyed by path.
// Callers that mutate a cached package should remove it from the cache or
// open uncached; the cache itself never invalidates on mutation.
type PackageCache struct {
	mu     sync.RWMutex
	cache  map[string]*cacheEntry
	lru    *list.List
	config CacheConfig
}

type cacheEntry struct {
	key     string
	pkg     *Package
	expiry  time.Time
	element *list.Element
}

// NewPackageCache creates a new package cache using the global
// configuration
func NewPackageCache() *PackageCache {
	config := GetGlobalConfig()
	return NewPackageCacheWithConfig(CacheConfig{
		MaxSize: config.CacheMaxSize,
		TTL:     config.CacheTTL,
	})
}

// NewPackageCacheWithConfig creates a new package cache with the given
// configuration
func NewPackageCacheWithConfig(config CacheConfig) *PackageCache {
	return &PackageCache{
		cache:  make(map[string]*cacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// Open retrieves the package cached under path, opening and caching it on
// a miss
func (pc *PackageCache) Open(path string) (*Package, error) {
	if pc.config.MaxSize == 0 {
		return OpenPackageFile(path)
	}

	if pkg, ok := pc.Get(path); ok {
		return pkg, nil
	}

	pkg, err := OpenPackageFile(path)
	if err != nil {
		return nil, err
	}
	pc.Set(path, pkg)
	return pkg, nil
}

// Get retrieves a package from the cache without opening a new one
func (pc *PackageCache) Get(key string) (*Package, bool) {
	pc.mu.RLock()
	entry, exists := pc.cache[key]
	pc.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if pc.config.TTL > 0 && time.Now().After(entry.expiry) {
		pc.Remove(key)
		return nil, false
	}

	pc.mu.Lock()
	pc.lru.MoveToFront(entry.element)
	pc.mu.Unlock()

	return entry.pkg, true
}

// Set adds a package to the cache
func (pc *PackageCache) Set(key string, pkg *Package) {
	if pc.config.MaxSize == 0 {
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if existing, exists := pc.cache[key]; exists {
		existing.pkg = pkg
		if pc.config.TTL > 0 {
			existing.expiry = time.Now().Add(pc.config.TTL)
		}
		pc.lru.MoveToFront(existing.element)
		return
	}

	if pc.lru.Len() >= pc.config.MaxSize {
		oldest := pc.lru.Back()
		if oldest != nil {
			oldEntry := oldest.Value.(*cacheEntry)
			delete(pc.cache, oldEntry.key)
			pc.lru.Remove(oldest)
		}
	}

	entry := &cacheEntry{
		key: key,
		pkg: pkg,
	}
	if pc.config.TTL > 0 {
		entry.expiry = time.Now().Add(pc.config.TTL)
	}
	entry.element = pc.lru.PushFront(entry)
	pc.cache[key] = entry
}

// Remove removes a package from the cache
func (pc *PackageCache) Remove(key string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	entry, exists := pc.cache[key]
	if !exists {
		return
	}
	delete(pc.cache, key)
	pc.lru.Remove(entry.element)
}

// Clear removes all packages from the cache
func (pc *PackageCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.cache = make(map[string]*cacheEntry)
	pc.lru = list.New()
}

// Size returns the current number of cached packages
func (pc *PackageCache) Size() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.cache)
}
