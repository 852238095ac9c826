package fontregistry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/fisboard/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a cache for font metadata, keyed by font name and size.
//
// A registry is owned by its client (usually a glyph store) and is never
// shared implicitly. Entries live until they are invalidated or reloaded.
type Registry struct {
	sync.Mutex
	metadata map[string]*font.Metadata
}

// Loader loads the metadata of a font at a given size.
type Loader func() (*font.Metadata, error)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		metadata: make(map[string]*font.Metadata),
	}
}

// Metadata returns the metadata for a font at a given size.
// If the registry has a cached entry, it is returned. Otherwise load is
// called and its result is cached. Failing loads are not cached, so a
// later call will retry.
func (fr *Registry) Metadata(fontname string, size int, load Loader) (*font.Metadata, error) {
	key := appendSize(fontname, size)
	fr.Lock()
	defer fr.Unlock()
	if m, ok := fr.metadata[key]; ok {
		tracer().Debugf("registry found metadata %s", key)
		return m, nil
	}
	return fr.load(key, fontname, size, load)
}

// Reload drops a cached entry, if any, and loads it again.
func (fr *Registry) Reload(fontname string, size int, load Loader) (*font.Metadata, error) {
	key := appendSize(fontname, size)
	fr.Lock()
	defer fr.Unlock()
	delete(fr.metadata, key)
	return fr.load(key, fontname, size, load)
}

func (fr *Registry) load(key, fontname string, size int, load Loader) (*font.Metadata, error) {
	m, err := load()
	if err != nil {
		tracer().Errorf("registry cannot load metadata %s: %v", key, err)
		return nil, err
	}
	m.Font, m.Size = fontname, size
	tracer().Infof("registry caches metadata %s", key)
	fr.metadata[key] = m
	return m, nil
}

// Invalidate removes the metadata for a font at a given size.
func (fr *Registry) Invalidate(fontname string, size int) {
	fr.Lock()
	defer fr.Unlock()
	delete(fr.metadata, appendSize(fontname, size))
}

// Clear removes all entries.
func (fr *Registry) Clear() {
	fr.Lock()
	defer fr.Unlock()
	fr.metadata = make(map[string]*font.Metadata)
}

// Len returns the number of cached entries.
func (fr *Registry) Len() int {
	fr.Lock()
	defer fr.Unlock()
	return len(fr.metadata)
}

// LogFontList is a helper function to dump the list of cached metadata
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- cached font metadata ---")
	keys := make([]string, 0, len(fr.metadata))
	for k := range fr.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tracer().Infof("font [%s] = %d chars", k, len(fr.metadata[k].CharSizes))
	}
	tracer().Infof("----------------------------")
	tracer().SetTraceLevel(level)
}

func appendSize(fontname string, size int) string {
	return fmt.Sprintf("%s-%d", fontname, size)
}
