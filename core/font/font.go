/*
Package font is for pre-rasterized bitmap fonts.

A font is identified by a name and a size index. For each (name, size)
combination there is a directory holding one bitmap per glyph and a metadata
file, which maps character codes to the glyph's advance width and height.
Nothing in this module scales or rasterizes outlines: glyphs are used as they
are found on disk.

The metadata file is JSON:

	{ "char_sizes": { "65": [8, 14], "66": [8, 14] } }

Keys are decimal character codes, values are [advance_width, glyph_height].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package font

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/schuko/tracing"
)

// MetadataFilename is the name of the metadata file within a font size directory.
const MetadataFilename = "metadata.json"

// tracer traces with key 'fisboard.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fisboard.fonts")
}

// CharSize holds the metrics of a single glyph.
type CharSize struct {
	Width  int // advance width in pixels
	Height int // glyph height in pixels
}

// Metadata is the metrics table of a font at a given size.
// It is immutable after loading.
type Metadata struct {
	Font      string
	Size      int
	CharSizes map[int]CharSize
}

// CharSize returns the metrics for a character code, if present.
func (m *Metadata) CharSize(code int) (CharSize, bool) {
	if m == nil {
		return CharSize{}, false
	}
	cs, ok := m.CharSizes[code]
	return cs, ok
}

type metadataFile struct {
	CharSizes map[string][]int `json:"char_sizes"`
}

// ParseMetadata decodes a metadata table from r.
// Font and Size of the result are left for the caller to fill in.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	var mf metadataFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font metadata is not valid JSON")
	}
	if mf.CharSizes == nil {
		return nil, core.Error(core.EINVALID, "font metadata has no char_sizes table")
	}
	m := &Metadata{CharSizes: make(map[int]CharSize, len(mf.CharSizes))}
	for key, pair := range mf.CharSizes {
		code, err := strconv.Atoi(key)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "font metadata key %q is not a decimal character code", key)
		}
		if len(pair) != 2 {
			return nil, core.Error(core.EINVALID, "font metadata entry %q must be [width, height], is %v", key, pair)
		}
		m.CharSizes[code] = CharSize{Width: pair[0], Height: pair[1]}
	}
	return m, nil
}

// LoadMetadata reads and parses a metadata file.
// A missing file results in an error with code core.EMISSING.
func LoadMetadata(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("cannot open font metadata %s", path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.WrapError(err, core.EMISSING, "font metadata not found: %s", path)
		}
		return nil, core.WrapError(err, core.EMISSING, "font metadata not readable: %s", path)
	}
	defer f.Close()
	m, err := ParseMetadata(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("loaded %d char sizes from %s", len(m.CharSizes), path)
	return m, nil
}
