/*
Package glyphstore resolves characters to glyph bitmaps and metrics of
pre-rasterized bitmap fonts.

Fonts are laid out on disk as

	<root>/<font>/size_<size>/metadata.json
	<root>/<font>/size_<size>/<code in lowercase hex>.bmp

A character is mapped to a numeric code by a substitution table, which
defaults to the character's Unicode code point. Substitutions let visually
equivalent characters share a glyph file.

A missing metadata file is an error: text cannot be laid out without
metrics. A missing glyph file is not: the character simply has no bitmap.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package glyphstore

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/fisboard/core/bitmap"
	"github.com/npillmayer/fisboard/core/font"
	"github.com/npillmayer/fisboard/core/font/fontregistry"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/bmp"
)

// tracer traces with key 'fisboard.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fisboard.fonts")
}

// Store gives access to the bitmap fonts below a root directory.
// A Store is safe to share between goroutines as long as its substitution
// table is not modified after construction.
type Store struct {
	root     string
	subst    map[rune]int
	registry *fontregistry.Registry
}

// Option configures a Store.
type Option func(*Store)

// WithSubstitutions sets the character substitution table. Characters found
// in the table are resolved to the mapped code instead of their code point.
func WithSubstitutions(subst map[rune]int) Option {
	return func(s *Store) {
		s.subst = make(map[rune]int, len(subst))
		for r, code := range subst {
			s.subst[r] = code
		}
	}
}

// WithRegistry lets a store use a metadata cache owned by the caller.
func WithRegistry(fr *fontregistry.Registry) Option {
	return func(s *Store) {
		if fr != nil {
			s.registry = fr
		}
	}
}

// New creates a glyph store for fonts located below root.
func New(root string, opts ...Option) *Store {
	s := &Store{root: root}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = fontregistry.NewRegistry()
	}
	return s
}

// Root returns the font root directory.
func (s *Store) Root() string {
	return s.root
}

// Registry returns the metadata cache of the store.
func (s *Store) Registry() *fontregistry.Registry {
	return s.registry
}

// CharCode maps a character to the code its glyph is stored under.
func (s *Store) CharCode(r rune) int {
	if code, ok := s.subst[r]; ok {
		return code
	}
	return int(r)
}

// FontDir returns the directory holding glyphs and metadata of a font at a size.
func (s *Store) FontDir(fontname string, size int) string {
	return filepath.Join(s.root, fontname, "size_"+strconv.Itoa(size))
}

// GlyphPath returns the location of the bitmap for a character code.
func (s *Store) GlyphPath(fontname string, size, code int) string {
	return filepath.Join(s.FontDir(fontname, size), fmt.Sprintf("%x.bmp", code))
}

// Metadata returns the metrics table of a font at a size. Tables are loaded
// once and then served from the store's registry.
func (s *Store) Metadata(fontname string, size int) (*font.Metadata, error) {
	return s.registry.Metadata(fontname, size, func() (*font.Metadata, error) {
		return font.LoadMetadata(filepath.Join(s.FontDir(fontname, size), font.MetadataFilename))
	})
}

// Reload forces the metrics table of a font at a size to be read again.
func (s *Store) Reload(fontname string, size int) (*font.Metadata, error) {
	return s.registry.Reload(fontname, size, func() (*font.Metadata, error) {
		return font.LoadMetadata(filepath.Join(s.FontDir(fontname, size), font.MetadataFilename))
	})
}

// Glyph loads the bitmap for a character code.
//
// If there is no glyph file, Glyph returns (nil, false, nil). A glyph file
// which exists but cannot be decoded is reported as an error.
func (s *Store) Glyph(fontname string, size, code int) (*image.Gray, bool, error) {
	path := s.GlyphPath(fontname, size, code)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			tracer().Debugf("no glyph for code %#x in %s/%d", code, fontname, size)
			return nil, false, nil
		}
		return nil, false, core.WrapError(err, core.EMISSING, "glyph not readable: %s", path)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		tracer().Errorf("cannot decode glyph %s: %v", path, err)
		return nil, false, core.WrapError(err, core.EINVALID, "glyph is not a valid bitmap: %s", path)
	}
	return bitmap.ToGray(img), true, nil
}
