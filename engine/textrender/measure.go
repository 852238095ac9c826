package textrender

import (
	"strings"

	"github.com/npillmayer/fisboard/core/font"
	"github.com/npillmayer/fisboard/core/font/glyphstore"
)

// Renderer renders text with the fonts of a glyph store.
type Renderer struct {
	store *glyphstore.Store
}

// NewRenderer creates a renderer drawing glyphs from store.
func NewRenderer(store *glyphstore.Store) *Renderer {
	return &Renderer{store: store}
}

// Store returns the glyph store of the renderer.
func (r *Renderer) Store() *glyphstore.Store {
	return r.store
}

// Measure computes the pixel extent of text.
//
// Each line is as wide as the advance widths of its characters plus hSpacing
// between consecutive characters, and as high as its tallest glyph.
// Characters without metrics add no width, but are still separated by
// spacing. The resulting width is that of the widest line, the height is the
// sum of line heights plus vSpacing between lines.
func (r *Renderer) Measure(fontname string, size int, text string, hSpacing, vSpacing int) (w, h int, err error) {
	m, err := r.store.Metadata(fontname, size)
	if err != nil {
		return 0, 0, err
	}
	w, h = r.measure(m, text, hSpacing, vSpacing)
	return w, h, nil
}

func (r *Renderer) measure(m *font.Metadata, text string, hSpacing, vSpacing int) (w, h int) {
	lines := splitLines(text)
	for i, line := range lines {
		lw, lh := r.measureLine(m, line, hSpacing)
		if lw > w {
			w = lw
		}
		h += lh
		if i < len(lines)-1 {
			h += vSpacing
		}
	}
	return
}

func (r *Renderer) measureLine(m *font.Metadata, line string, hSpacing int) (w, h int) {
	n := 0
	for _, ch := range line {
		if cs, ok := m.CharSize(r.store.CharCode(ch)); ok {
			w += cs.Width
			if cs.Height > h {
				h = cs.Height
			}
		}
		n++
	}
	if n > 1 {
		w += (n - 1) * hSpacing
	}
	return
}

// splitLines splits text at line boundaries. Recognized boundaries are CR,
// LF, CR+LF, VT, FF, the information separators FS, GS, RS, NEL, and the
// Unicode line and paragraph separators. A trailing boundary does not start
// another line, and empty text has no lines at all.
func splitLines(text string) []string {
	var lines []string
	var b strings.Builder
	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\r':
			if i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
			fallthrough
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, b.String())
			b.Reset()
		default:
			b.WriteRune(rs[i])
		}
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}
