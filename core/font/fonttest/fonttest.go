// Package fonttest writes synthetic bitmap fonts for tests.
package fonttest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/npillmayer/fisboard/core/bitmap"
	"github.com/npillmayer/fisboard/core/font"
	"golang.org/x/image/bmp"
)

// Glyph describes a synthetic glyph. Its bitmap is a solid dark
// Width × Height block unless Blank is set.
type Glyph struct {
	Width, Height int
	Advance       int  // metadata width; defaults to Width
	Blank         bool // bitmap is all background
	NoBitmap      bool // do not write a glyph file
	NoMetadata    bool // do not write a metadata entry
}

// Block is a solid glyph of w × h pixels.
func Block(w, h int) Glyph {
	return Glyph{Width: w, Height: h}
}

// Write creates font `name` at `size` below root, with the given glyphs.
// It fails the test on any I/O error.
func Write(t testing.TB, root, name string, size int, glyphs map[rune]Glyph) {
	t.Helper()
	dir := filepath.Join(root, name, "size_"+strconv.Itoa(size))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	sizes := make(map[string][2]int, len(glyphs))
	for r, g := range glyphs {
		if !g.NoMetadata {
			adv := g.Advance
			if adv == 0 {
				adv = g.Width
			}
			sizes[strconv.Itoa(int(r))] = [2]int{adv, g.Height}
		}
		if g.NoBitmap {
			continue
		}
		img := bitmap.New(g.Width, g.Height)
		if !g.Blank {
			for i := range img.Pix {
				img.Pix[i] = bitmap.Foreground
			}
		}
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%x.bmp", r)))
		if err != nil {
			t.Fatal(err)
		}
		err = bmp.Encode(f, img)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
	data, err := json.Marshal(map[string]interface{}{"char_sizes": sizes})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, font.MetadataFilename), data, 0644); err != nil {
		t.Fatal(err)
	}
}

// Latin writes a font where every character of chars is a w × h block,
// plus a space of advance `space` with an empty bitmap.
func Latin(t testing.TB, root, name string, size int, chars string, w, h, space int) {
	t.Helper()
	glyphs := make(map[rune]Glyph)
	for _, r := range chars {
		glyphs[r] = Block(w, h)
	}
	glyphs[' '] = Glyph{Width: space, Height: h, Blank: true}
	Write(t, root, name, size, glyphs)
}
