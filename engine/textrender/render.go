package textrender

import (
	"image"
	"strings"

	"github.com/npillmayer/fisboard/core/bitmap"
	"github.com/npillmayer/fisboard/core/font"
)

// RenderText renders a single line of text.
//
// Glyphs are placed left to right, starting at (PadLeft, PadTop), each
// advancing the cursor by its bitmap width (or by CharWidth, if forced) plus
// HSpacing. All glyphs share the same top edge. Unless alignment is
// left/top, the inked area of the canvas is then moved to the requested
// position. Inversion is applied last.
func (r *Renderer) RenderText(req Request) (*image.Gray, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := r.store.Metadata(req.Font, req.Size)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("render text %q in %s/%d, %d×%d", req.Text, req.Font, req.Size, req.Width, req.Height)
	canvas := bitmap.New(req.Width, req.Height)
	x := req.PadLeft
	for _, ch := range req.Text {
		x = r.placeGlyph(canvas, m, req, ch, x, req.PadTop)
		x += req.HSpacing
	}
	return finish(canvas, req), nil
}

// RenderMultilineText renders text with explicit line breaks.
//
// If AutoWrap is set, every line is wrapped to Width (see Wrap). Each
// resulting line is trimmed of surrounding whitespace, drawn into a buffer of
// its measured size and pasted onto the canvas, horizontally aligned
// according to HAlign. Lines advance vertically by their height plus
// VSpacing. Finally the whole block is aligned like in RenderText.
func (r *Renderer) RenderMultilineText(req Request) (*image.Gray, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := r.store.Metadata(req.Font, req.Size)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("render multi-line text in %s/%d, %d×%d", req.Font, req.Size, req.Width, req.Height)
	canvas := bitmap.New(req.Width, req.Height)
	y := req.PadTop
	for _, line := range splitLines(req.Text) {
		renderLines := []string{line}
		if req.AutoWrap {
			renderLines = r.wrap(m, req.Width, line, req.HSpacing, req.BreakWords)
		}
		for _, rl := range renderLines {
			if rl = strings.TrimSpace(rl); rl == "" {
				rl = " " // keeps the height of empty lines
			}
			lw, lh := r.measure(m, rl, req.HSpacing, req.VSpacing)
			lineImg := bitmap.New(lw, lh)
			x := 0
			for _, ch := range rl {
				x = r.placeGlyph(lineImg, m, req, ch, x, 0)
				x += req.HSpacing
			}
			var xoff int
			switch req.HAlign {
			case Center:
				xoff = floorHalf(req.Width - lw)
			case Right:
				xoff = req.Width - lw - 1
			}
			bitmap.Paste(canvas, lineImg, xoff+req.PadLeft, y)
			y += lh + req.VSpacing
		}
	}
	return finish(canvas, req), nil
}

// placeGlyph pastes the glyph for ch with its top-left corner at (x, y) and
// returns the advanced cursor position.
func (r *Renderer) placeGlyph(dst *image.Gray, m *font.Metadata, req Request, ch rune, x, y int) int {
	code := r.store.CharCode(ch)
	glyph, ok, err := r.store.Glyph(req.Font, req.Size, code)
	if err != nil {
		tracer().Errorf("skipping glyph %#x: %v", code, err)
	}
	if !ok || err != nil {
		if req.CharWidth > 0 {
			return x + req.CharWidth
		}
		if cs, found := m.CharSize(code); found {
			return x + cs.Width
		}
		return x
	}
	if req.CharWidth > 0 {
		if req.CharWidth < glyph.Bounds().Dx() {
			glyph = bitmap.Crop(glyph, image.Rect(0, 0, req.CharWidth, glyph.Bounds().Dy()))
		}
		bitmap.Paste(dst, glyph, x, y)
		return x + req.CharWidth
	}
	bitmap.Paste(dst, glyph, x, y)
	return x + glyph.Bounds().Dx()
}

// finish re-positions the inked area of a canvas according to the alignment
// of req and applies inversion.
func finish(canvas *image.Gray, req Request) *image.Gray {
	if req.realigns() {
		if bbox, ok := bitmap.ContentBounds(canvas); ok {
			cropped := bitmap.Crop(canvas, bbox)
			cw, ch := cropped.Bounds().Dx(), cropped.Bounds().Dy()
			var xoff, yoff int
			switch req.HAlign {
			case Center:
				xoff = floorHalf(req.Width - cw)
			case Right:
				xoff = req.Width - cw
			}
			switch req.VAlign {
			case Middle:
				yoff = floorHalf(req.Height - ch)
			case Bottom:
				yoff = req.Height - ch
			}
			canvas = bitmap.New(req.Width, req.Height)
			bitmap.Paste(canvas, cropped, xoff, yoff)
		}
	}
	if req.Inverted {
		canvas = bitmap.Invert(canvas)
	}
	return canvas
}

// CropToExtent crops a rendered bitmap to the rectangle from its origin to
// the bottom-right corner of its inked area. This is used for text rendered
// onto an oversized canvas, e.g. for scrolling titles, where the caller needs
// the actual extent. For inverted bitmaps ink is light instead of dark.
// A bitmap without ink is returned unchanged.
func CropToExtent(img *image.Gray, inverted bool) *image.Gray {
	probe := img
	if inverted {
		probe = bitmap.Invert(img) // re-based to (0,0)
		img = bitmap.Crop(img, img.Bounds())
	}
	bbox, ok := bitmap.ContentBounds(probe)
	if !ok {
		return img
	}
	return bitmap.Crop(img, image.Rectangle{Min: img.Bounds().Min, Max: bbox.Max})
}

// floorHalf divides by two, rounding towards negative infinity.
func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}
