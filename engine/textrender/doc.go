/*
Package textrender lays out and renders text into grayscale bitmaps for
matrix displays, using pre-rasterized bitmap fonts.

Rendering is a pipeline of three steps. The line measurer computes the pixel
extent of a line from font metadata. The word wrapper splits lines which are
too wide for a target width, at spaces first and, if requested, inside of
words. The composer then pastes glyph bitmaps onto a canvas and re-positions
the result according to horizontal and vertical alignment.

Every render call returns a bitmap of exactly the requested dimensions. Text
which does not fit is clipped. A missing glyph bitmap leaves a gap of the
glyph's advance width; missing font metadata is the only error condition
caused by font resources.

Renderers hold no mutable state besides the metadata cache of their glyph
store, so concurrent render calls are fine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package textrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fisboard.render'.
func tracer() tracing.Trace {
	return tracing.Select("fisboard.render")
}
