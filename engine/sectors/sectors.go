/*
Package sectors models an addressable LED strip, divided into sectors which
light the rows of a matrix display from the side.

The strip itself is driven by an external controller; this package only
computes sector colours and encodes them into the controller's frame format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sectors

import (
	"crypto/md5"
	"fmt"

	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fisboard.sectors'.
func tracer() tracing.Trace {
	return tracing.Select("fisboard.sectors")
}

// DefaultSectors is the number of sectors of a standard strip.
const DefaultSectors = 32

// Color is a 24-bit colour 0xRRGGBB.
type Color uint32

// RGB returns the components of c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// GenericPalette holds colours for items without a colour of their own.
var GenericPalette = []Color{
	0xff0000,
	0x00ff00,
	0x0000ff,
	0xff0000,
	0x00ffff,
	0xff00ff,
	0xffffff,
}

// Strip holds the colours of all sectors of an LED strip.
type Strip struct {
	colors []Color
}

// NewStrip creates a strip with n dark sectors. If n is not positive,
// DefaultSectors is used.
func NewStrip(n int) *Strip {
	if n <= 0 {
		n = DefaultSectors
	}
	return &Strip{colors: make([]Color, n)}
}

// Len returns the number of sectors.
func (s *Strip) Len() int {
	return len(s.colors)
}

// Clear switches all sectors off.
func (s *Strip) Clear() {
	for i := range s.colors {
		s.colors[i] = 0
	}
}

// Set sets the colour of sector i.
func (s *Strip) Set(i int, c Color) error {
	if i < 0 || i >= len(s.colors) {
		return core.Error(core.EINVALID, "sector %d out of range [0,%d)", i, len(s.colors))
	}
	s.colors[i] = c
	return nil
}

// Fill sets n consecutive sectors, starting at from, to colour c.
func (s *Strip) Fill(from, n int, c Color) error {
	for i := from; i < from+n; i++ {
		if err := s.Set(i, c); err != nil {
			return err
		}
	}
	return nil
}

// SetAll copies colours into the strip, starting at sector 0. Surplus
// colours are ignored.
func (s *Strip) SetAll(colors []Color) {
	copy(s.colors, colors)
}

// Colors returns a copy of the sector colours.
func (s *Strip) Colors() []Color {
	return append([]Color(nil), s.colors...)
}

// Controller frame constants.
const (
	frameStart       = 0xff
	actionSetSectors = 0xa0
)

// Frame encodes the strip into a 'set sectors' command for the LED
// controller: start byte, action, payload length and, per sector, the
// bytes blue, green, red and a zero pad byte.
func (s *Strip) Frame() ([]byte, error) {
	payload := 4 * len(s.colors)
	if payload > 0xff {
		return nil, core.Error(core.EINVALID, "%d sectors exceed the frame payload limit", len(s.colors))
	}
	frame := make([]byte, 0, 3+payload)
	frame = append(frame, frameStart, actionSetSectors, byte(payload))
	for _, c := range s.colors {
		r, g, b := c.RGB()
		frame = append(frame, b, g, r, 0)
	}
	tracer().Debugf("sector frame of %d bytes", len(frame))
	return frame, nil
}

// PaletteColor picks a colour for a label from palette. The same label
// always gets the same colour.
func PaletteColor(label string, palette []Color) Color {
	if len(palette) == 0 {
		return 0
	}
	sum := 0
	for _, b := range md5.Sum([]byte(label)) {
		sum += int(b)
	}
	return palette[sum%len(palette)]
}
