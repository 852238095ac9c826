/*
Package bitmap provides the single-channel canvas operations the text
renderer composes with.

Canvases are 8-bit grayscale images with origin (0,0). Background pixels are
light (255), foreground pixels are dark (0); inversion is applied by callers
as a final step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package bitmap

import (
	"image"

	"golang.org/x/image/draw"
)

// Polarities of a canvas before inversion.
const (
	Background uint8 = 255
	Foreground uint8 = 0
)

// New creates a blank canvas of w × h pixels, filled with Background.
// Negative dimensions are treated as zero.
func New(w, h int) *image.Gray {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = Background
	}
	return img
}

// Paste copies src onto dst with the top-left corner of src placed at (x, y).
// Pixels of dst are overwritten, not blended. Parts of src falling outside
// of dst are clipped.
func Paste(dst *image.Gray, src image.Image, x, y int) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, r, src, sb.Min, draw.Src)
}

// ToGray converts any image to a grayscale canvas with origin (0,0).
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Crop returns a copy of the part of img inside r, re-based to origin (0,0).
// r is clipped to the bounds of img.
func Crop(img *image.Gray, r image.Rectangle) *image.Gray {
	r = r.Intersect(img.Bounds())
	out := New(r.Dx(), r.Dy())
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

// ContentBounds returns the tight bounding box of all non-background pixels
// of img. If img contains no such pixel, ok is false.
func ContentBounds(img *image.Gray) (bbox image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[x-b.Min.X] == Background {
				continue
			}
			ok = true
			if x < minX {
				minX = x
			}
			if x >= maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			if y >= maxY {
				maxY = y + 1
			}
		}
	}
	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

// Invert returns a copy of img, re-based to origin (0,0), with every pixel
// value v replaced by 255-v.
func Invert(img *image.Gray) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		dst := out.Pix[y*out.Stride:]
		for x, v := range src {
			dst[x] = 255 - v
		}
	}
	return out
}

// Equal reports whether a and b have identical bounds and pixel values.
func Equal(a, b *image.Gray) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.GrayAt(x, y) != b.GrayAt(x, y) {
				return false
			}
		}
	}
	return true
}

// Dark reports whether the pixel at (x, y) is foreground-ish, i.e. darker
// than mid-gray.
func Dark(img *image.Gray, x, y int) bool {
	return img.GrayAt(x, y).Y < 128
}
