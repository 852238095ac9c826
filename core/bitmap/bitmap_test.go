package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsBlank(t *testing.T) {
	img := New(5, 3)
	assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())
	_, ok := ContentBounds(img)
	assert.False(t, ok, "expected blank canvas to have no content")
	assert.Equal(t, image.Rect(0, 0, 0, 0), New(-1, -4).Bounds())
}

func TestPasteClipsAndOverwrites(t *testing.T) {
	dst := New(4, 4)
	src := image.NewGray(image.Rect(0, 0, 3, 3)) // all black
	Paste(dst, src, 2, -1)
	bbox, ok := ContentBounds(dst)
	assert.True(t, ok)
	assert.Equal(t, image.Rect(2, 0, 4, 2), bbox)
	// pasting a white image overwrites black pixels
	Paste(dst, New(1, 1), 2, 0)
	assert.Equal(t, Background, dst.GrayAt(2, 0).Y)
}

func TestCropAndBounds(t *testing.T) {
	img := New(10, 8)
	img.SetGray(3, 2, color.Gray{Y: 0})
	img.SetGray(6, 5, color.Gray{Y: 10})
	bbox, ok := ContentBounds(img)
	assert.True(t, ok)
	assert.Equal(t, image.Rect(3, 2, 7, 6), bbox)
	c := Crop(img, bbox)
	assert.Equal(t, image.Rect(0, 0, 4, 4), c.Bounds())
	assert.Equal(t, uint8(0), c.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(10), c.GrayAt(3, 3).Y)
	sb, ok := ContentBounds(img.SubImage(image.Rect(4, 4, 10, 8)).(*image.Gray))
	assert.True(t, ok)
	assert.Equal(t, image.Rect(6, 5, 7, 6), sb)
}

func TestInvert(t *testing.T) {
	img := New(2, 1)
	img.SetGray(0, 0, color.Gray{Y: 0})
	inv := Invert(img)
	assert.Equal(t, uint8(255), inv.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), inv.GrayAt(1, 0).Y)
	assert.True(t, Equal(img, Invert(inv)))
	assert.True(t, Dark(img, 0, 0))
	assert.False(t, Dark(img, 1, 0))
}

func TestToGray(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(1, 1, 3, 2))
	rgba.Set(1, 1, color.White)
	rgba.Set(2, 1, color.Black)
	g := ToGray(rgba)
	assert.Equal(t, image.Rect(0, 0, 2, 1), g.Bounds())
	assert.Equal(t, uint8(255), g.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), g.GrayAt(1, 0).Y)
}
