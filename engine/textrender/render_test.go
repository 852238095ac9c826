package textrender

import (
	"image"
	"testing"

	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/fisboard/core/bitmap"
	"github.com/npillmayer/fisboard/core/font/fonttest"
	"github.com/npillmayer/fisboard/core/font/glyphstore"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type RenderTestEnviron struct {
	suite.Suite
	renderer *Renderer
}

// listen for 'go test' command --> run test methods
func TestRenderFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fisboard.render")
	defer teardown()
	suite.Run(t, new(RenderTestEnviron))
}

// run once, before test suite methods
func (env *RenderTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("fisboard.render").SetTraceLevel(tracing.LevelInfo)
	root := env.T().TempDir()
	// "F": capital letters are 8×14 blocks, 'C' has metrics but no bitmap
	fonttest.Write(env.T(), root, "F", 0, map[rune]fonttest.Glyph{
		'A': fonttest.Block(8, 14),
		'B': fonttest.Block(8, 14),
		'C': {Width: 8, Height: 14, NoBitmap: true},
		' ': {Width: 3, Height: 14, Blank: true},
	})
	// "W": lower case letters are 4×7 blocks, space advances 3
	fonttest.Latin(env.T(), root, "W", 0, "abcdefghijklmnopqrstuvwxyz", 4, 7, 3)
	env.renderer = NewRenderer(glyphstore.New(root))
}

// assertInk checks that exactly the pixels selected by ink are dark.
func (env *RenderTestEnviron) assertInk(img *image.Gray, ink func(x, y int) bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if bitmap.Dark(img, x, y) != ink(x, y) {
				env.Failf("unexpected pixel", "pixel (%d,%d) dark=%v, expected %v",
					x, y, bitmap.Dark(img, x, y), ink(x, y))
				return
			}
		}
	}
}

func in(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

// --- Measure ---------------------------------------------------------------

func (env *RenderTestEnviron) TestMeasure() {
	w, h, err := env.renderer.Measure("F", 0, "AB", 1, 0)
	env.Require().NoError(err)
	env.Equal(17, w)
	env.Equal(14, h)
	w, h, _ = env.renderer.Measure("F", 0, "A\nBB", 1, 2)
	env.Equal(17, w, "expected width of widest line")
	env.Equal(30, h)
	w, _, _ = env.renderer.Measure("F", 0, "A?", 1, 0)
	env.Equal(9, w, "expected unknown character to add spacing only")
	w, h, _ = env.renderer.Measure("F", 0, "", 1, 1)
	env.Equal(0, w)
	env.Equal(0, h)
	_, _, err = env.renderer.Measure("nofont", 0, "A", 1, 0)
	env.Equal(core.EMISSING, core.Code(err))
}

// --- Single line -----------------------------------------------------------

func (env *RenderTestEnviron) TestCenterMiddle() {
	img, err := env.renderer.RenderText(Request{
		Width: 24, Height: 16, Font: "F", Size: 0,
		HAlign: Center, VAlign: Middle, Text: "AB",
	})
	env.Require().NoError(err)
	env.Equal(image.Rect(0, 0, 24, 16), img.Bounds())
	env.assertInk(img, func(x, y int) bool { return in(x, y, image.Rect(4, 1, 20, 15)) })
}

func (env *RenderTestEnviron) TestRightAlignment() {
	img, err := env.renderer.RenderText(Request{
		Width: 30, Height: 16, Font: "F", HAlign: Right, VAlign: Bottom,
		HSpacing: 1, Text: "AB",
	})
	env.Require().NoError(err)
	bbox, ok := bitmap.ContentBounds(img)
	env.True(ok)
	env.Equal(image.Rect(13, 2, 30, 16), bbox)
	env.False(bitmap.Dark(img, 21, 5), "expected spacing column between glyphs")
}

func (env *RenderTestEnviron) TestMissingGlyphLeavesGap() {
	img, err := env.renderer.RenderText(Request{
		Width: 40, Height: 14, Font: "F", HSpacing: 1, Text: "ACB",
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool {
		return in(x, y, image.Rect(0, 0, 8, 14)) || in(x, y, image.Rect(18, 0, 26, 14))
	})
	// '?' has neither bitmap nor metrics
	img, _ = env.renderer.RenderText(Request{
		Width: 40, Height: 14, Font: "F", HSpacing: 1, Text: "A?B",
	})
	env.assertInk(img, func(x, y int) bool {
		return in(x, y, image.Rect(0, 0, 8, 14)) || in(x, y, image.Rect(10, 0, 18, 14))
	})
}

func (env *RenderTestEnviron) TestForcedCharWidth() {
	img, err := env.renderer.RenderText(Request{
		Width: 20, Height: 14, Font: "F", CharWidth: 5, Text: "ACB",
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool {
		return in(x, y, image.Rect(0, 0, 5, 14)) || in(x, y, image.Rect(10, 0, 15, 14))
	})
}

func (env *RenderTestEnviron) TestPaddingAndInversion() {
	img, err := env.renderer.RenderText(Request{
		Width: 12, Height: 16, PadLeft: 2, PadTop: 1, Font: "F", Text: "A", Inverted: true,
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool { return !in(x, y, image.Rect(2, 1, 10, 15)) })
	// padding is absorbed by re-alignment
	centered := Request{Width: 24, Height: 16, Font: "F", HAlign: Center, VAlign: Middle, Text: "AB"}
	plain, _ := env.renderer.RenderText(centered)
	centered.PadLeft, centered.PadTop = 3, 1
	padded, _ := env.renderer.RenderText(centered)
	env.True(bitmap.Equal(plain, padded))
}

func (env *RenderTestEnviron) TestIdempotence() {
	req := Request{Width: 50, Height: 16, Font: "W", HAlign: Center, VAlign: Middle,
		HSpacing: 1, Text: "departures"}
	a, err := env.renderer.RenderText(req)
	env.Require().NoError(err)
	b, _ := env.renderer.RenderText(req)
	env.True(bitmap.Equal(a, b))
}

func (env *RenderTestEnviron) TestDimensionsAreExact() {
	for _, req := range []Request{
		{Width: 10, Height: 5, Font: "F", HAlign: Center, VAlign: Middle, Text: "AAAA"},
		{Width: 3, Height: 30, Font: "W", HAlign: Right, VAlign: Bottom, Text: "abc abc"},
		{Width: 1, Height: 1, Font: "W", Text: ""},
		{Width: 0, Height: 0, Font: "W", Text: "a"},
		{Width: 20, Height: 8, Font: "W", PadLeft: 30, PadTop: -4, HAlign: Center, Text: "ab"},
	} {
		img, err := env.renderer.RenderText(req)
		env.Require().NoError(err)
		env.Equal(image.Rect(0, 0, req.Width, req.Height), img.Bounds(), req.Text)
		req.AutoWrap, req.BreakWords = true, true
		img, err = env.renderer.RenderMultilineText(req)
		env.Require().NoError(err)
		env.Equal(image.Rect(0, 0, req.Width, req.Height), img.Bounds(), req.Text)
	}
}

func (env *RenderTestEnviron) TestInvalidRequests() {
	_, err := env.renderer.RenderText(Request{Width: -1, Height: 2, Font: "F"})
	env.Equal(core.EINVALID, core.Code(err))
	_, err = env.renderer.RenderMultilineText(Request{Width: 1, Height: 2, Font: "F", HAlign: HAlign(7)})
	env.Equal(core.EINVALID, core.Code(err))
	_, err = env.renderer.RenderText(Request{Width: 1, Height: 2, Font: "nofont", Text: "A"})
	env.Equal(core.EMISSING, core.Code(err))
	_, err = env.renderer.RenderMultilineText(Request{Width: 1, Height: 2, Font: "nofont"})
	env.Equal(core.EMISSING, core.Code(err), "expected missing metadata to be fatal even for empty text")
}

// --- Multi-line ------------------------------------------------------------

func (env *RenderTestEnviron) TestMultilineLeft() {
	img, err := env.renderer.RenderMultilineText(Request{
		Width: 24, Height: 40, Font: "F", VSpacing: 2, Text: "AB\nA",
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool {
		return in(x, y, image.Rect(0, 0, 16, 14)) || in(x, y, image.Rect(0, 16, 8, 30))
	})
}

func (env *RenderTestEnviron) TestMultilineRight() {
	img, err := env.renderer.RenderMultilineText(Request{
		Width: 24, Height: 28, Font: "F", HAlign: Right, Text: "AB\nA",
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool {
		return in(x, y, image.Rect(8, 0, 24, 14)) || in(x, y, image.Rect(16, 14, 24, 28))
	})
}

func (env *RenderTestEnviron) TestMultilineRightInsetWithoutRealignment() {
	// the 1px line inset is undone by re-alignment of the whole block
	img, err := env.renderer.RenderMultilineText(Request{
		Width: 24, Height: 14, Font: "F", HAlign: Right, Text: "A",
	})
	env.Require().NoError(err)
	bbox, _ := bitmap.ContentBounds(img)
	env.Equal(23, bbox.Max.X-1, "expected rightmost ink at width-1")
}

func (env *RenderTestEnviron) TestMultilineEmptyLinesKeepRhythm() {
	img, err := env.renderer.RenderMultilineText(Request{
		Width: 10, Height: 42, Font: "F", Text: "A\n\nA",
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool {
		return in(x, y, image.Rect(0, 0, 8, 14)) || in(x, y, image.Rect(0, 28, 8, 42))
	})
}

func (env *RenderTestEnviron) TestMultilineAutoWrap() {
	img, err := env.renderer.RenderMultilineText(Request{
		Width: 20, Height: 20, Font: "W", HSpacing: 1, VSpacing: 1,
		Text: "aaaa bb", AutoWrap: true,
	})
	env.Require().NoError(err)
	env.assertInk(img, func(x, y int) bool {
		if y < 7 {
			return x < 19 && x%5 != 4
		}
		if y >= 8 && y < 15 {
			return x < 9 && x%5 != 4
		}
		return false
	})
}

func (env *RenderTestEnviron) TestMultilineCenterBlock() {
	img, err := env.renderer.RenderMultilineText(Request{
		Width: 30, Height: 32, Font: "F", HAlign: Center, VAlign: Middle, Text: "AB\nA",
	})
	env.Require().NoError(err)
	bbox, ok := bitmap.ContentBounds(img)
	env.True(ok)
	left, right := bbox.Min.X, 30-bbox.Max.X
	env.LessOrEqual(left-right, 1)
	env.LessOrEqual(right-left, 1)
	env.Equal(2, bbox.Min.Y)
}

func (env *RenderTestEnviron) TestCropToExtent() {
	img, err := env.renderer.RenderText(Request{
		Width: 100, Height: 16, PadTop: 1, Font: "F", Text: "A", Inverted: true,
	})
	env.Require().NoError(err)
	c := CropToExtent(img, true)
	env.Equal(image.Rect(0, 0, 8, 15), c.Bounds())
	env.Equal(uint8(255), c.GrayAt(0, 1).Y)
	env.Equal(uint8(0), c.GrayAt(0, 0).Y)
	plain, _ := env.renderer.RenderText(Request{Width: 100, Height: 16, Font: "F", Text: "AB"})
	env.Equal(image.Rect(0, 0, 16, 14), CropToExtent(plain, false).Bounds())
	blank := bitmap.New(5, 5)
	env.Same(blank, CropToExtent(blank, false))
}

// --- Alignment parsing -----------------------------------------------------

func TestParseAlignment(t *testing.T) {
	for s, a := range map[string]HAlign{"left": Left, "Center": Center, " right": Right, "": Left} {
		got, err := ParseHAlign(s)
		if err != nil || got != a {
			t.Errorf("expected %q to parse as %s, is %s (%v)", s, a, got, err)
		}
	}
	for s, a := range map[string]VAlign{"top": Top, "middle": Middle, "BOTTOM": Bottom} {
		got, err := ParseVAlign(s)
		if err != nil || got != a {
			t.Errorf("expected %q to parse as %s, is %s (%v)", s, a, got, err)
		}
	}
	if _, err := ParseHAlign("justify"); core.Code(err) != core.EINVALID {
		t.Errorf("expected justify to be rejected")
	}
	if _, err := ParseVAlign("baseline"); core.Code(err) != core.EINVALID {
		t.Errorf("expected baseline to be rejected")
	}
	if Center.String() != "center" || Bottom.String() != "bottom" {
		t.Errorf("unexpected alignment names")
	}
}
