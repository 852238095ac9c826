package textrender

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fisboard/core"
)

// HAlign is the horizontal alignment of text within its canvas.
type HAlign int

// Horizontal alignments
const (
	Left HAlign = iota
	Center
	Right
)

func (a HAlign) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("HAlign(%d)", int(a))
}

// ParseHAlign reads one of "left", "center" or "right".
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return Left, nil
	case "center":
		return Center, nil
	case "right":
		return Right, nil
	}
	return Left, core.Error(core.EINVALID, "unknown horizontal alignment %q", s)
}

// VAlign is the vertical alignment of text within its canvas.
type VAlign int

// Vertical alignments
const (
	Top VAlign = iota
	Middle
	Bottom
)

func (a VAlign) String() string {
	switch a {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("VAlign(%d)", int(a))
}

// ParseVAlign reads one of "top", "middle" or "bottom".
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "":
		return Top, nil
	case "middle":
		return Middle, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, core.Error(core.EINVALID, "unknown vertical alignment %q", s)
}

// Request configures a single render call. The zero value of the alignment
// fields is left/top.
type Request struct {
	Width, Height   int    // exact size of the resulting bitmap
	PadLeft, PadTop int    // offset of the text cursor on the canvas
	Font            string // font name, i.e. directory below the font root
	Size            int    // font size index
	HAlign          HAlign
	VAlign          VAlign
	Inverted        bool // invert the final bitmap
	HSpacing        int  // pixels between characters
	VSpacing        int  // pixels between lines (multi-line only)
	CharWidth       int  // if > 0, forced advance for every character
	Text            string
	AutoWrap        bool // wrap lines to Width (multi-line only)
	BreakWords      bool // allow wrapping inside of words (multi-line only)
}

// Validate checks a request for values no renderer can work with.
func (req Request) Validate() error {
	if req.Width < 0 || req.Height < 0 {
		return core.Error(core.EINVALID, "canvas dimensions must not be negative: %d×%d", req.Width, req.Height)
	}
	if req.HAlign < Left || req.HAlign > Right {
		return core.Error(core.EINVALID, "invalid horizontal alignment %s", req.HAlign)
	}
	if req.VAlign < Top || req.VAlign > Bottom {
		return core.Error(core.EINVALID, "invalid vertical alignment %s", req.VAlign)
	}
	if req.Font == "" {
		return core.Error(core.EINVALID, "no font given")
	}
	return nil
}

// realigns reports whether the composed text has to be re-positioned.
func (req Request) realigns() bool {
	return req.HAlign != Left || req.VAlign != Top
}
