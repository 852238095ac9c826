package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/fisboard/core/bitmap"
	"github.com/npillmayer/fisboard/core/locate/resources"
	"github.com/npillmayer/fisboard/engine/sectors"
	"github.com/npillmayer/fisboard/engine/textrender"
	"github.com/npillmayer/schuko"
	"github.com/pterm/pterm"
	"golang.org/x/image/bmp"
)

func renderRequest(r *textrender.Renderer, req textrender.Request, multi bool) (*image.Gray, error) {
	if multi {
		return r.RenderMultilineText(req)
	}
	return r.RenderText(req)
}

// preview draws an image as block characters, one character per pixel,
// framed by a border.
func preview(img *image.Gray) string {
	b := img.Bounds()
	var sb strings.Builder
	border := "+" + strings.Repeat("-", b.Dx()) + "+\n"
	sb.WriteString(border)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.WriteByte('|')
		for x := b.Min.X; x < b.Max.X; x++ {
			if bitmap.Dark(img, x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// writeImage writes img to a file, in BMP or PNG format depending on the
// file's extension.
func writeImage(path string, img image.Image) error {
	var encode func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	default:
		return core.Error(core.EINVALID, "unsupported image format: %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create output file %s", path)
	}
	if err = encode(f); err != nil {
		f.Close()
		return core.WrapError(err, core.EINTERNAL, "cannot encode image to %s", path)
	}
	return f.Close()
}

// flagSectors loads a flag from the configured flag directory and converts
// it to sector colours.
func flagSectors(conf schuko.Configuration, name string, n int) (*sectors.Strip, *resources.FlagInfo, error) {
	dir, err := resources.FlagDir(conf)
	if err != nil {
		return nil, nil, err
	}
	img, info, err := resources.ResolveFlag(dir, name).Flag()
	if err != nil {
		return nil, nil, err
	}
	colors := sectors.FromFlag(img, n)
	if colors == nil {
		return nil, nil, core.Error(core.EINVALID, "flag %s has no usable stripes", name)
	}
	strip := sectors.NewStrip(n)
	strip.SetAll(colors)
	return strip, info, nil
}

func showFlag(conf schuko.Configuration, name string, n int) error {
	strip, info, err := flagSectors(conf, name, n)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%s: %s", info.Name, info.Info)
	var sb strings.Builder
	for _, c := range strip.Colors() {
		r, g, b := c.RGB()
		sb.WriteString(pterm.NewRGB(r, g, b).Sprint("█"))
	}
	pterm.Println(sb.String())
	frame, err := strip.Frame()
	if err != nil {
		return err
	}
	pterm.Printfln("controller frame: % x", frame)
	return nil
}
