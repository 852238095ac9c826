/*
Command rendercli renders text with bitmap fonts, the way a matrix display
would show it, and previews the result on the terminal.

Given a text, rendercli renders it once and exits. Without a text it starts
an interactive session, where every input line is rendered with the current
settings and settings may be changed with ':'-commands.

	rendercli -fontdir ./fonts -font 14S_DBLCD -width 256 -height 24 -text "Hello"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/fisboard/core/font/glyphstore"
	"github.com/npillmayer/fisboard/core/locate/resources"
	"github.com/npillmayer/fisboard/engine/sectors"
	"github.com/npillmayer/fisboard/engine/textrender"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fisboard.render'
func tracer() tracing.Trace {
	return tracing.Select("fisboard.render")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontdir := flag.String("fontdir", os.Getenv("FISBOARD_FONTDIR"), "Root directory of bitmap fonts")
	flagdir := flag.String("flagdir", os.Getenv("FISBOARD_FLAGDIR"), "Directory of flag images")
	flagname := flag.String("flag", "", "Flag image to convert to LED sector colours")
	nsectors := flag.Int("sectors", sectors.DefaultSectors, "Number of LED sectors")
	text := flag.String("text", "", "Text to render; interactive mode if empty")
	out := flag.String("out", "", "Write rendered image to file (.bmp or .png)")
	multi := flag.Bool("multi", false, "Render multi-line text")
	opts := requestFlags()
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fisboard.render":    *tlevel,
		"trace.fisboard.fonts":     *tlevel,
		"trace.fisboard.resources": *tlevel,
		"trace.fisboard.sectors":   *tlevel,
		resources.FontDirKey:       *fontdir,
		resources.FlagDirKey:       *flagdir,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the bitmap font renderer")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if *flagname != "" {
		if err := showFlag(conf, *flagname, *nsectors); err != nil {
			core.UserError(err)
			os.Exit(2)
		}
	}
	req, err := opts.request()
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	root, err := resources.FontDir(conf)
	if err != nil {
		if *flagname != "" && *text == "" {
			return // flag display only
		}
		core.UserError(err)
		os.Exit(3)
	}
	intp := &Intp{
		renderer: textrender.NewRenderer(glyphstore.New(root)),
		req:      req,
		multi:    *multi,
		out:      *out,
	}
	if *text != "" {
		intp.req.Text = *text
		if err := intp.render(); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("render > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// reqFlags holds the command line flags for the fields of a render request.
type reqFlags struct {
	width, height    *int
	padLeft, padTop  *int
	font             *string
	size             *int
	halign, valign   *string
	inverted         *bool
	hSpacing         *int
	vSpacing         *int
	charWidth        *int
	wrap, breakWords *bool
}

func requestFlags() reqFlags {
	return reqFlags{
		width:      flag.Int("width", 256, "Width of the rendered image"),
		height:     flag.Int("height", 24, "Height of the rendered image"),
		padLeft:    flag.Int("padleft", 0, "Left padding"),
		padTop:     flag.Int("padtop", 0, "Top padding"),
		font:       flag.String("font", "", "Font to render with"),
		size:       flag.Int("size", 0, "Font size to render with"),
		halign:     flag.String("halign", "left", "Horizontal alignment [left|center|right]"),
		valign:     flag.String("valign", "top", "Vertical alignment [top|middle|bottom]"),
		inverted:   flag.Bool("inverted", false, "Invert the rendered image"),
		hSpacing:   flag.Int("hspacing", 1, "Horizontal spacing between characters"),
		vSpacing:   flag.Int("vspacing", 1, "Vertical spacing between lines"),
		charWidth:  flag.Int("charwidth", 0, "Forced character width, 0 for proportional"),
		wrap:       flag.Bool("wrap", false, "Wrap lines to the image width (multi-line only)"),
		breakWords: flag.Bool("breakwords", false, "Break words which do not fit (multi-line only)"),
	}
}

func (f reqFlags) request() (textrender.Request, error) {
	req := textrender.Request{
		Width:      *f.width,
		Height:     *f.height,
		PadLeft:    *f.padLeft,
		PadTop:     *f.padTop,
		Font:       *f.font,
		Size:       *f.size,
		Inverted:   *f.inverted,
		HSpacing:   *f.hSpacing,
		VSpacing:   *f.vSpacing,
		CharWidth:  *f.charWidth,
		AutoWrap:   *f.wrap,
		BreakWords: *f.breakWords,
	}
	var err error
	if req.HAlign, err = textrender.ParseHAlign(*f.halign); err != nil {
		return req, err
	}
	req.VAlign, err = textrender.ParseVAlign(*f.valign)
	return req, err
}
