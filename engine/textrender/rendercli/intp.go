package main

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/fisboard/engine/textrender"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	renderer *textrender.Renderer
	req      textrender.Request
	multi    bool
	out      string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute interprets an input line. Lines starting with ':' are commands,
// all other lines are rendered as text.
func (intp *Intp) execute(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.req.Text = strings.ReplaceAll(line, `\n`, "\n")
		return false, intp.render()
	}
	args := strings.Fields(line[1:])
	if len(args) == 0 {
		help()
		return false, nil
	}
	tracer().Debugf("command = %v", args)
	switch strings.ToLower(args[0]) {
	case "quit", "q":
		return true, nil
	case "set":
		if len(args) != 3 {
			return false, core.Error(core.EINVALID, "usage: :set <option> <value>")
		}
		return false, applyOption(&intp.req, args[1], args[2])
	case "multi":
		intp.multi = len(args) < 2 || isOn(args[1])
		pterm.Printfln("multi-line rendering: %v", intp.multi)
	case "out":
		intp.out = ""
		if len(args) > 1 {
			intp.out = args[1]
		}
		pterm.Printfln("output file: %q", intp.out)
	case "fonts":
		intp.renderer.Store().Registry().LogFontList()
		pterm.Printfln("%d font(s) loaded", intp.renderer.Store().Registry().Len())
	case "reload":
		m, err := intp.renderer.Store().Reload(intp.req.Font, intp.req.Size)
		if err != nil {
			return false, err
		}
		pterm.Printfln("reloaded %s size %d: %d characters", m.Font, m.Size, len(m.CharSizes))
	case "show":
		pterm.Printfln("%+v", intp.req)
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) render() error {
	img, err := renderRequest(intp.renderer, intp.req, intp.multi)
	if err != nil {
		return err
	}
	pterm.Println(preview(img))
	if intp.out != "" {
		if err = writeImage(intp.out, img); err != nil {
			return err
		}
		pterm.Info.Printfln("image written to %s", intp.out)
	}
	return nil
}

// applyOption sets a field of a render request from its textual value.
func applyOption(req *textrender.Request, key, value string) (err error) {
	ints := map[string]*int{
		"width":     &req.Width,
		"height":    &req.Height,
		"padleft":   &req.PadLeft,
		"padtop":    &req.PadTop,
		"size":      &req.Size,
		"hspacing":  &req.HSpacing,
		"vspacing":  &req.VSpacing,
		"charwidth": &req.CharWidth,
	}
	bools := map[string]*bool{
		"inverted":   &req.Inverted,
		"wrap":       &req.AutoWrap,
		"breakwords": &req.BreakWords,
	}
	key = strings.ToLower(key)
	if p, ok := ints[key]; ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "option %s needs a number, got %q", key, value)
		}
		*p = n
		return nil
	}
	if p, ok := bools[key]; ok {
		*p = isOn(value)
		return nil
	}
	switch key {
	case "font":
		req.Font = value
	case "halign":
		req.HAlign, err = textrender.ParseHAlign(value)
	case "valign":
		req.VAlign, err = textrender.ParseVAlign(value)
	default:
		err = core.Error(core.EINVALID, "unknown option %q", key)
	}
	return err
}

func isOn(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

func help() {
	pterm.Info.Println("Enter text to render it, use \\n for line breaks")
	pterm.Println(`Commands:
  :set <option> <value>   set a render option (width, height, padleft, padtop,
                          font, size, halign, valign, inverted, hspacing,
                          vspacing, charwidth, wrap, breakwords)
  :multi [on|off]         switch multi-line rendering
  :out [file]             write rendered images to file (.bmp or .png)
  :fonts                  list loaded fonts
  :reload                 reload metadata of the current font
  :show                   show current settings
  :quit                   quit`)
}
