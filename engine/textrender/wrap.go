package textrender

import (
	"strings"

	"github.com/npillmayer/fisboard/core/font"
)

// Wrap splits a single line of text into lines which fit into width pixels.
//
// Lines are broken at spaces, putting as many words onto a line as fit. If
// not even the first word of the remaining text fits, the word either is put
// onto a line of its own regardless of its width, or, if breakWords is set,
// is broken after the longest prefix which fits (but at least after its first
// character).
//
// Words are delimited by single spaces; runs of spaces produce empty words,
// which are kept as they are.
func (r *Renderer) Wrap(fontname string, size, width int, text string, hSpacing int, breakWords bool) ([]string, error) {
	m, err := r.store.Metadata(fontname, size)
	if err != nil {
		return nil, err
	}
	return r.wrap(m, width, text, hSpacing, breakWords), nil
}

func (r *Renderer) wrap(m *font.Metadata, width int, text string, hSpacing int, breakWords bool) []string {
	fits := func(s string) bool {
		w, _ := r.measureLine(m, s, hSpacing)
		return w <= width
	}
	var lines []string
	remaining := text
	for first := true; first || remaining != ""; first = false {
		if fits(remaining) {
			lines = append(lines, remaining)
			break
		}
		words := strings.Split(remaining, " ")
		var line, rest string
		fitted := false
		for keep := len(words) - 1; keep > 0; keep-- {
			prefix := strings.Join(words[:keep], " ")
			if prefix == "" {
				break
			}
			if fits(prefix) {
				line, rest = prefix, strings.Join(words[keep:], " ")
				fitted = true
				break
			}
		}
		if !fitted { // even the first word does not fit
			tail := strings.Join(words[1:], " ")
			if breakWords {
				line, rest = r.breakWord(m, width, words[0], tail, hSpacing)
			} else {
				line, rest = words[0], tail
			}
		}
		tracer().Debugf("wrap: line %q, remaining %q", line, rest)
		lines = append(lines, line)
		remaining = rest
	}
	return lines
}

// breakWord splits word after the longest prefix which fits, or after its
// first character if no prefix fits. It returns the prefix and the text still
// to be wrapped.
func (r *Renderer) breakWord(m *font.Metadata, width int, word, tail string, hSpacing int) (string, string) {
	rs := []rune(word)
	if len(rs) == 0 {
		return "", tail
	}
	// prefix[i] is the width of rs[:i]
	prefix := make([]int, len(rs)+1)
	for i, ch := range rs {
		if cs, ok := m.CharSize(r.store.CharCode(ch)); ok {
			prefix[i+1] = prefix[i] + cs.Width
		} else {
			prefix[i+1] = prefix[i]
		}
	}
	for cut := len(rs) - 1; cut > 0; cut-- {
		if prefix[cut]+(cut-1)*hSpacing <= width {
			return string(rs[:cut]), string(rs[cut:]) + " " + tail
		}
	}
	return string(rs[:1]), string(rs[1:]) + " " + tail
}
