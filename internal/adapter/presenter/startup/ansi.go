package startuptext

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Highlighter colours report lines: header and present facts green, absent facts red.
type Highlighter struct {
	profile termenv.Profile
}

func NewHighlighter(p termenv.Profile) Highlighter {
	return Highlighter{profile: p}
}

func (h Highlighter) Header(line string) string {
	return h.paint(line, termenv.ANSIGreen)
}

func (h Highlighter) Fact(line string, present bool) string {
	if present {
		return h.paint(line, termenv.ANSIGreen)
	}
	return h.paint(line, termenv.ANSIRed)
}

func (h Highlighter) paint(line string, c termenv.ANSIColor) string {
	return h.profile.String(line).Foreground(h.profile.Convert(c)).String()
}

// ProfileFor maps a colour mode onto a termenv profile. In auto mode w gets
// colour only when it is a terminal.
func ProfileFor(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.ANSI
	case ColorNever:
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ANSI
	}
	return termenv.Ascii
}
