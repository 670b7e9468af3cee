package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/shellexpr/internal/config"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiDim   = "\x1b[2m"
)

// painter wraps output in ANSI colors when enabled.
type painter struct {
	enabled bool
}

// newPainter resolves a color mode against the writer output goes to.
func newPainter(mode string, w io.Writer) painter {
	switch mode {
	case config.ColorAlways:
		return painter{enabled: true}
	case config.ColorNever:
		return painter{}
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return painter{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return painter{}
	}
	return painter{enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (p painter) paint(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + ansiReset
}

func (p painter) result(s string) string  { return p.paint(ansiGreen, s) }
func (p painter) failure(s string) string { return p.paint(ansiRed, s) }
func (p painter) label(s string) string   { return p.paint(ansiDim, s) }
