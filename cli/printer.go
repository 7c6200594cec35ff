package cli

import (
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer is where a [Command] writes user-visible output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a [Printer] writing to out, or os.Stderr if out is not given.
func NewPrinter(out ...io.Writer) *Printer {
	if len(out) > 0 && out[0] != nil {
		return &Printer{out: out[0]}
	}
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

// Writer returns the current output, for use with formatting helpers like [text/tabwriter].
func (p *Printer) Writer() io.Writer {
	return p.out
}

// IsTerminal reports whether output is going to an interactive terminal.
func (p *Printer) IsTerminal() bool {
	f, ok := p.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
