package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"
	"tools.zach/dev/graphs/colors"
)

// printer writes command output, adding truecolor swatches when the
// destination is an interactive terminal.
type printer struct {
	w        io.Writer
	swatches bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, swatches: isTerminal(w) && os.Getenv("NO_COLOR") == ""}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorTable is a tab-aligned listing of labelled colors.
type colorTable struct {
	p  *printer
	tw *tabwriter.Writer
}

func (p *printer) table(header ...string) *colorTable {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	return &colorTable{p: p, tw: tw}
}

// color writes one row: label, hex, the four channels, then note. The swatch
// goes last so escape sequences do not disturb column widths.
func (t *colorTable) color(label string, c colors.Color, note string) {
	fmt.Fprintf(t.tw, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%s", label, c.Hex(), c.R, c.G, c.B, c.A, note)
	if t.p.swatches {
		n := c.NRGBA()
		fmt.Fprintf(t.tw, "\x1b[48;2;%d;%d;%dm    \x1b[0m", n.R, n.G, n.B)
	}
	fmt.Fprintln(t.tw)
}

func (t *colorTable) flush() error {
	if err := t.tw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
