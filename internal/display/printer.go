package display

import (
	"fmt"
	"io"
	"iter"

	"github.com/fatih/color"
	"github.com/harrison/fortuner/internal/fortune"
)

// NoFortunesMessage is printed when there is nothing to pick from
const NoFortunesMessage = "No fortunes found"

// Printer writes fortunes and grouped matches
type Printer struct {
	out    io.Writer
	err    io.Writer
	header *color.Color
}

// NewPrinter creates a Printer. Headers are written to err, in bold cyan
// when useColor is set.
func NewPrinter(out, err io.Writer, useColor bool) *Printer {
	header := color.New(color.FgCyan, color.Bold)
	if useColor {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	return &Printer{out: out, err: err, header: header}
}

// PrintFortune prints a picked fortune, or NoFortunesMessage when ok is false
func (p *Printer) PrintFortune(text string, ok bool) {
	if !ok {
		text = NoFortunesMessage
	}
	fmt.Fprintln(p.out, text)
}

// PrintGroups prints each group as it arrives and returns the number of
// texts printed.
func (p *Printer) PrintGroups(groups iter.Seq[fortune.Group]) int {
	printed := 0
	for group := range groups {
		p.header.Fprintf(p.err, "(%s)", group.Source)
		fmt.Fprintf(p.err, "\n%s\n", fortune.Delimiter)

		for _, text := range group.Texts {
			fmt.Fprintf(p.out, "%s\n%s\n", text, fortune.Delimiter)
			printed++
		}
	}
	return printed
}
