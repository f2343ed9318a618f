package display

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/harrison/fortuner/internal/fortune"
	"github.com/stretchr/testify/assert"
)

func TestPrintFortune(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.PrintFortune("Neckties strangle clear thinking.", true)

	assert.Equal(t, "Neckties strangle clear thinking.\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestPrintFortune_None(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.PrintFortune("", false)

	assert.Equal(t, "No fortunes found\n", out.String())
}

func TestPrintGroups(t *testing.T) {
	store := fortune.NewStore([]fortune.Fortune{
		{Source: "jokes", Text: "joke one"},
		{Source: "jokes", Text: "joke two"},
		{Source: "quotes", Text: "quote\n-- someone"},
		{Source: "jokes", Text: "joke three"},
	})

	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	n := p.PrintGroups(fortune.Filter(store, regexp.MustCompile(`.`)))

	assert.Equal(t, 4, n)
	assert.Equal(t, "joke one\n%\njoke two\n%\nquote\n-- someone\n%\njoke three\n%\n", out.String())
	assert.Equal(t, "(jokes)\n%\n(quotes)\n%\n(jokes)\n%\n", errOut.String())
}

func TestPrintGroups_Empty(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	n := p.PrintGroups(fortune.Filter(fortune.NewStore(nil), regexp.MustCompile(`.`)))

	assert.Zero(t, n)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestPrintGroups_ColorHeaderOnly(t *testing.T) {
	store := fortune.NewStore([]fortune.Fortune{{Source: "jokes", Text: "joke"}})

	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)
	p.PrintGroups(fortune.Filter(store, regexp.MustCompile(`joke`)))

	assert.Contains(t, errOut.String(), "\x1b[")
	assert.Contains(t, errOut.String(), "(jokes)")
	assert.Equal(t, "joke\n%\n", out.String())
}
