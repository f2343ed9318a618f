package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{Title: "Configuration Missing"}

	w.Display(&buf, false)

	assert.Equal(t, "Warning: Configuration Missing\n", buf.String())
}

func TestDisplayWarning_Color(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{Title: "Configuration Missing"}

	w.Display(&buf, true)

	output := buf.String()
	assert.Contains(t, output, "\x1b[33m", "expected yellow ANSI color code")
	assert.Contains(t, output, "\x1b[0m", "expected ANSI reset code")
	assert.Contains(t, output, "Configuration Missing")
}

func TestDisplayWarning_AllFields(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Something odd",
		Message:    "Details here",
		Files:      []string{"a", "b"},
		Suggestion: "Fix it",
	}

	w.Display(&buf, false)

	assert.Equal(t, strings.Join([]string{
		"Warning: Something odd",
		"    Details here",
		"    Affected files:",
		"      1. a",
		"      2. b",
		"    Suggestion:",
		"    Fix it",
		"",
	}, "\n"), buf.String())
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "t", Files: []string{"only"}}.Display(&buf, false)

	assert.Contains(t, buf.String(), "Affected file:\n")
	assert.NotContains(t, buf.String(), "Affected files:")
}

func TestWarnUnterminated(t *testing.T) {
	single := WarnUnterminated([]string{"jokes"})
	assert.Equal(t, "Dropped an unterminated fortune", single.Title)
	assert.Equal(t, []string{"jokes"}, single.Files)
	assert.NotEmpty(t, single.Suggestion)

	multi := WarnUnterminated([]string{"jokes", "quotes"})
	assert.Equal(t, "Dropped unterminated fortunes in 2 files", multi.Title)
}
