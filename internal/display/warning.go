package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when useColor is set
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add files with proper singular/plural and indentation
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	yellow := color.New(color.FgYellow)
	if useColor {
		yellow.EnableColor()
	} else {
		yellow.DisableColor()
	}
	yellow.Fprint(out, b.String())
}

// WarnUnterminated creates a warning for files whose last fortune was dropped
func WarnUnterminated(files []string) Warning {
	title := "Dropped an unterminated fortune"
	if len(files) > 1 {
		title = fmt.Sprintf("Dropped unterminated fortunes in %d files", len(files))
	}
	return Warning{
		Title:      title,
		Message:    "A fortune is only read once a line containing exactly % follows it",
		Files:      files,
		Suggestion: "Add a % line after the last fortune in each file",
	}
}
