// Package display renders fortuner output.
//
// Fortunes and matched texts go to the standard output writer. Source headers
// and warnings go to the error writer, so piping stdout keeps only fortune
// text. Color is opt-in per Printer and is applied only to headers and
// warnings, never to fortune bodies.
//
// # Fortunes
//
//	p := display.NewPrinter(os.Stdout, os.Stderr, useColor)
//	text, ok := fortune.Pick(store, seed)
//	p.PrintFortune(text, ok)
//
// # Grouped matches
//
// Each group prints its header once, then every text followed by a "%" line:
//
//	(quotes)
//	%
//	You can observe a lot just by watching.
//	-- Yogi Berra
//	%
//
// # Warning Messages
//
//	warning := display.Warning{
//	    Title:      "Dropped unterminated fortune",
//	    Files:      []string{"fortunes/extra"},
//	    Suggestion: "End the last fortune with a line containing only %",
//	}
//	warning.Display(os.Stderr, useColor)
package display
