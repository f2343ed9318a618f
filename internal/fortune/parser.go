package fortune

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single line; fortune files are short prose but ASCII
// art occasionally produces long lines.
const maxLineSize = 1024 * 1024

// ParseResult contains the records parsed from a set of files
type ParseResult struct {
	// Fortunes holds every record in file order, then textual order
	Fortunes []Fortune
	// Unterminated lists files whose final record had no closing delimiter
	// and was therefore dropped
	Unterminated []string
	// Files lists every parsed file with its record count, in parse order
	Files []FileCount
}

// FileCount is the number of records read from one file
type FileCount struct {
	Path     string
	Fortunes int
}

// ReadFortunes parses every file in paths and returns the records found.
// It fails on the first file that cannot be opened or read.
func ReadFortunes(paths []string) ([]Fortune, error) {
	result, err := ParseFiles(paths)
	if err != nil {
		return nil, err
	}
	return result.Fortunes, nil
}

// ParseFiles parses each file in order. Only one file is open at a time.
func ParseFiles(paths []string) (*ParseResult, error) {
	result := &ParseResult{
		Fortunes:     make([]Fortune, 0),
		Unterminated: make([]string, 0),
		Files:        make([]FileCount, 0, len(paths)),
	}

	for _, path := range paths {
		fortunes, unterminated, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		result.Fortunes = append(result.Fortunes, fortunes...)
		result.Files = append(result.Files, FileCount{Path: path, Fortunes: len(fortunes)})
		if unterminated {
			result.Unterminated = append(result.Unterminated, path)
		}
	}

	return result, nil
}

// parseFile opens, parses and closes a single fortune file.
func parseFile(path string) ([]Fortune, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	fortunes, unterminated, err := ParseReader(filepath.Base(path), file)
	if err != nil {
		return nil, false, &ReadError{Path: path, Err: err}
	}
	return fortunes, unterminated, nil
}

// ParseReader splits r into records attributed to source.
//
// A "%" line closes the lines collected since the previous one. Blank lines
// at either end of a body are dropped; an empty body (leading or repeated
// delimiters, or only blank lines) yields no record. Lines left
// over at end of input are discarded and reported through unterminated.
func ParseReader(source string, r io.Reader) (fortunes []Fortune, unterminated bool, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line != Delimiter {
			lines = append(lines, line)
			continue
		}
		if text := joinBody(lines); text != "" {
			fortunes = append(fortunes, Fortune{Source: source, Text: text})
		}
		lines = lines[:0]
	}
	if err := scanner.Err(); err != nil {
		return nil, false, err
	}

	return fortunes, joinBody(lines) != "", nil
}

// joinBody joins lines and strips blank lines from both ends. A body made
// only of blank lines yields "".
func joinBody(lines []string) string {
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
