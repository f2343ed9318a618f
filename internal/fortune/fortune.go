package fortune

// Delimiter is the line that terminates each fortune record.
const Delimiter = "%"

// Fortune is one record read from a fortune file.
type Fortune struct {
	Source string // Base name of the file the record came from
	Text   string // Record body, lines joined with "\n"
}
