package fortune

import "fmt"

// ReadError reports a fortune file that could not be opened or read.
type ReadError struct {
	Path string // Path of the file being read
	Err  error  // Underlying I/O error
}

// Error implements the error interface for ReadError.
func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error {
	return e.Err
}
