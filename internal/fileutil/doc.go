// Package fileutil resolves fortune sources on disk.
//
// Inputs may be files or directories. Directories are walked recursively and
// every regular file found at any depth becomes a candidate, except compiled
// index files carrying the ".dat" extension, which are derived artifacts of
// strfile and never contain readable fortunes.
//
// # Ordering
//
// The walk itself makes no ordering promise. ResolvePaths sorts the combined
// candidate list and removes duplicate paths, so a file reachable from two
// inputs (for example a directory and one of its files) is returned once and
// the result is identical across runs.
//
// # Errors
//
// Resolution is fail-fast. The first input that does not exist stops the
// whole call with a *NotFoundError naming that input; later inputs are not
// inspected. Errors encountered mid-walk are returned the same way, wrapped
// with the path that failed.
//
// # Usage
//
//	files, err := fileutil.ResolvePaths([]string{"/usr/share/games/fortunes", "./extra"})
//	if err != nil {
//	    var nf *fileutil.NotFoundError
//	    if errors.As(err, &nf) {
//	        log.Fatalf("missing source %s", nf.Path)
//	    }
//	    log.Fatal(err)
//	}
package fileutil
