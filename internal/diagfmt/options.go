// Package diagfmt renders diagnostics and token streams for the CLI.
// Formatting is a read-only consumer: it walks bag.Items() in report order
// and never mutates the bag.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path as stored in the FileSet.
	PathModeAuto PathMode = iota
	// PathModeAbsolute joins relative paths with the FileSet base directory.
	PathModeAbsolute
	// PathModeBasename shows only the final path element.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// ShowSource includes the offending source line with a caret marker.
	ShowSource bool
	// ShowNotes includes secondary notes under each diagnostic.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds line/col alongside byte offsets.
	IncludePositions bool
	PathMode         PathMode
	// Max truncates the output, not the bag; 0 means everything.
	Max          int
	IncludeNotes bool
}
