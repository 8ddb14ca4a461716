package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // extra lines around the primary line, 0 for none
	ShowNotes bool
	ShowFixes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to every location
	Max              int  // output truncation, does not touch the Bag
	IncludeNotes     bool
	IncludeFixes     bool
}
