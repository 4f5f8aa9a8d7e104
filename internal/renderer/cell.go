package renderer

// Cell is one grapheme cluster's worth of screen real estate: its
// text, the number of terminal columns it occupies, and the overlays
// drawn on top of it.
type Cell struct {
	Text  string
	Width int

	// CaretOf lists the usernames whose caret sits at this cell.
	CaretOf []string
	// Selected lists the usernames whose active selection covers this
	// cell.
	Selected []string
	// BlameAuthor is the author attributed to this cell's line, empty
	// when no blame has been computed for the current view.
	BlameAuthor string
}

// Empty reports whether the cell carries no grapheme (the synthetic
// cell past end-of-line that holds a caret).
func (c Cell) Empty() bool {
	return c.Text == ""
}
