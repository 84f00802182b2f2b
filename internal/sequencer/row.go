package sequencer

import "strings"

// MessageDelimiter joins the cells of a Row into the datagram payload.
const MessageDelimiter = ","

// Row is one parsed CSV record.
type Row []string

// Blank reports whether every cell is empty or whitespace.
func (r Row) Blank() bool {
	for _, cell := range r {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Message flattens the row into the literal payload. Quoting from the source
// file is not restored, so a cell containing the delimiter cannot be told
// apart from two cells.
func (r Row) Message() string {
	return strings.Join(r, MessageDelimiter)
}
