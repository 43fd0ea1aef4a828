package scss

import "strings"

// Position is a 1-based line/column location in a piece of text. Columns
// count bytes, not runes. The zero value means the position is unknown.
type Position struct {
	Line   int
	Column int
}

// IsZero reports whether the position is unset.
func (p Position) IsZero() bool { return p.Line == 0 && p.Column == 0 }

// NoOffset marks a start or end offset that could not be determined.
// Consumers must treat it as "position unknown", not as offset zero.
const NoOffset = -1

// Source records where a node came from. The parser fills Start and End as
// line/column pairs (End points at the last byte of the node and may be
// unset). AnnotateOffsets later fills StartOffset and EndOffset with
// absolute byte offsets into the document, forming a half-open range.
//
// Nodes of a value sub-tree are parsed from a substring of the document and
// carry Index, their byte offset relative to that substring, instead of a
// start line/column.
type Source struct {
	Start Position
	End   Position

	// Index is a substring-relative start offset. It is only meaningful
	// when HasIndex is set.
	Index    int
	HasIndex bool

	StartOffset int
	EndOffset   int
}

func newSource(start Position) *Source {
	return &Source{Start: start, StartOffset: NoOffset, EndOffset: NoOffset}
}

func indexSource(index int, end Position) *Source {
	return &Source{Index: index, HasIndex: true, End: end, StartOffset: NoOffset, EndOffset: NoOffset}
}

// lineColumnToIndex maps a 1-based line/column position to a byte index into
// text. The returned value is the index of the addressed byte plus one:
// line 1, column 1 maps to 1. Start-offset computations therefore subtract
// one, while end-offset computations use the value as is, turning an
// inclusive end column into an exclusive offset.
func lineColumnToIndex(pos Position, text string) int {
	index := 0
	for line := 1; line < pos.Line; line++ {
		nl := strings.IndexByte(text[index:], '\n')
		if nl < 0 {
			break
		}
		index += nl + 1
	}
	return index + pos.Column
}
