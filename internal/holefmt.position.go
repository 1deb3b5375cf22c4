package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// PositionAt calculates the Position (line, column, offset) of the given
// byte offset in source. Offsets past the end are clamped.
func PositionAt(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}

	pos := Position{
		Offset: offset,
		Line:   1,
		Column: 1,
	}

	for i := 0; i < offset; i++ {
		if source[i] == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
