package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionAt(t *testing.T) {
	source := "ab\ncd\n\nef"

	tests := []struct {
		name     string
		offset   int
		expected Position
	}{
		{name: "start", offset: 0, expected: Position{Offset: 0, Line: 1, Column: 1}},
		{name: "first line", offset: 2, expected: Position{Offset: 2, Line: 1, Column: 3}},
		{name: "after newline", offset: 3, expected: Position{Offset: 3, Line: 2, Column: 1}},
		{name: "empty line", offset: 6, expected: Position{Offset: 6, Line: 3, Column: 1}},
		{name: "last line", offset: 8, expected: Position{Offset: 8, Line: 4, Column: 2}},
		{name: "clamped past end", offset: 100, expected: Position{Offset: 9, Line: 4, Column: 3}},
		{name: "clamped negative", offset: -5, expected: Position{Offset: 0, Line: 1, Column: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PositionAt(source, tt.offset))
		})
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "line 3, column 7", Position{Line: 3, Column: 7}.String())
}
