package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Escaper inserts a prefix and postfix around every byte selected by an
// escape table at a given level.
type Escaper struct {
	prefix  string
	postfix string
	table   []byte
	logger  *zap.Logger
}

// NewEscaper creates an escaper. The table is not copied and must not be
// mutated while the escaper is in use. Callers validate the table size.
func NewEscaper(prefix, postfix string, table []byte, logger *zap.Logger) *Escaper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Escaper{
		prefix:  prefix,
		postfix: postfix,
		table:   table,
		logger:  logger,
	}
}

// Escape returns s with every byte matching level wrapped in the
// escaper's prefix and postfix.
func (e *Escaper) Escape(s string, level byte) string {
	return Escape(s, e.prefix, e.postfix, e.table, level, e.logger)
}

// matches reports whether c is escaped at level. Bytes outside the table
// are never escaped.
func matches(table []byte, c byte, level byte) bool {
	return int(c) < len(table) && table[c]&level != 0
}

// IndexEscaped returns the index of the first byte of s escaped at level,
// or -1.
func IndexEscaped(s string, table []byte, level byte) int {
	for i := 0; i < len(s); i++ {
		if matches(table, s[i], level) {
			return i
		}
	}
	return -1
}

// Escape returns s with every byte matching level wrapped in prefix and
// postfix. When nothing matches, s itself is returned.
func Escape(s, prefix, postfix string, table []byte, level byte, logger *zap.Logger) string {
	first := IndexEscaped(s, table, level)
	if first < 0 {
		return s
	}

	if logger != nil {
		logger.Debug(LogMsgEscapeSlowPath,
			zap.Int(LogFieldInputLen, len(s)),
			zap.Int(LogFieldFirstMatch, first))
	}

	var inline [DefaultInlineSize]byte
	buf := NewBuffer(inline[:])
	buf.Grow(len(s) + EscapeSlack)
	_, _ = buf.WriteString(s[:first])

	index := first
	for index < len(s) {
		_, _ = buf.WriteString(prefix)
		_ = buf.WriteByte(s[index])
		_, _ = buf.WriteString(postfix)

		// Copy the unmatched run up to the next match or the end.
		next := index + 1
		for next < len(s) && !matches(table, s[next], level) {
			next++
		}
		_, _ = buf.WriteString(s[index+1 : next])
		index = next
	}

	return buf.String()
}

// Unescape reverses Escape: every prefix, byte, postfix sequence becomes
// the byte alone. Text that does not form a complete sequence is copied.
func Unescape(s, prefix, postfix string, logger *zap.Logger) string {
	if prefix == "" && postfix == "" {
		return s
	}
	first := firstSequence(s, 0, prefix, postfix)
	if first < 0 {
		return s
	}

	if logger != nil {
		logger.Debug(LogMsgUnescapeSlow,
			zap.Int(LogFieldInputLen, len(s)),
			zap.Int(LogFieldFirstMatch, first))
	}

	var inline [DefaultInlineSize]byte
	buf := NewBuffer(inline[:])
	buf.Grow(len(s))

	index := 0
	for first >= 0 {
		_, _ = buf.WriteString(s[index:first])
		c := first + len(prefix)
		_ = buf.WriteByte(s[c])
		index = c + 1 + len(postfix)
		first = firstSequence(s, index, prefix, postfix)
	}
	_, _ = buf.WriteString(s[index:])

	return buf.String()
}

// firstSequence returns the offset of the first complete escape sequence
// at or after from, or -1.
func firstSequence(s string, from int, prefix, postfix string) int {
	for i := from; i < len(s); {
		var at int
		if prefix == "" {
			at = i
		} else {
			rel := strings.Index(s[i:], prefix)
			if rel < 0 {
				return -1
			}
			at = i + rel
		}
		c := at + len(prefix)
		if c < len(s) && strings.HasPrefix(s[c+1:], postfix) {
			return at
		}
		i = at + 1
	}
	return -1
}
