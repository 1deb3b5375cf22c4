package holefmt

import (
	"strings"

	"github.com/itsatony/go-holefmt/internal"
)

// Quote wraps s in double quotes, trimming any it already has.
func Quote(s string) string {
	return wrap(strings.Trim(s, `"`), '"', '"')
}

// Symbolize wraps s in braces, turning a symbol into a hole. Leading "{"
// and trailing "}" are trimmed first.
func Symbolize(s string) string {
	return wrap(strings.TrimRight(strings.TrimLeft(s, HoleOpen), HoleClose), internal.CharOpenBrace, internal.CharCloseBrace)
}

func wrap(s string, left, right byte) string {
	var inline [internal.DefaultInlineSize]byte
	buf := internal.NewBuffer(inline[:])
	buf.Grow(len(s) + 2)
	_ = buf.WriteByte(left)
	_, _ = buf.WriteString(s)
	_ = buf.WriteByte(right)
	return buf.String()
}

// ReplaceMany replaces every byte of s found in replace with the byte at
// the same index in with. replace and with must have equal length.
func ReplaceMany(s, replace, with string) (string, error) {
	if len(replace) != len(with) {
		return "", NewReplaceMismatchError(len(replace), len(with))
	}
	first := -1
	for i := 0; i < len(s) && replace != ""; i++ {
		if strings.IndexByte(replace, s[i]) >= 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return s, nil
	}

	out := []byte(s)
	for i := first; i < len(out); i++ {
		if j := strings.IndexByte(replace, out[i]); j >= 0 {
			out[i] = with[j]
		}
	}
	return string(out), nil
}

// Join converts values with FormatValue and joins them with sep.
func Join[T any](sep string, values []T) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return FormatValue(values[0])
	}

	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(FormatValue(v))
	}
	return sb.String()
}
