package holefmt

import (
	"io"
	"strings"
)

// defaultFormatter backs the package-level functions
var defaultFormatter = MustNew()

// Format replaces the holes of template with values resolved from args.
//
// In the default brace mode "{name}" is a hole, "{{" and "}}" produce
// literal braces, and a symbol without an argument fails with a missing
// argument error. OptionDollarHoles switches to "${name}" holes;
// OptionTolerateMissing copies unresolved holes through. Doubled braces
// are collapsed only when neither option is set.
//
// On failure the result is empty; errors can be inspected with
// IsMalformedTemplate, IsUnterminatedHole and IsMissingArgument.
func Format(template string, args ArgumentSource, options FormatOptions) (string, error) {
	return defaultFormatter.Format(template, args, options)
}

// FormatAll formats template in strict brace mode with unsorted args.
// Duplicate symbols resolve to the first occurrence.
func FormatAll(template string, args ...Argument) (string, error) {
	return Format(template, SortArgs(args...), OptionNone)
}

// FormatAny formats template in tolerant brace mode with unsorted args,
// leaving holes without an argument in place.
func FormatAny(template string, args ...Argument) (string, error) {
	return Format(template, SortArgs(args...), OptionTolerateMissing)
}

// FormatMap formats template with values from a map.
func FormatMap[T any](template string, values map[string]T, options FormatOptions) (string, error) {
	return Format(template, NewMappedArgs(values), options)
}

// AppendFormat formats template and appends the result to sb. Nothing is
// appended on failure.
func AppendFormat(sb *strings.Builder, template string, args ArgumentSource, options FormatOptions) error {
	result, err := Format(template, args, options)
	if err != nil {
		return err
	}
	sb.WriteString(result)
	return nil
}

// FormatTo formats template and writes the result to w. Nothing is
// written on failure.
func FormatTo(w io.Writer, template string, args ArgumentSource, options FormatOptions) (int, error) {
	result, err := Format(template, args, options)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, result)
}
