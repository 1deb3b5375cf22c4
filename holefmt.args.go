package holefmt

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Argument binds a symbol to a value.
type Argument struct {
	Symbol string
	Value  any
}

// Arg creates an Argument.
func Arg(symbol string, value any) Argument {
	return Argument{Symbol: symbol, Value: value}
}

// compareArguments orders arguments by symbol, byte-wise
func compareArguments(a, b Argument) int {
	return strings.Compare(a.Symbol, b.Symbol)
}

// ValueFormatter converts a resolved value to its replacement text. It is
// never called with a nil value.
type ValueFormatter func(value any) string

// ArgumentSource resolves hole symbols to replacement text.
type ArgumentSource interface {
	Resolve(symbol string) (string, bool)
}

// FormatValue converts v to text without a formatter: nil (typed or
// untyped) becomes "", strings and byte slices are used as-is, Stringers
// and errors use their methods, everything else goes through fmt.Sprint.
func FormatValue(v any) string {
	if isNil(v) {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	default:
		return fmt.Sprint(val)
	}
}

func formatWith(formatter ValueFormatter, v any) string {
	if isNil(v) {
		return ""
	}
	if formatter != nil {
		return formatter(v)
	}
	return FormatValue(v)
}

// isNil reports whether v is nil or a typed nil
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// OrderedArgs is an argument source over a slice sorted by symbol.
// Lookups use binary search; the slice is neither copied nor sorted.
type OrderedArgs struct {
	args      []Argument
	formatter ValueFormatter
}

// NewOrderedArgs wraps args, which must already be sorted by symbol.
// Use SortArgs for unsorted input.
func NewOrderedArgs(args []Argument) OrderedArgs {
	return OrderedArgs{args: args}
}

// SortArgs returns an OrderedArgs over a sorted copy of args. When
// several arguments share a symbol, the first one wins.
func SortArgs(args ...Argument) OrderedArgs {
	sorted := slices.Clone(args)
	slices.SortStableFunc(sorted, compareArguments)
	sorted = slices.CompactFunc(sorted, func(a, b Argument) bool {
		return a.Symbol == b.Symbol
	})
	return OrderedArgs{args: sorted}
}

// WithValueFormatter returns a copy that formats values with formatter.
func (o OrderedArgs) WithValueFormatter(formatter ValueFormatter) OrderedArgs {
	o.formatter = formatter
	return o
}

// Len returns the number of arguments.
func (o OrderedArgs) Len() int {
	return len(o.args)
}

// Arguments returns the underlying slice.
func (o OrderedArgs) Arguments() []Argument {
	return o.args
}

// IsSorted reports whether the arguments are in binary-search order.
func (o OrderedArgs) IsSorted() bool {
	return slices.IsSortedFunc(o.args, compareArguments)
}

// Resolve implements ArgumentSource.
func (o OrderedArgs) Resolve(symbol string) (string, bool) {
	i, found := slices.BinarySearchFunc(o.args, symbol, func(a Argument, s string) int {
		return strings.Compare(a.Symbol, s)
	})
	if !found {
		return "", false
	}
	return formatWith(o.formatter, o.args[i].Value), true
}

// MappedArgs is an argument source over a map.
type MappedArgs[T any] struct {
	values    map[string]T
	formatter ValueFormatter
}

// NewMappedArgs wraps values. The map is not copied.
func NewMappedArgs[T any](values map[string]T) MappedArgs[T] {
	return MappedArgs[T]{values: values}
}

// WithValueFormatter returns a copy that formats values with formatter.
func (m MappedArgs[T]) WithValueFormatter(formatter ValueFormatter) MappedArgs[T] {
	m.formatter = formatter
	return m
}

// Len returns the number of entries.
func (m MappedArgs[T]) Len() int {
	return len(m.values)
}

// Resolve implements ArgumentSource.
func (m MappedArgs[T]) Resolve(symbol string) (string, bool) {
	v, ok := m.values[symbol]
	if !ok {
		return "", false
	}
	return formatWith(m.formatter, any(v)), true
}

// formatterDefaulter is implemented by sources that accept a fallback
// formatter from the Formatter
type formatterDefaulter interface {
	withDefaultFormatter(formatter ValueFormatter) ArgumentSource
}

func (o OrderedArgs) withDefaultFormatter(formatter ValueFormatter) ArgumentSource {
	if o.formatter == nil {
		o.formatter = formatter
	}
	return o
}

func (m MappedArgs[T]) withDefaultFormatter(formatter ValueFormatter) ArgumentSource {
	if m.formatter == nil {
		m.formatter = formatter
	}
	return m
}
