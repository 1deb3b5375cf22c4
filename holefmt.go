// Package holefmt provides named-placeholder string formatting and
// table-driven character escaping that avoid allocating on the common path.
//
// A template contains holes naming the symbols to substitute:
//
//	Hello {name}!
//
// # Basic Usage
//
// Format a template with unsorted arguments:
//
//	result, err := holefmt.FormatAll("Hello {name}!", holefmt.Arg("name", "World"))
//	// result: "Hello World!"
//
// Or with a map:
//
//	result, err := holefmt.FormatMap("{a}-{b}", map[string]int{"a": 1, "b": 2}, holefmt.OptionNone)
//	// result: "1-2"
//
// # Hole Syntax
//
// Brace mode (default):
//
//	{name}    hole
//	{{ }}     literal braces, collapsed only in strict brace mode
//
// Dollar mode (OptionDollarHoles):
//
//	${name}   hole
//	{x}       literal text, braces are never collapsed
//
// # Missing Arguments
//
// By default a symbol without an argument fails with a missing argument
// error. With OptionTolerateMissing the hole is copied through unchanged:
//
//	result, _ := holefmt.FormatAny("Hi {user}", holefmt.Arg("other", 1))
//	// result: "Hi {user}"
//
// # Argument Sources
//
// OrderedArgs resolves symbols by binary search over a slice sorted by
// symbol (see SortArgs); MappedArgs resolves them through a map. Both
// accept a ValueFormatter applied to every resolved value.
//
// # Escaping
//
// Escape wraps selected bytes in a prefix and postfix. The bytes are chosen
// by a lookup table of bit flags and a level mask:
//
//	holefmt.EscapeC(`C:\dir`)       // `C:\\dir`
//	holefmt.EscapeQuotes(`say "x"`) // `say \"x\"`
//
// The escaped byte itself follows the prefix; control characters are not
// rewritten to letters.
//
// Strings with nothing to escape are returned as-is.
//
// # Formatter
//
// A Formatter carries defaults and a zap logger:
//
//	f := holefmt.MustNew(holefmt.WithDollarHoles(), holefmt.WithLogger(logger))
//	result, err := f.FormatMap("${greeting}", map[string]any{"greeting": "hi"})
package holefmt
