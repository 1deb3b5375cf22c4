package holefmt

import "github.com/itsatony/go-holefmt/internal"

// Hole syntax
const (
	HoleOpen       = "{"
	HoleClose      = "}"
	DollarHoleOpen = "${"
)

// FormatOptions is a bit set of scanner switches.
type FormatOptions uint8

const (
	// OptionNone selects strict brace mode: "{name}" holes, "{{" and "}}"
	// collapse to single braces, unresolved symbols fail.
	OptionNone FormatOptions = 0
	// OptionDollarHoles makes "${" the only hole opener. Braces are always
	// literal otherwise and doubled braces are not collapsed. There is no
	// way to escape "${".
	OptionDollarHoles FormatOptions = 1 << 0
	// OptionTolerateMissing copies unresolved holes through unchanged
	// instead of failing. Doubled braces are not collapsed.
	OptionTolerateMissing FormatOptions = 1 << 1
)

// Format option names, used by the CLI and String
const (
	OptionNameNone            = "none"
	OptionNameDollarHoles     = "dollar"
	OptionNameTolerateMissing = "tolerant"
)

// Has reports whether all bits of flag are set.
func (o FormatOptions) Has(flag FormatOptions) bool {
	return o&flag == flag
}

// String returns the option names joined with "|".
func (o FormatOptions) String() string {
	switch o {
	case OptionNone:
		return OptionNameNone
	case OptionDollarHoles:
		return OptionNameDollarHoles
	case OptionTolerateMissing:
		return OptionNameTolerateMissing
	case OptionDollarHoles | OptionTolerateMissing:
		return OptionNameDollarHoles + "|" + OptionNameTolerateMissing
	default:
		return OptionNameNone
	}
}

// Escape table constants
const (
	// MinEscapeTableSize is the minimum length of an escape table; it
	// covers the ASCII range.
	MinEscapeTableSize = internal.MinEscapeTableSize

	// EscapeLevelControl selects control characters and backslash in
	// CEscapeTable.
	EscapeLevelControl byte = 1 << 0
	// EscapeLevelQuote selects the double quote in CEscapeTable.
	EscapeLevelQuote byte = 1 << 1

	// EscapePrefixBackslash is the prefix used by EscapeC and EscapeQuotes.
	EscapePrefixBackslash = "\\"
)

// Buffer defaults
const (
	// DefaultInlineBufferSize is the output capacity reserved per call.
	DefaultInlineBufferSize = internal.DefaultInlineSize
	// MaxInlineBufferSize caps WithInlineBufferSize.
	MaxInlineBufferSize = internal.MaxInlineSize
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind      = "kind"
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyOffset    = "offset"
	MetaKeySymbol    = "symbol"
	MetaKeyReason    = "reason"
	MetaKeyTableSize = "table_size"
	MetaKeyMinSize   = "min_size"
	MetaKeyValue     = "value"
	MetaKeyMaxSize   = "max_size"
	MetaKeyReplace   = "replace_length"
	MetaKeyWith      = "with_length"
)

// Error kinds, stored under MetaKeyKind
const (
	KindMalformedTemplate  = "malformed_template"
	KindUnterminatedHole   = "unterminated_hole"
	KindMissingArgument    = "missing_argument"
	KindInvalidEscapeTable = "invalid_escape_table"
	KindInvalidOption      = "invalid_option"
)

// Error reasons, stored under MetaKeyReason
const (
	ReasonUnbalancedCloser = "unbalanced_closer"
	ReasonEndOfInput       = "end_of_input"
	ReasonLengthMismatch   = "length_mismatch"
)

// Log message constants
const (
	LogMsgFormatterCreated = "formatter created"
	LogMsgFormatStart      = "formatting template"
	LogMsgFormatFailed     = "template formatting failed"
)

// Log field names
const (
	LogFieldOptions     = "options"
	LogFieldTemplateLen = "template_length"
	LogFieldTableSize   = "table_size"
	LogFieldInlineSize  = "inline_size"
)
