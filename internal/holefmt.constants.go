package internal

// Character constants
const (
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharDollar     = '$'
	CharNewline    = '\n'
)

// String constants for hole reconstruction
const (
	StrOpenBrace  = "{"
	StrCloseBrace = "}"
	StrDollarOpen = "${"
)

// Buffer sizing
const (
	// DefaultInlineSize is the capacity of the per-call inline buffer.
	DefaultInlineSize = 256
	// MaxInlineSize caps the inline buffer preallocated from the template length.
	MaxInlineSize = 4096
	// EscapeSlack is the extra capacity reserved on the escape slow path.
	EscapeSlack = 8
)

// Escape table bounds
const (
	// MinEscapeTableSize is the ASCII domain every escape table must cover.
	MinEscapeTableSize = 128
)

// Scanner error kinds
const (
	ScanErrMalformed    = "malformed_template"
	ScanErrUnterminated = "unterminated_hole"
	ScanErrMissing      = "missing_argument"
)

// Error message constants for the scanner
const (
	ErrMsgUnbalancedCloser = "unbalanced closing brace"
	ErrMsgUnterminatedHole = "unterminated hole"
	ErrMsgMissingArgument  = "no argument for symbol"
)

// Panic messages
const (
	PanicMsgBufferReleased = "holefmt: write to released buffer"
)

// Log message constants
const (
	LogMsgScanStart      = "starting hole scan"
	LogMsgScanEnd        = "hole scan complete"
	LogMsgScanFailed     = "hole scan failed"
	LogMsgHoleUnresolved = "hole left unresolved"
	LogMsgEscapeSlowPath = "escaping string"
	LogMsgUnescapeSlow   = "unescaping string"
)

// Log field names
const (
	LogFieldTemplateLen = "template_length"
	LogFieldDollarMode  = "dollar_mode"
	LogFieldTolerant    = "tolerant"
	LogFieldUnescape    = "unescape_doubled"
	LogFieldHoles       = "hole_count"
	LogFieldSymbol      = "symbol"
	LogFieldOffset      = "offset"
	LogFieldInputLen    = "input_length"
	LogFieldFirstMatch  = "first_match"
	LogFieldKind        = "kind"
)
