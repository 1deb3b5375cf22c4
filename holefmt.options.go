package holefmt

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Formatter.
type Option func(*formatterConfig)

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	options        FormatOptions
	valueFormatter ValueFormatter
	inlineSize     int
	escapeTable    []byte
	escapePrefix   string
	escapePostfix  string
	escapeLevel    byte
	logger         *zap.Logger
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		options:       OptionNone,
		inlineSize:    DefaultInlineBufferSize,
		escapeTable:   cEscapeTable[:],
		escapePrefix:  EscapePrefixBackslash,
		escapePostfix: "",
		escapeLevel:   EscapeLevelControl,
		logger:        nil,
	}
}

// WithDollarHoles makes "${name}" the hole syntax for every call.
func WithDollarHoles() Option {
	return func(c *formatterConfig) {
		c.options |= OptionDollarHoles
	}
}

// WithTolerateMissing copies unresolved holes through instead of failing.
func WithTolerateMissing() Option {
	return func(c *formatterConfig) {
		c.options |= OptionTolerateMissing
	}
}

// WithOptions sets the default FormatOptions. Per-call options are added
// to these.
func WithOptions(options FormatOptions) Option {
	return func(c *formatterConfig) {
		c.options = options
	}
}

// WithDefaultValueFormatter sets the formatter used for argument sources
// that do not carry their own.
func WithDefaultValueFormatter(formatter ValueFormatter) Option {
	return func(c *formatterConfig) {
		c.valueFormatter = formatter
	}
}

// WithInlineBufferSize caps the output capacity preallocated from the
// template length. Only the first DefaultInlineBufferSize bytes fit the
// fixed inline array; a larger size is a single up-front heap
// reservation, and the output still grows by doubling past it.
// Default: 256, maximum 4096.
func WithInlineBufferSize(size int) Option {
	return func(c *formatterConfig) {
		c.inlineSize = size
	}
}

// WithEscapeTable sets the table used by Formatter.Escape. The table must
// have at least MinEscapeTableSize entries and must not be mutated later.
// Default: CEscapeTable.
func WithEscapeTable(table []byte) Option {
	return func(c *formatterConfig) {
		c.escapeTable = table
	}
}

// WithEscapeAffixes sets the prefix and postfix used by Formatter.Escape.
// Default: "\\" and "".
func WithEscapeAffixes(prefix, postfix string) Option {
	return func(c *formatterConfig) {
		c.escapePrefix = prefix
		c.escapePostfix = postfix
	}
}

// WithEscapeLevel sets the level used by Formatter.Escape.
// Default: EscapeLevelControl
func WithEscapeLevel(level byte) Option {
	return func(c *formatterConfig) {
		c.escapeLevel = level
	}
}

// WithLogger sets the logger for the formatter.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}
