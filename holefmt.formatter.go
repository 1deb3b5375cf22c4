package holefmt

import (
	"github.com/itsatony/go-holefmt/internal"
	"go.uber.org/zap"
)

// optionMask covers every defined FormatOptions bit
const optionMask = OptionDollarHoles | OptionTolerateMissing

// Formatter formats templates and escapes strings with a fixed
// configuration. A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	config   *formatterConfig
	scanners [optionMask + 1]*internal.Scanner // One per option combination
	escaper  *internal.Escaper
	logger   *zap.Logger
}

// New creates a new Formatter with the given options.
func New(opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.inlineSize <= 0 || config.inlineSize > MaxInlineBufferSize {
		return nil, NewInvalidInlineSizeError(config.inlineSize)
	}
	if len(config.escapeTable) < MinEscapeTableSize {
		return nil, NewInvalidEscapeTableError(len(config.escapeTable))
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Formatter{
		config:  config,
		escaper: internal.NewEscaper(config.escapePrefix, config.escapePostfix, config.escapeTable, logger),
		logger:  logger,
	}
	for o := range f.scanners {
		options := FormatOptions(o)
		scanConfig := internal.NewScanConfig(options.Has(OptionDollarHoles), options.Has(OptionTolerateMissing))
		f.scanners[o] = internal.NewScanner(scanConfig, config.inlineSize, logger)
	}

	logger.Debug(LogMsgFormatterCreated,
		zap.Stringer(LogFieldOptions, config.options),
		zap.Int(LogFieldInlineSize, config.inlineSize),
		zap.Int(LogFieldTableSize, len(config.escapeTable)))

	return f, nil
}

// MustNew creates a new Formatter and panics if there's an error.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Options returns the default FormatOptions of the formatter.
func (f *Formatter) Options() FormatOptions {
	return f.config.options
}

// Format replaces the holes of template with values from args. options
// are combined with the formatter's defaults. On failure the returned
// string is empty.
func (f *Formatter) Format(template string, args ArgumentSource, options FormatOptions) (string, error) {
	if args == nil {
		return "", NewNilArgumentSourceError()
	}
	if f.config.valueFormatter != nil {
		if src, ok := args.(formatterDefaulter); ok {
			args = src.withDefaultFormatter(f.config.valueFormatter)
		}
	}

	options = (f.config.options | options) & optionMask
	if ce := f.logger.Check(zap.DebugLevel, LogMsgFormatStart); ce != nil {
		ce.Write(zap.Stringer(LogFieldOptions, options), zap.Int(LogFieldTemplateLen, len(template)))
	}

	result, err := f.scanners[options].Scan(template, args)
	if err != nil {
		err = fromScanError(err)
		f.logger.Debug(LogMsgFormatFailed, zap.Error(err))
		return "", err
	}
	return result, nil
}

// FormatArgs formats template with unsorted arguments using the
// formatter's default options. Duplicate symbols resolve to the first
// occurrence.
func (f *Formatter) FormatArgs(template string, args ...Argument) (string, error) {
	return f.Format(template, SortArgs(args...), OptionNone)
}

// FormatMap formats template with a map of values using the formatter's
// default options.
func (f *Formatter) FormatMap(template string, values map[string]any) (string, error) {
	return f.Format(template, NewMappedArgs(values), OptionNone)
}

// Escape escapes s with the formatter's table, affixes and level.
func (f *Formatter) Escape(s string) string {
	return f.escaper.Escape(s, f.config.escapeLevel)
}

// EscapeLevel escapes s with the formatter's table and affixes at level.
func (f *Formatter) EscapeLevel(s string, level byte) string {
	return f.escaper.Escape(s, level)
}

// Unescape reverses Escape for the formatter's affixes.
func (f *Formatter) Unescape(s string) string {
	return internal.Unescape(s, f.config.escapePrefix, f.config.escapePostfix, f.logger)
}
