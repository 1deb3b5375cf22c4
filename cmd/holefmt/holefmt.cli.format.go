package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-holefmt"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// formatConfig holds parsed format command configuration
type formatConfig struct {
	templatePath string
	data         string
	dataFilePath string
	outputPath   string
	dollar       bool
	tolerant     bool
	verbose      bool
}

// options returns the FormatOptions selected by the flags
func (c *formatConfig) options() holefmt.FormatOptions {
	options := holefmt.OptionNone
	if c.dollar {
		options |= holefmt.OptionDollarHoles
	}
	if c.tolerant {
		options |= holefmt.OptionTolerateMissing
	}
	return options
}

func runFormat(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFormatFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}
	logger := newLogger(cfg.verbose, stderr)

	template, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}
	logger.Debug(LogMsgTemplateLoaded,
		zap.String(LogFieldPath, cfg.templatePath),
		zap.Int(LogFieldBytes, len(template)))

	data, err := loadData(cfg.data, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}
	logger.Debug(LogMsgDataLoaded, zap.Int(LogFieldSymbols, len(data)))

	formatter, err := holefmt.New(holefmt.WithLogger(logger), holefmt.WithOptions(cfg.options()))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFormatFailed, err)
		return ExitCodeError
	}

	result, err := formatter.FormatMap(string(template), data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgFormatFailed, describeError(err))
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	logger.Debug(LogMsgOutputWritten,
		zap.String(LogFieldPath, cfg.outputPath),
		zap.Int(LogFieldBytes, len(result)))

	return ExitCodeSuccess
}

func parseFormatFlags(args []string) (*formatConfig, error) {
	fs := flag.NewFlagSet(CmdNameFormat, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &formatConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.data, FlagData, "", "")
	fs.StringVar(&cfg.data, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.dollar, FlagDollar, false, "")
	fs.BoolVar(&cfg.tolerant, FlagTolerant, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// loadData decodes a YAML (or JSON) mapping from a file or an inline
// string. The file takes precedence; no data yields an empty map.
func loadData(inline, filePath string) (map[string]any, error) {
	var raw []byte

	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		raw = data
	case inline != "":
		raw = []byte(inline)
	default:
		return make(map[string]any), nil
	}

	var result map[string]any
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]any)
	}

	return flattenData(result), nil
}

// flattenData adds dotted keys for the entries of nested mappings. Keys
// present at the top level are never overwritten.
func flattenData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	for k, v := range data {
		if nested, ok := v.(map[string]any); ok {
			addNested(out, k, nested)
		}
	}
	return out
}

func addNested(out map[string]any, prefix string, nested map[string]any) {
	for k, v := range nested {
		key := prefix + DataKeySeparator + k
		if _, exists := out[key]; !exists {
			out[key] = v
		}
		if deeper, ok := v.(map[string]any); ok {
			addNested(out, key, deeper)
		}
	}
}

// describeError renders a formatting error with its location and symbol
func describeError(err error) string {
	msg := err.Error()

	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return msg
	}
	if line, ok := customErr.GetMetadata(holefmt.MetaKeyLine); ok {
		column, _ := customErr.GetMetadata(holefmt.MetaKeyColumn)
		msg = fmt.Sprintf(FmtErrorPosition, msg, line, column)
	}
	if symbol, ok := holefmt.MissingSymbol(err); ok {
		msg = fmt.Sprintf(FmtErrorSymbol, msg, symbol)
	}
	return msg
}
