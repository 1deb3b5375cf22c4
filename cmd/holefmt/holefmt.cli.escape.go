package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-holefmt"
	"go.uber.org/zap"
)

// escapeConfig holds parsed escape and unescape command configuration
type escapeConfig struct {
	inputPath  string
	outputPath string
	prefix     string
	postfix    string
	quotes     bool
	verbose    bool
}

// level returns the C escape table level selected by the flags
func (c *escapeConfig) level() byte {
	if c.quotes {
		return holefmt.EscapeLevelQuote
	}
	return holefmt.EscapeLevelControl
}

func runEscape(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runEscaper(CmdNameEscape, args, stdin, stdout, stderr, func(f *holefmt.Formatter, s string) string {
		return f.Escape(s)
	})
}

func runUnescape(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runEscaper(CmdNameUnescape, args, stdin, stdout, stderr, func(f *holefmt.Formatter, s string) string {
		return f.Unescape(s)
	})
}

// runEscaper reads the input, applies transform with a formatter built
// from the flags and writes the result
func runEscaper(cmd string, args []string, stdin io.Reader, stdout, stderr io.Writer, transform func(*holefmt.Formatter, string) string) int {
	cfg, err := parseEscapeFlags(cmd, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}
	logger := newLogger(cfg.verbose, stderr)

	input, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	formatter, err := holefmt.New(
		holefmt.WithLogger(logger),
		holefmt.WithEscapeAffixes(cfg.prefix, cfg.postfix),
		holefmt.WithEscapeLevel(cfg.level()),
	)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeError
	}

	result := transform(formatter, string(input))

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	logger.Debug(LogMsgOutputWritten,
		zap.String(LogFieldPath, cfg.outputPath),
		zap.Int(LogFieldBytes, len(result)))

	return ExitCodeSuccess
}

func parseEscapeFlags(cmd string, args []string) (*escapeConfig, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &escapeConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.prefix, FlagPrefix, FlagDefaultPrefix, "")
	fs.StringVar(&cfg.postfix, FlagPostfix, "", "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")
	if cmd == CmdNameEscape {
		fs.BoolVar(&cfg.quotes, FlagQuotes, false, "")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if cfg.prefix == "" && cfg.postfix == "" {
		return nil, errors.New(ErrMsgEmptyAffixes)
	}

	return cfg, nil
}
