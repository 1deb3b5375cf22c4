package main

import (
	"bytes"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to stdout or atomically replaces a file, so
// readers never observe a half-written result
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// newLogger returns a console logger on stderr when verbose is set and a
// no-op logger otherwise
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
