package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Resolver looks up the replacement text for a hole symbol.
type Resolver interface {
	Resolve(symbol string) (string, bool)
}

// ScanConfig selects the hole syntax and missing-symbol policy of a scan.
type ScanConfig struct {
	DollarHoles           bool // Holes open only at "${"
	TolerateMissing       bool // Unresolved holes are copied through unchanged
	UnescapeDoubledBraces bool // "{{" and "}}" collapse outside holes
}

// NewScanConfig derives the scan configuration from the two caller-facing
// switches. Doubled braces collapse only in strict brace mode; every other
// combination copies literal spans through untouched.
func NewScanConfig(dollarHoles, tolerateMissing bool) ScanConfig {
	return ScanConfig{
		DollarHoles:           dollarHoles,
		TolerateMissing:       tolerateMissing,
		UnescapeDoubledBraces: !dollarHoles && !tolerateMissing,
	}
}

// scanState is the state of the hole scanner
type scanState int

const (
	stateLiteral scanState = iota
	stateInHole
)

// Scanner replaces the holes of a template with resolved text.
type Scanner struct {
	config     ScanConfig
	inlineSize int
	logger     *zap.Logger
}

// NewScanner creates a scanner. inlineSize bounds the output capacity
// reserved up front; values <= 0 select DefaultInlineSize.
func NewScanner(config ScanConfig, inlineSize int, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if inlineSize <= 0 {
		inlineSize = DefaultInlineSize
	}
	return &Scanner{
		config:     config,
		inlineSize: inlineSize,
		logger:     logger,
	}
}

// Config returns the scan configuration.
func (s *Scanner) Config() ScanConfig {
	return s.config
}

// Scan resolves every hole in template. On failure no output is returned.
func (s *Scanner) Scan(template string, resolver Resolver) (string, error) {
	if !s.hasHoleSyntax(template) {
		return template, nil
	}

	s.logger.Debug(LogMsgScanStart,
		zap.Int(LogFieldTemplateLen, len(template)),
		zap.Bool(LogFieldDollarMode, s.config.DollarHoles),
		zap.Bool(LogFieldTolerant, s.config.TolerateMissing),
		zap.Bool(LogFieldUnescape, s.config.UnescapeDoubledBraces))

	st := scan{
		src:      template,
		config:   s.config,
		resolver: resolver,
		logger:   s.logger,
	}

	var inline [DefaultInlineSize]byte
	st.out = NewBuffer(inline[:])
	st.out.Grow(min(len(template), s.inlineSize, MaxInlineSize))

	if err := st.run(); err != nil {
		s.logger.Debug(LogMsgScanFailed, zap.String(LogFieldKind, err.Kind), zap.Int(LogFieldOffset, err.Position.Offset))
		return "", err
	}

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldHoles, st.holes))
	return st.out.String(), nil
}

// hasHoleSyntax reports whether template contains anything the scanner
// would rewrite. Templates without it are returned as-is.
func (s *Scanner) hasHoleSyntax(template string) bool {
	if s.config.DollarHoles {
		return strings.Contains(template, StrDollarOpen)
	}
	return strings.ContainsAny(template, StrOpenBrace+StrCloseBrace)
}

// scan holds the transient state of one Scan call
type scan struct {
	src      string
	config   ScanConfig
	resolver Resolver
	logger   *zap.Logger
	out      Buffer

	state        scanState
	pos          int // Current read offset
	literalStart int // Start of the pending literal run
	holeStart    int // Offset of the hole opener, valid in stateInHole
	symbolStart  int // Offset of the first symbol byte, valid in stateInHole
	holes        int
}

// run drives the state machine to the end of input
func (st *scan) run() *ScanError {
	for st.pos < len(st.src) {
		var err *ScanError
		switch st.state {
		case stateLiteral:
			if st.config.DollarHoles {
				st.stepDollarLiteral()
			} else {
				err = st.stepBraceLiteral()
			}
		case stateInHole:
			err = st.stepHole()
		}
		if err != nil {
			return err
		}
	}

	if st.state == stateInHole {
		return st.newError(ScanErrUnterminated, ErrMsgUnterminatedHole, st.holeStart, "")
	}
	st.flushLiteral(len(st.src))
	return nil
}

// stepBraceLiteral consumes literal text in brace mode up to and including
// the next brace
func (st *scan) stepBraceLiteral() *ScanError {
	next := strings.IndexAny(st.src[st.pos:], StrOpenBrace+StrCloseBrace)
	if next < 0 {
		st.pos = len(st.src)
		return nil
	}
	i := st.pos + next
	doubled := i+1 < len(st.src) && st.src[i+1] == st.src[i]

	switch st.src[i] {
	case CharOpenBrace:
		if doubled {
			st.literalBrace(i)
			return nil
		}
		st.openHole(i, i+1)
	case CharCloseBrace:
		if doubled {
			st.literalBrace(i)
			return nil
		}
		if st.config.UnescapeDoubledBraces {
			return st.newError(ScanErrMalformed, ErrMsgUnbalancedCloser, i, "")
		}
		st.pos = i + 1
	}
	return nil
}

// literalBrace handles a doubled brace at i outside a hole
func (st *scan) literalBrace(i int) {
	if !st.config.UnescapeDoubledBraces {
		st.pos = i + 2
		return
	}
	st.flushLiteral(i)
	_ = st.out.WriteByte(st.src[i])
	st.pos = i + 2
	st.literalStart = st.pos
}

// stepDollarLiteral consumes literal text in dollar mode up to and
// including the next "${"
func (st *scan) stepDollarLiteral() {
	next := strings.Index(st.src[st.pos:], StrDollarOpen)
	if next < 0 {
		st.pos = len(st.src)
		return
	}
	i := st.pos + next
	st.openHole(i, i+len(StrDollarOpen))
}

// openHole flushes pending literal text and enters stateInHole
func (st *scan) openHole(opener, symbolStart int) {
	st.flushLiteral(opener)
	st.state = stateInHole
	st.holeStart = opener
	st.symbolStart = symbolStart
	st.pos = symbolStart
}

// stepHole consumes the symbol up to the closing brace and resolves it
func (st *scan) stepHole() *ScanError {
	next := strings.IndexByte(st.src[st.pos:], CharCloseBrace)
	if next < 0 {
		st.pos = len(st.src)
		return nil
	}
	closer := st.pos + next
	symbol := st.src[st.symbolStart:closer]
	st.holes++

	if text, ok := st.resolver.Resolve(symbol); ok {
		_, _ = st.out.WriteString(text)
	} else if st.config.TolerateMissing {
		st.logger.Debug(LogMsgHoleUnresolved, zap.String(LogFieldSymbol, symbol))
		_, _ = st.out.WriteString(st.src[st.holeStart : closer+1])
	} else {
		return st.newError(ScanErrMissing, ErrMsgMissingArgument, st.holeStart, symbol)
	}

	st.state = stateLiteral
	st.pos = closer + 1
	st.literalStart = st.pos
	return nil
}

// flushLiteral copies the pending literal run up to end
func (st *scan) flushLiteral(end int) {
	if end > st.literalStart {
		_, _ = st.out.WriteString(st.src[st.literalStart:end])
	}
	st.literalStart = end
}

func (st *scan) newError(kind, msg string, offset int, symbol string) *ScanError {
	return &ScanError{
		Kind:     kind,
		Message:  msg,
		Symbol:   symbol,
		Position: PositionAt(st.src, offset),
	}
}

// ScanError represents a scanner error with position
type ScanError struct {
	Kind     string
	Message  string
	Symbol   string
	Position Position
}

func (e *ScanError) Error() string {
	if e.Symbol != "" {
		return e.Message + " \"" + e.Symbol + "\" at " + e.Position.String()
	}
	return e.Message + " at " + e.Position.String()
}
