package holefmt

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-holefmt/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgMalformedTemplate  = "malformed template"
	ErrMsgUnterminatedHole   = "unterminated hole"
	ErrMsgMissingArgument    = "no argument for symbol"
	ErrMsgInvalidEscapeTable = "escape table too short"
	ErrMsgInvalidInlineSize  = "invalid inline buffer size"
	ErrMsgReplaceMismatch    = "replace and with must have equal length"
	ErrMsgNilArgumentSource  = "argument source is nil"
)

// Error code constants for categorization
const (
	ErrCodeTemplate = "HOLEFMT_TEMPLATE"
	ErrCodeArgument = "HOLEFMT_ARGUMENT"
	ErrCodeEscape   = "HOLEFMT_ESCAPE"
	ErrCodeConfig   = "HOLEFMT_CONFIG"
)

// Position represents a location in the template
type Position = internal.Position

func withPosition(err *cuserr.CustomError, pos Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewMalformedTemplateError creates an error for an unbalanced or wrongly
// doubled brace outside a hole
func NewMalformedTemplateError(pos Position) error {
	err := cuserr.NewValidationError(ErrCodeTemplate, ErrMsgMalformedTemplate).
		WithMetadata(MetaKeyKind, KindMalformedTemplate).
		WithMetadata(MetaKeyReason, ReasonUnbalancedCloser)
	return withPosition(err, pos)
}

// NewUnterminatedHoleError creates an error for input ending inside a hole
func NewUnterminatedHoleError(pos Position) error {
	err := cuserr.NewValidationError(ErrCodeTemplate, ErrMsgUnterminatedHole).
		WithMetadata(MetaKeyKind, KindUnterminatedHole).
		WithMetadata(MetaKeyReason, ReasonEndOfInput)
	return withPosition(err, pos)
}

// NewMissingArgumentError creates an error for a symbol with no argument
func NewMissingArgumentError(symbol string, pos Position) error {
	err := cuserr.NewNotFoundError(MetaKeySymbol, ErrMsgMissingArgument).
		WithMetadata(MetaKeyKind, KindMissingArgument).
		WithMetadata(MetaKeySymbol, symbol)
	return withPosition(err, pos)
}

// NewInvalidEscapeTableError creates an error for a table shorter than
// MinEscapeTableSize
func NewInvalidEscapeTableError(size int) error {
	return cuserr.NewValidationError(ErrCodeEscape, ErrMsgInvalidEscapeTable).
		WithMetadata(MetaKeyKind, KindInvalidEscapeTable).
		WithMetadata(MetaKeyTableSize, strconv.Itoa(size)).
		WithMetadata(MetaKeyMinSize, strconv.Itoa(MinEscapeTableSize))
}

// NewInvalidInlineSizeError creates an error for an out-of-range inline
// buffer size
func NewInvalidInlineSizeError(size int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidInlineSize).
		WithMetadata(MetaKeyKind, KindInvalidOption).
		WithMetadata(MetaKeyValue, strconv.Itoa(size)).
		WithMetadata(MetaKeyMaxSize, strconv.Itoa(MaxInlineBufferSize))
}

// NewReplaceMismatchError creates an error for ReplaceMany arguments of
// different length
func NewReplaceMismatchError(replaceLen, withLen int) error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgReplaceMismatch).
		WithMetadata(MetaKeyReason, ReasonLengthMismatch).
		WithMetadata(MetaKeyReplace, strconv.Itoa(replaceLen)).
		WithMetadata(MetaKeyWith, strconv.Itoa(withLen))
}

// NewNilArgumentSourceError creates an error for a nil ArgumentSource
func NewNilArgumentSourceError() error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgNilArgumentSource).
		WithMetadata(MetaKeyKind, KindInvalidOption)
}

// fromScanError converts a scanner error into its public form
func fromScanError(err error) error {
	var scanErr *internal.ScanError
	if !errors.As(err, &scanErr) {
		return err
	}
	switch scanErr.Kind {
	case internal.ScanErrMalformed:
		return NewMalformedTemplateError(scanErr.Position)
	case internal.ScanErrUnterminated:
		return NewUnterminatedHoleError(scanErr.Position)
	case internal.ScanErrMissing:
		return NewMissingArgumentError(scanErr.Symbol, scanErr.Position)
	default:
		return err
	}
}

// errorKind returns the kind metadata of a holefmt error
func errorKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, _ := customErr.GetMetadata(MetaKeyKind)
	return kind
}

// IsMalformedTemplate reports whether err is a malformed template error.
func IsMalformedTemplate(err error) bool {
	return errorKind(err) == KindMalformedTemplate
}

// IsUnterminatedHole reports whether err is an unterminated hole error,
// raised when input ends inside a hole. A stray "}" in strict brace mode
// is a malformed template instead; see IsMalformedTemplate.
func IsUnterminatedHole(err error) bool {
	return errorKind(err) == KindUnterminatedHole
}

// IsMissingArgument reports whether err is a missing argument error.
func IsMissingArgument(err error) bool {
	return errorKind(err) == KindMissingArgument
}

// IsInvalidEscapeTable reports whether err is an invalid escape table error.
func IsInvalidEscapeTable(err error) bool {
	return errorKind(err) == KindInvalidEscapeTable
}

// MissingSymbol returns the symbol of a missing argument error.
func MissingSymbol(err error) (string, bool) {
	if !IsMissingArgument(err) {
		return "", false
	}
	var customErr *cuserr.CustomError
	errors.As(err, &customErr)
	return customErr.GetMetadata(MetaKeySymbol)
}
