package holefmt

import (
	"errors"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-holefmt/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMetadata(t *testing.T, err error, key, expected string) {
	t.Helper()
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	value, ok := customErr.GetMetadata(key)
	require.True(t, ok, "missing metadata %q", key)
	assert.Equal(t, expected, value)
}

func TestNewMalformedTemplateError(t *testing.T) {
	pos := Position{Offset: 12, Line: 2, Column: 4}
	err := NewMalformedTemplateError(pos)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgMalformedTemplate)
	requireMetadata(t, err, MetaKeyKind, KindMalformedTemplate)
	requireMetadata(t, err, MetaKeyReason, ReasonUnbalancedCloser)
	requireMetadata(t, err, MetaKeyLine, strconv.Itoa(pos.Line))
	requireMetadata(t, err, MetaKeyColumn, strconv.Itoa(pos.Column))
	requireMetadata(t, err, MetaKeyOffset, strconv.Itoa(pos.Offset))

	assert.True(t, IsMalformedTemplate(err))
	assert.False(t, IsMissingArgument(err))
}

func TestNewUnterminatedHoleError(t *testing.T) {
	err := NewUnterminatedHoleError(Position{Offset: 0, Line: 1, Column: 1})

	assert.Contains(t, err.Error(), ErrMsgUnterminatedHole)
	requireMetadata(t, err, MetaKeyReason, ReasonEndOfInput)
	requireMetadata(t, err, MetaKeyLine, "1")
	assert.True(t, IsUnterminatedHole(err))
}

func TestNewMissingArgumentError(t *testing.T) {
	err := NewMissingArgumentError("user", Position{Offset: 6, Line: 1, Column: 7})

	assert.Contains(t, err.Error(), ErrMsgMissingArgument)
	requireMetadata(t, err, MetaKeySymbol, "user")
	requireMetadata(t, err, MetaKeyOffset, "6")
	assert.True(t, IsMissingArgument(err))

	symbol, ok := MissingSymbol(err)
	require.True(t, ok)
	assert.Equal(t, "user", symbol)
}

func TestNewInvalidEscapeTableError(t *testing.T) {
	err := NewInvalidEscapeTableError(10)

	assert.Contains(t, err.Error(), ErrMsgInvalidEscapeTable)
	requireMetadata(t, err, MetaKeyTableSize, "10")
	requireMetadata(t, err, MetaKeyMinSize, strconv.Itoa(MinEscapeTableSize))
	assert.True(t, IsInvalidEscapeTable(err))
}

func TestNewInvalidInlineSizeError(t *testing.T) {
	err := NewInvalidInlineSizeError(-1)

	assert.Contains(t, err.Error(), ErrMsgInvalidInlineSize)
	requireMetadata(t, err, MetaKeyKind, KindInvalidOption)
	requireMetadata(t, err, MetaKeyValue, "-1")
	requireMetadata(t, err, MetaKeyMaxSize, strconv.Itoa(MaxInlineBufferSize))
}

func TestNewReplaceMismatchError(t *testing.T) {
	err := NewReplaceMismatchError(3, 2)

	assert.Contains(t, err.Error(), ErrMsgReplaceMismatch)
	requireMetadata(t, err, MetaKeyReason, ReasonLengthMismatch)
	requireMetadata(t, err, MetaKeyReplace, "3")
	requireMetadata(t, err, MetaKeyWith, "2")
}

func TestFromScanError(t *testing.T) {
	pos := internal.Position{Offset: 3, Line: 1, Column: 4}

	tests := []struct {
		name  string
		err   *internal.ScanError
		check func(error) bool
	}{
		{
			name:  "malformed",
			err:   &internal.ScanError{Kind: internal.ScanErrMalformed, Position: pos},
			check: IsMalformedTemplate,
		},
		{
			name:  "unterminated",
			err:   &internal.ScanError{Kind: internal.ScanErrUnterminated, Position: pos},
			check: IsUnterminatedHole,
		},
		{
			name:  "missing",
			err:   &internal.ScanError{Kind: internal.ScanErrMissing, Symbol: "x", Position: pos},
			check: IsMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := fromScanError(tt.err)
			assert.True(t, tt.check(converted))
			requireMetadata(t, converted, MetaKeyOffset, "3")
			requireMetadata(t, converted, MetaKeyColumn, "4")
		})
	}

	t.Run("foreign error passes through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, fromScanError(plain))
	})
}

func TestErrorPredicates_ForeignErrors(t *testing.T) {
	plain := errors.New("boom")

	assert.False(t, IsMalformedTemplate(plain))
	assert.False(t, IsUnterminatedHole(plain))
	assert.False(t, IsMissingArgument(plain))
	assert.False(t, IsInvalidEscapeTable(plain))
	assert.False(t, IsMissingArgument(nil))

	_, ok := MissingSymbol(plain)
	assert.False(t, ok)
	_, ok = MissingSymbol(NewUnterminatedHoleError(Position{}))
	assert.False(t, ok)
}

func TestFormatErrors_CarryPosition(t *testing.T) {
	_, err := Format("line one\nab {missing}", NewOrderedArgs(nil), OptionNone)
	require.Error(t, err)

	requireMetadata(t, err, MetaKeyLine, "2")
	requireMetadata(t, err, MetaKeyColumn, "4")
	requireMetadata(t, err, MetaKeyOffset, "12")
}
