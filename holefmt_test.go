package holefmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_BraceModeStrict(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     ArgumentSource
		expected string
	}{
		{
			name:     "doubled braces collapse",
			template: "{{literal}}",
			args:     NewOrderedArgs(nil),
			expected: "{literal}",
		},
		{
			name:     "single hole",
			template: "Hello {name}!",
			args:     NewMappedArgs(map[string]string{"name": "World"}),
			expected: "Hello World!",
		},
		{
			name:     "ordered args",
			template: "{a}+{b}={c}",
			args:     SortArgs(Arg("c", 3), Arg("a", 1), Arg("b", 2)),
			expected: "1+2=3",
		},
		{
			name:     "nil value is empty",
			template: "[{v}]",
			args:     SortArgs(Arg("v", nil)),
			expected: "[]",
		},
		{
			name:     "repeated symbol",
			template: "{x}{x}{x}",
			args:     SortArgs(Arg("x", "ab")),
			expected: "ababab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.template, tt.args, OptionNone)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_TolerateMissing(t *testing.T) {
	result, err := Format("{missing}", NewOrderedArgs(nil), OptionTolerateMissing)
	require.NoError(t, err)
	assert.Equal(t, "{missing}", result)

	result, err = Format("{{a}} {a} {b}", SortArgs(Arg("a", 1)), OptionTolerateMissing)
	require.NoError(t, err)
	assert.Equal(t, "{{a}} 1 {b}", result)
}

func TestFormat_MissingArgumentStrict(t *testing.T) {
	result, err := Format("{missing}", NewOrderedArgs(nil), OptionNone)
	require.Error(t, err)
	assert.Empty(t, result)
	assert.True(t, IsMissingArgument(err))

	symbol, ok := MissingSymbol(err)
	require.True(t, ok)
	assert.Equal(t, "missing", symbol)
}

func TestFormat_DollarMode(t *testing.T) {
	args := NewMappedArgs(map[string]string{"a": "1", "b": "2"})

	result, err := Format("${a}-${b}", args, OptionDollarHoles)
	require.NoError(t, err)
	assert.Equal(t, "1-2", result)

	result, err = Format("${a}-${b} {x}", args, OptionDollarHoles)
	require.NoError(t, err)
	assert.Equal(t, "1-2 {x}", result)

	result, err = Format("${a} ${c}", args, OptionDollarHoles|OptionTolerateMissing)
	require.NoError(t, err)
	assert.Equal(t, "1 ${c}", result)
}

func TestFormat_UnterminatedHoleAlwaysFails(t *testing.T) {
	sources := map[string]ArgumentSource{
		"ordered empty": NewOrderedArgs(nil),
		"ordered":       SortArgs(Arg("name", "x")),
		"mapped":        NewMappedArgs(map[string]any{"name": "x"}),
	}
	for _, options := range []FormatOptions{OptionNone, OptionTolerateMissing} {
		for name, src := range sources {
			t.Run(options.String()+"/"+name, func(t *testing.T) {
				result, err := Format("{name", src, options)
				require.Error(t, err)
				assert.Empty(t, result)
				assert.True(t, IsUnterminatedHole(err))
			})
		}
	}
}

func TestFormat_UnbalancedCloser(t *testing.T) {
	_, err := Format("a } b", NewOrderedArgs(nil), OptionNone)
	require.Error(t, err)
	assert.True(t, IsMalformedTemplate(err))
	assert.False(t, IsUnterminatedHole(err))

	result, err := Format("a } b", NewOrderedArgs(nil), OptionTolerateMissing)
	require.NoError(t, err)
	assert.Equal(t, "a } b", result)
}

func TestFormat_NilSource(t *testing.T) {
	_, err := Format("{a}", nil, OptionNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNilArgumentSource)
}

func TestFormat_NoHolesReturnsTemplate(t *testing.T) {
	template := "plain text without holes"
	var args ArgumentSource = NewOrderedArgs(nil)

	allocs := testing.AllocsPerRun(100, func() {
		result, err := Format(template, args, OptionNone)
		if err != nil || result != template {
			t.Fatal("unexpected result")
		}
	})
	assert.Zero(t, allocs)
}

func TestFormatAll(t *testing.T) {
	result, err := FormatAll("{b}{a}", Arg("a", "A"), Arg("b", "B"))
	require.NoError(t, err)
	assert.Equal(t, "BA", result)

	t.Run("first duplicate wins", func(t *testing.T) {
		result, err := FormatAll("{x}", Arg("x", "first"), Arg("y", 0), Arg("x", "second"))
		require.NoError(t, err)
		assert.Equal(t, "first", result)
	})

	t.Run("does not reorder caller slice", func(t *testing.T) {
		args := []Argument{Arg("z", 1), Arg("a", 2)}
		_, err := FormatAll("{a}{z}", args...)
		require.NoError(t, err)
		assert.Equal(t, "z", args[0].Symbol)
	})

	t.Run("strict", func(t *testing.T) {
		_, err := FormatAll("{nope}")
		assert.True(t, IsMissingArgument(err))
	})
}

func TestFormatAny(t *testing.T) {
	result, err := FormatAny("Hi {user}, {other}", Arg("other", 1))
	require.NoError(t, err)
	assert.Equal(t, "Hi {user}, 1", result)

	_, err = FormatAny("{open")
	assert.True(t, IsUnterminatedHole(err))
}

func TestFormatMap(t *testing.T) {
	result, err := FormatMap("{a}-{b}", map[string]int{"a": 1, "b": 2}, OptionNone)
	require.NoError(t, err)
	assert.Equal(t, "1-2", result)
}

func TestAppendFormat(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("> ")

	err := AppendFormat(&sb, "{a}", SortArgs(Arg("a", "x")), OptionNone)
	require.NoError(t, err)
	assert.Equal(t, "> x", sb.String())

	err = AppendFormat(&sb, "{b}", SortArgs(Arg("a", "x")), OptionNone)
	require.Error(t, err)
	assert.Equal(t, "> x", sb.String())
}

func TestFormatTo(t *testing.T) {
	var buf bytes.Buffer

	n, err := FormatTo(&buf, "${a}!", SortArgs(Arg("a", "hey")), OptionDollarHoles)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "hey!", buf.String())

	n, err = FormatTo(&buf, "${a", SortArgs(Arg("a", "hey")), OptionDollarHoles)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "hey!", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestFormatTo_WriterError(t *testing.T) {
	_, err := FormatTo(failingWriter{}, "x", NewOrderedArgs(nil), OptionNone)
	assert.EqualError(t, err, "closed")
}

func TestFormatOptions_String(t *testing.T) {
	assert.Equal(t, OptionNameNone, OptionNone.String())
	assert.Equal(t, OptionNameDollarHoles, OptionDollarHoles.String())
	assert.Equal(t, OptionNameTolerateMissing, OptionTolerateMissing.String())
	assert.Equal(t, "dollar|tolerant", (OptionDollarHoles | OptionTolerateMissing).String())
	assert.True(t, (OptionDollarHoles | OptionTolerateMissing).Has(OptionDollarHoles))
	assert.False(t, OptionNone.Has(OptionTolerateMissing))
}

func TestFormat_PackageLevelUsesDefaultFormatter(t *testing.T) {
	args := SortArgs(Arg("a", 1), Arg("b", "two"))
	template := "{a}/{b} {{x}}"

	expected, err := MustNew().Format(template, args, OptionNone)
	require.NoError(t, err)

	result, err := Format(template, args, OptionNone)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, "1/two {x}", result)

	var sb strings.Builder
	require.NoError(t, AppendFormat(&sb, template, args, OptionNone))
	assert.Equal(t, expected, sb.String())
}
