package holefmt

import (
	"github.com/itsatony/go-holefmt/internal"
)

const (
	ctl = EscapeLevelControl
	quo = EscapeLevelControl | EscapeLevelQuote
)

// cEscapeTable flags C-style escapes: control characters and backslash at
// EscapeLevelControl, the double quote at both levels.
var cEscapeTable = [MinEscapeTableSize]byte{
	// NUL                        \b \t \n \v \f \r
	ctl, 0, 0, 0, 0, 0, 0, 0, ctl, ctl, ctl, ctl, ctl, ctl, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	//   !  "  #  $  %  &  '  (  )  *  +  ,  -  .  /  0  1  2  3  4  5  6  7  8  9  :  ;  <  =  >  ?
	0, 0, quo, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// @  A  B  C  D  E  F  G  H  I  J  K  L  M  N  O  P  Q  R  S  T  U  V  W  X  Y  Z  [  \  ]  ^  _
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, ctl, 0, 0, 0,
	// `  a  b  c  d  e  f  g  h  i  j  k  l  m  n  o  p  q  r  s  t  u  v  w  x  y  z  {  |  }  ~ DEL
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// cEscaper is shared by EscapeC and EscapeQuotes
var cEscaper = internal.NewEscaper(EscapePrefixBackslash, "", cEscapeTable[:], nil)

// CEscapeTable returns a copy of the C-style escape table.
func CEscapeTable() []byte {
	table := cEscapeTable
	return table[:]
}

// Escape inserts prefix and postfix around every byte b of input with
// table[b]&level != 0. Bytes at or past len(table) are never escaped.
// When no byte matches, input is returned without allocating.
//
// The table must have at least MinEscapeTableSize entries.
func Escape(input, prefix, postfix string, table []byte, level byte) (string, error) {
	if len(table) < MinEscapeTableSize {
		return "", NewInvalidEscapeTableError(len(table))
	}
	return internal.Escape(input, prefix, postfix, table, level, nil), nil
}

// EscapeC escapes NUL, \b, \t, \n, \v, \f, \r, backslash and the double
// quote with a backslash.
func EscapeC(s string) string {
	return cEscaper.Escape(s, EscapeLevelControl)
}

// EscapeQuotes escapes double quotes with a backslash.
func EscapeQuotes(s string) string {
	return cEscaper.Escape(s, EscapeLevelQuote)
}

// Unescape reverses Escape for the given prefix and postfix: each prefix,
// byte, postfix sequence becomes the byte. The result equals the original
// input as long as prefix and postfix did not occur unescaped in it.
func Unescape(s, prefix, postfix string) string {
	return internal.Unescape(s, prefix, postfix, nil)
}

// UnescapeC reverses EscapeC and EscapeQuotes.
func UnescapeC(s string) string {
	return internal.Unescape(s, EscapePrefixBackslash, "", nil)
}
