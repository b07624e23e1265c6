// File: token.go
// Title: Token Kinds
// Description: The closed set of token kinds and the immutable Token value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a token
type Kind int

const (
	Literal        Kind = iota // sysbus.uart0, Configure
	String                     // "quoted string"
	Path                       // @/path/to/file
	DecimalInteger             // 42, -7
	Hexadecimal                // 0x10
	Float                      // 1.5
	Boolean                    // true, false
	Null                       // null
	LeftBrace                  // [
	RightBrace                 // ]
	Comma                      // ,
	Equality                   // =
	Variable                   // $name
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case Literal:
		return "LITERAL"
	case String:
		return "STRING"
	case Path:
		return "PATH"
	case DecimalInteger:
		return "DECIMAL"
	case Hexadecimal:
		return "HEX"
	case Float:
		return "FLOAT"
	case Boolean:
		return "BOOLEAN"
	case Null:
		return "NULL"
	case LeftBrace:
		return "LEFT_BRACE"
	case RightBrace:
		return "RIGHT_BRACE"
	case Comma:
		return "COMMA"
	case Equality:
		return "EQUALITY"
	case Variable:
		return "VARIABLE"
	default:
		return "UNKNOWN"
	}
}

// Token is an immutable typed token. Text holds the token as written, without
// quotes for strings and without the sigil for paths and variables.
type Token struct {
	Kind Kind
	Text string

	value interface{}
}

// NewLiteral creates a bare word token
func NewLiteral(text string) Token { return Token{Kind: Literal, Text: text, value: text} }

// NewString creates a quoted string token
func NewString(text string) Token { return Token{Kind: String, Text: text, value: text} }

// NewPath creates a path token
func NewPath(path string) Token { return Token{Kind: Path, Text: path, value: path} }

// NewDecimal creates a decimal integer token
func NewDecimal(v int64) Token {
	return Token{Kind: DecimalInteger, Text: strconv.FormatInt(v, 10), value: v}
}

// NewHex creates a hexadecimal integer token
func NewHex(v uint64) Token {
	return Token{Kind: Hexadecimal, Text: fmt.Sprintf("0x%X", v), value: v}
}

// NewFloat creates a floating point token
func NewFloat(v float64) Token {
	return Token{Kind: Float, Text: strconv.FormatFloat(v, 'g', -1, 64), value: v}
}

// NewBool creates a boolean token
func NewBool(v bool) Token { return Token{Kind: Boolean, Text: strconv.FormatBool(v), value: v} }

// NewNull creates the null token
func NewNull() Token { return Token{Kind: Null, Text: "null"} }

// NewLeftBrace creates an opening bracket token
func NewLeftBrace() Token { return Token{Kind: LeftBrace, Text: "["} }

// NewRightBrace creates a closing bracket token
func NewRightBrace() Token { return Token{Kind: RightBrace, Text: "]"} }

// NewComma creates a comma token
func NewComma() Token { return Token{Kind: Comma, Text: ","} }

// NewEquality creates an assignment token
func NewEquality() Token { return Token{Kind: Equality, Text: "="} }

// NewVariable creates a variable reference token
func NewVariable(name string) Token { return Token{Kind: Variable, Text: name, value: name} }

// Value returns the typed payload: string for textual kinds and variables,
// int64 for decimals, uint64 for hex, float64, bool, and nil for null and
// punctuation.
func (t Token) Value() interface{} {
	return t.value
}

// IsText reports whether the token carries free text (literal, string or path)
func (t Token) IsText() bool {
	return t.Kind == Literal || t.Kind == String || t.Kind == Path
}

// String returns the token as it would be typed
func (t Token) String() string {
	switch t.Kind {
	case String:
		return strconv.Quote(t.Text)
	case Path:
		return "@" + t.Text
	case Variable:
		return "$" + t.Text
	default:
		return t.Text
	}
}
