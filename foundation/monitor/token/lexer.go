// File: lexer.go
// Title: Command Line Tokenizer
// Description: Converts a monitor command line into typed tokens. Words are
//              separated by whitespace and by the punctuation [ ] , = ; each
//              word is then classified as hex, decimal, float, boolean, null
//              or literal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial lexer implementation

package token

import (
	"strconv"
	"strings"

	"github.com/msto63/devmon/foundation/monitor/fault"
)

// Lexer performs lexical analysis of a single command line
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize splits a command line into tokens
func Tokenize(line string) ([]Token, error) {
	return NewLexer(line).Tokenize()
}

// Tokenize returns all tokens from the input. A '#' outside a string starts a
// comment that runs to the end of the line.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		l.skipWhitespace()
		if l.ch == 0 || l.ch == '#' {
			return tokens, nil
		}
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) nextToken() (Token, error) {
	start := l.position
	switch l.ch {
	case '[':
		l.readChar()
		return NewLeftBrace(), nil
	case ']':
		l.readChar()
		return NewRightBrace(), nil
	case ',':
		l.readChar()
		return NewComma(), nil
	case '=':
		l.readChar()
		return NewEquality(), nil
	case '"', '\'':
		text, err := l.readString(l.ch)
		if err != nil {
			return Token{}, err
		}
		return NewString(text), nil
	case '@':
		l.readChar()
		path, err := l.readWordOrString()
		if err != nil {
			return Token{}, err
		}
		if path == "" {
			return Token{}, fault.Syntaxf("Empty path at column %d", start+1)
		}
		return NewPath(path), nil
	case '$':
		l.readChar()
		name := l.readWord()
		if name == "" {
			return Token{}, fault.Syntaxf("Empty variable name at column %d", start+1)
		}
		return NewVariable(name), nil
	}

	word := l.readWord()
	return classify(word, start)
}

// classify turns a bare word into a typed token
func classify(word string, column int) (Token, error) {
	lower := strings.ToLower(word)
	switch lower {
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	case "null":
		return NewNull(), nil
	}

	if strings.HasPrefix(lower, "0x") && len(word) > 2 {
		v, err := strconv.ParseUint(word[2:], 16, 64)
		if err == nil {
			return Token{Kind: Hexadecimal, Text: word, value: v}, nil
		}
		if isHexDigits(word[2:]) {
			return Token{}, fault.Syntaxf("Hexadecimal value %s out of range at column %d", word, column+1)
		}
		return NewLiteral(word), nil
	}

	if !startsNumeric(word) {
		return NewLiteral(word), nil
	}
	if v, err := strconv.ParseInt(word, 10, 64); err == nil {
		return Token{Kind: DecimalInteger, Text: word, value: v}, nil
	} else if isDecimalDigits(strings.TrimLeft(word, "+-")) {
		return Token{}, fault.Syntaxf("Integer value %s out of range at column %d", word, column+1)
	}
	if v, err := strconv.ParseFloat(word, 64); err == nil {
		return Token{Kind: Float, Text: word, value: v}, nil
	}
	return NewLiteral(word), nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL marks end of input
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readWord reads up to the next whitespace or punctuation character
func (l *Lexer) readWord() string {
	start := l.position
	for l.ch != 0 && !isSeparator(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readWordOrString() (string, error) {
	if l.ch == '"' || l.ch == '\'' {
		return l.readString(l.ch)
	}
	return l.readWord(), nil
}

// readString reads a quoted string with backslash escapes
func (l *Lexer) readString(quote byte) (string, error) {
	start := l.position
	var b strings.Builder
	for {
		l.readChar()
		switch l.ch {
		case 0:
			return "", fault.Syntaxf("Unterminated string starting at column %d", start+1)
		case quote:
			l.readChar()
			return b.String(), nil
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 0:
				return "", fault.Syntaxf("Unterminated string starting at column %d", start+1)
			default:
				b.WriteByte(l.ch)
			}
		default:
			b.WriteByte(l.ch)
		}
	}
}

func isSeparator(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '[', ']', ',', '=', '"', '\'':
		return true
	}
	return false
}

func startsNumeric(word string) bool {
	if word == "" {
		return false
	}
	if word[0] == '-' || word[0] == '+' {
		word = word[1:]
	}
	return word != "" && (isDigit(word[0]) || (word[0] == '.' && len(word) > 1 && isDigit(word[1])))
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && !('a' <= c && c <= 'f') && !('A' <= c && c <= 'F') {
			return false
		}
	}
	return s != ""
}
