// SPDX-License-Identifier: MIT
// Package levels: tokenizer shared by the level and ellipsis grammars.

package levels

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokString
	tokIdent
	tokColon
	tokComma
	tokLParen
	tokRParen
	tokTilde
	tokEquals
)

// token is one lexeme. text is the source text, except for strings where it
// is the unquoted value.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// is reports whether t is the identifier word (case-sensitive, like the
// notation it mirrors: NA, NULL, c).
func (t token) is(word string) bool { return t.kind == tokIdent && t.text == word }

// lexer scans an input string into tokens.
type lexer struct {
	input string
	pos   int
}

// tokenize scans the whole input. The returned slice always ends with tokEOF.
//
// Complexity: O(len(input)).
func tokenize(input string) ([]token, error) {
	var (
		lx   = lexer{input: input}
		toks = make([]token, 0, 16)
		tok  token
		err  error
	)
	for {
		tok, err = lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (lx *lexer) errorf(pos int, text, msg string) error {
	return &ParseError{Input: lx.input, Token: text, Pos: pos, Msg: msg}
}

func (lx *lexer) peekRune(off int) rune {
	if lx.pos+off >= len(lx.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(lx.input[lx.pos+off:])
	return r
}

func (lx *lexer) next() (token, error) {
	for lx.pos < len(lx.input) {
		r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		lx.pos += w
	}
	if lx.pos >= len(lx.input) {
		return token{kind: tokEOF, pos: lx.pos}, nil
	}

	start := lx.pos
	r := lx.peekRune(0)
	switch {
	case r == ':':
		lx.pos++
		return token{kind: tokColon, text: ":", pos: start}, nil
	case r == ',':
		lx.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil
	case r == '(':
		lx.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case r == ')':
		lx.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case r == '~':
		lx.pos++
		return token{kind: tokTilde, text: "~", pos: start}, nil
	case r == '=':
		lx.pos++
		return token{kind: tokEquals, text: "=", pos: start}, nil
	case r == '"' || r == '\'':
		return lx.scanString(r)
	case isDigit(r) || r == '.' && isDigit(lx.peekRune(1)):
		return lx.scanNumber(), nil
	case (r == '-' || r == '+') && (isDigit(lx.peekRune(1)) || lx.peekRune(1) == '.' && isDigit(lx.peekRune(2))):
		lx.pos++
		tok := lx.scanNumber()
		tok.pos = start
		tok.text = lx.input[start:lx.pos]
		return tok, nil
	case unicode.IsLetter(r) || r == '_':
		return lx.scanIdent(), nil
	default:
		_, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
		return token{}, lx.errorf(start, lx.input[start:start+w], "unexpected character")
	}
}

func (lx *lexer) scanNumber() token {
	start := lx.pos
	for isDigit(lx.peekRune(0)) {
		lx.pos++
	}
	if lx.peekRune(0) == '.' {
		lx.pos++
		for isDigit(lx.peekRune(0)) {
			lx.pos++
		}
	}
	if e := lx.peekRune(0); e == 'e' || e == 'E' {
		off := 1
		if s := lx.peekRune(1); s == '-' || s == '+' {
			off = 2
		}
		if isDigit(lx.peekRune(off)) {
			lx.pos += off
			for isDigit(lx.peekRune(0)) {
				lx.pos++
			}
		}
	}
	return token{kind: tokNumber, text: lx.input[start:lx.pos], pos: start}
}

func (lx *lexer) scanIdent() token {
	start := lx.pos
	for lx.pos < len(lx.input) {
		r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.') {
			break
		}
		lx.pos += w
	}
	return token{kind: tokIdent, text: lx.input[start:lx.pos], pos: start}
}

// scanString reads a quoted string; backslash escapes the next rune.
func (lx *lexer) scanString(quote rune) (token, error) {
	var (
		start = lx.pos
		b     strings.Builder
	)
	lx.pos++
	for lx.pos < len(lx.input) {
		r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
		lx.pos += w
		switch {
		case r == quote:
			return token{kind: tokString, text: b.String(), pos: start}, nil
		case r == '\\' && lx.pos < len(lx.input):
			esc, ew := utf8.DecodeRuneInString(lx.input[lx.pos:])
			lx.pos += ew
			b.WriteRune(esc)
		default:
			b.WriteRune(r)
		}
	}
	return token{}, lx.errorf(start, lx.input[start:], "unterminated string")
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
