// SPDX-License-Identifier: MIT
// Package levels: sentinel error and the ParseError detail type.

package levels

import (
	"errors"
	"fmt"
)

// ErrParse is matched (errors.Is) by every *ParseError.
var ErrParse = errors.New("levels: parse error")

// ParseError reports a malformed level or ellipsis expression. Token is the
// offending token text ("" at end of input) and Pos its byte offset.
type ParseError struct {
	Input string
	Token string
	Pos   int
	Msg   string
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at end of %q: %s", ErrParse, e.Input, e.Msg)
	}
	return fmt.Sprintf("%v at offset %d near %q in %q: %s", ErrParse, e.Pos, e.Token, e.Input, e.Msg)
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }
