// Copyright 2023-2026 The sexpkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/source"
)

// Every error in this package carries where it happened; each exposes a
// Span method so diagnostic renderers can point at the offending input.
// Error messages themselves stay position-free.
//
// The taxonomy has three tiers. Decode errors (from utf8x) are wrapped in
// [ErrDecode] by the tokenizer; the tokenizer's own lexical errors and
// [ErrDecode] pass through the parser unchanged; the parser adds the three
// structural errors. Match with [errors.As].

// ErrDecode wraps a UTF-8 decode failure with the byte offset and position
// it occurred at.
type ErrDecode struct {
	Offset int
	Pos    source.Position
	Err    error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("malformed input at byte offset %d: %v", e.Offset, e.Err)
}

func (e *ErrDecode) Unwrap() error { return e.Err }

// Span implements [report.Spanner].
func (e *ErrDecode) Span() source.Span { return source.Point(e.Pos) }

// ErrUnterminatedString reports a string literal cut short by the end of
// input. Pos is the position scanning had reached.
type ErrUnterminatedString struct {
	Pos source.Position
}

func (e *ErrUnterminatedString) Error() string { return "unterminated string" }

// Span implements [report.Spanner].
func (e *ErrUnterminatedString) Span() source.Span { return source.Point(e.Pos) }

// ErrUnterminatedBytes reports a bytes literal cut short by the end of
// input before its closing '#'.
type ErrUnterminatedBytes struct {
	Pos source.Position
}

func (e *ErrUnterminatedBytes) Error() string { return "unterminated bytes literal" }

// Span implements [report.Spanner].
func (e *ErrUnterminatedBytes) Span() source.Span { return source.Point(e.Pos) }

// ErrBadBytesTerminator reports a bytes literal whose hex digit run was
// followed by something other than the closing '#'.
type ErrBadBytesTerminator struct {
	Pos source.Position
	Got rune
}

func (e *ErrBadBytesTerminator) Error() string {
	return fmt.Sprintf("unterminated bytes literal: expected '#', found %q", e.Got)
}

// Span implements [report.Spanner].
func (e *ErrBadBytesTerminator) Span() source.Span { return source.Point(e.Pos) }

// ErrUnexpectedChar reports a character that matches none of the lexical
// rules.
type ErrUnexpectedChar struct {
	Pos source.Position
	Got rune
}

func (e *ErrUnexpectedChar) Error() string {
	return fmt.Sprintf("unprocessable character %q", e.Got)
}

// Span implements [report.Spanner].
func (e *ErrUnexpectedChar) Span() source.Span { return source.Point(e.Pos) }

// ErrExtraClose reports a closing delimiter with no matching open.
type ErrExtraClose struct {
	Pos  source.Position
	Kind ast.GroupKind
}

func (e *ErrExtraClose) Error() string {
	return fmt.Sprintf("unbalanced: unexpected close of %s group", e.Kind)
}

// Span implements [report.Spanner].
func (e *ErrExtraClose) Span() source.Span { return source.Point(e.Pos) }

// ErrMismatchedGroup reports a group whose closing delimiter is of a
// different kind than its opening one. The span covers the whole group,
// from open to close.
type ErrMismatchedGroup struct {
	Group    source.Span
	Expected ast.GroupKind
	Got      ast.GroupKind
}

func (e *ErrMismatchedGroup) Error() string {
	return fmt.Sprintf("mismatched group: %s opened but %s closed", e.Expected, e.Got)
}

// Span implements [report.Spanner].
func (e *ErrMismatchedGroup) Span() source.Span { return e.Group }

// ErrUnfinishedGroup reports input that ended while a group was still open.
// Kind and Open identify the innermost open delimiter.
type ErrUnfinishedGroup struct {
	Kind ast.GroupKind
	Open source.Span
}

func (e *ErrUnfinishedGroup) Error() string {
	return fmt.Sprintf("unfinished %s group", e.Kind)
}

// Span implements [report.Spanner].
func (e *ErrUnfinishedGroup) Span() source.Span { return e.Open }
