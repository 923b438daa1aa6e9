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

import "github.com/sexpkit/sexp/ast"

// scanString lexes a string literal after its opening quote has been
// consumed. The raw payload is the text between the quotes, escapes left
// in place. A backslash suppresses the special meaning of exactly the next
// character, so `\"` does not end the literal.
func (t *Tokenizer) scanString() (ast.String, error) {
	startOff := t.offset
	hasEscape := false
	escaped := false
	for {
		r, size, err := t.peek()
		if err != nil {
			return ast.String{}, err
		}
		if r < 0 {
			return ast.String{}, &ErrUnterminatedString{Pos: t.pos}
		}

		if escaped {
			escaped = false
		} else if r == '\\' {
			hasEscape = true
			escaped = true
		} else if r == '"' {
			raw := t.input[startOff:t.offset]
			t.bump(r, size)
			return ast.String{HasEscape: hasEscape, Raw: raw}, nil
		}
		t.bump(r, size)
	}
}

// scanBytes lexes a `#hexdigits#` literal after its opening '#' has been
// consumed: a maximal run of ASCII hex digits, then the closing '#'.
// Running out of input and hitting a non-'#' terminator are distinct
// failures.
func (t *Tokenizer) scanBytes() (ast.Bytes, error) {
	startOff := t.offset
	if err := t.skipWhile(isASCIIHexDigit); err != nil {
		return ast.Bytes{}, err
	}

	r, size, err := t.peek()
	if err != nil {
		return ast.Bytes{}, err
	}
	if r < 0 {
		return ast.Bytes{}, &ErrUnterminatedBytes{Pos: t.pos}
	}
	if r != '#' {
		return ast.Bytes{}, &ErrBadBytesTerminator{Pos: t.pos, Got: r}
	}

	raw := t.input[startOff:t.offset]
	t.bump(r, size)
	return ast.Bytes{Raw: raw}, nil
}
