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
	"io"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/source"
	"github.com/sexpkit/sexp/utf8x"
)

// Tokenizer is a cursor over an in-memory buffer that produces one lexical
// token per call. Token payloads are slices of the input, valid for the
// input's lifetime.
type Tokenizer struct {
	input  string
	offset int
	pos    source.Position
	cfg    Config
}

// NewTokenizer returns a tokenizer over input with [DefaultConfig].
func NewTokenizer(input string) *Tokenizer {
	return NewTokenizerWithConfig(input, DefaultConfig())
}

// NewTokenizerWithConfig returns a tokenizer over input with the given
// feature set.
func NewTokenizerWithConfig(input string, cfg Config) *Tokenizer {
	return &Tokenizer{
		input: input,
		pos:   source.Start(),
		cfg:   cfg,
	}
}

// Next returns the next token. It returns [io.EOF] at a clean end of
// input. Any other error aborts the call immediately; the tokenizer is not
// usable for further scanning past it.
func (t *Tokenizer) Next() (ast.SpannedToken, error) {
	for {
		if err := t.skipWhitespace(); err != nil {
			return ast.SpannedToken{}, err
		}
		r, size, err := t.peek()
		if err != nil {
			return ast.SpannedToken{}, err
		}
		if r < 0 {
			return ast.SpannedToken{}, io.EOF
		}

		start := t.pos
		startOff := t.offset
		t.bump(r, size)

		tok, err := t.scan(start, startOff, r)
		if err != nil {
			return ast.SpannedToken{}, err
		}
		if tok.IsComment() && t.cfg.filterComments {
			continue
		}
		return tok, nil
	}
}

// scan lexes the token whose leading character r has just been consumed.
// Dispatch order: group delimiters, line comments, strings, bytes literals,
// numbers, and finally identifiers.
func (t *Tokenizer) scan(start source.Position, startOff int, r rune) (ast.SpannedToken, error) {
	switch {
	case r == '(':
		return t.spanned(start, ast.Open{Kind: ast.GroupParen}), nil
	case r == ')':
		return t.spanned(start, ast.Close{Kind: ast.GroupParen}), nil
	case t.cfg.brackets && r == '[':
		return t.spanned(start, ast.Open{Kind: ast.GroupBracket}), nil
	case t.cfg.brackets && r == ']':
		return t.spanned(start, ast.Close{Kind: ast.GroupBracket}), nil
	case t.cfg.braces && r == '{':
		return t.spanned(start, ast.Open{Kind: ast.GroupBrace}), nil
	case t.cfg.braces && r == '}':
		return t.spanned(start, ast.Close{Kind: ast.GroupBrace}), nil

	case r == ';':
		if err := t.skipUntil(func(c rune) bool { return c == '\n' }); err != nil {
			return ast.SpannedToken{}, err
		}
		return t.spanned(start, ast.Comment(t.input[startOff:t.offset])), nil

	case r == '"':
		str, err := t.scanString()
		if err != nil {
			return ast.SpannedToken{}, err
		}
		return t.spanned(start, str), nil

	case t.cfg.bytesLiterals && r == '#':
		bytes, err := t.scanBytes()
		if err != nil {
			return ast.SpannedToken{}, err
		}
		return t.spanned(start, bytes), nil

	case isASCIIDigit(r):
		atom, err := t.scanNumber(r, startOff)
		if err != nil {
			return ast.SpannedToken{}, err
		}
		return t.spanned(start, atom), nil

	case t.isIdentStart(r):
		if err := t.skipWhile(t.isIdentContinue); err != nil {
			return ast.SpannedToken{}, err
		}
		return t.spanned(start, ast.Ident(t.input[startOff:t.offset])), nil

	default:
		return ast.SpannedToken{}, &ErrUnexpectedChar{Pos: start, Got: r}
	}
}

// spanned wraps tok with a span from start to the current position.
func (t *Tokenizer) spanned(start source.Position, tok ast.Token) ast.SpannedToken {
	return ast.SpannedToken{
		Span:  source.Span{Start: start, End: t.pos},
		Token: tok,
	}
}

// peek decodes the character at the cursor without consuming it. At end of
// input it returns r == -1 with no error.
func (t *Tokenizer) peek() (rune, int, error) {
	r, size, err := utf8x.Decode(t.input, t.offset)
	if err != nil {
		return 0, 0, &ErrDecode{Offset: t.offset, Pos: t.pos, Err: err}
	}
	return r, size, nil
}

// bump consumes a character previously returned by peek, advancing both the
// byte offset and the line/column position.
func (t *Tokenizer) bump(r rune, size int) {
	t.pos = t.pos.Advance(r)
	t.offset += size
}

func (t *Tokenizer) skipWhitespace() error {
	return t.skipWhile(func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n'
	})
}

// skipWhile consumes characters while f holds, stopping at end of input.
func (t *Tokenizer) skipWhile(f func(rune) bool) error {
	for {
		r, size, err := t.peek()
		if err != nil {
			return err
		}
		if r < 0 || !f(r) {
			return nil
		}
		t.bump(r, size)
	}
}

// skipUntil consumes characters until f holds, stopping at end of input.
func (t *Tokenizer) skipUntil(f func(rune) bool) error {
	return t.skipWhile(func(r rune) bool { return !f(r) })
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
