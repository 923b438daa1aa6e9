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
	"unicode"

	"github.com/sexpkit/sexp/ast"
)

// scanNumber lexes a numeric literal whose leading digit has already been
// consumed. A decimal-base integral may be followed by '.', which re-tags
// it as a Decimal with a possibly empty fractional part; binary and
// hexadecimal literals never take a fractional suffix.
func (t *Tokenizer) scanNumber(leading rune, startOff int) (ast.Atom, error) {
	num, err := t.scanIntegral(leading, startOff)
	if err != nil {
		return nil, err
	}
	if num.Base != ast.BaseDecimal {
		return num, nil
	}

	// A decode error on this peek is deliberately left for the next call
	// to surface; the integral literal scanned so far still stands.
	r, size, err := t.peek()
	if err != nil || r != '.' {
		return num, nil
	}
	t.bump(r, size)

	fracOff := t.offset
	if err := t.skipWhile(isASCIIDigit); err != nil {
		return nil, err
	}
	return ast.Decimal{
		RawIntegral:   num.Raw,
		RawFractional: t.input[fracOff:t.offset],
	}, nil
}

// scanIntegral lexes the integral part. A leading '0' selects a base when
// followed by 'b' or 'x'; followed by another digit it is an ordinary
// decimal literal with a leading zero (never octal); followed by anything
// else it is the literal "0" on its own.
func (t *Tokenizer) scanIntegral(leading rune, startOff int) (ast.Number, error) {
	r, size, err := t.peek()
	if err != nil {
		return ast.Number{}, err
	}
	if r < 0 {
		return ast.Number{Base: ast.BaseDecimal, Raw: t.input[startOff:t.offset]}, nil
	}

	if leading == '0' {
		switch {
		case r == 'b':
			t.bump(r, size)
			digitsOff := t.offset
			if err := t.skipWhile(isBinaryDigitOrSep); err != nil {
				return ast.Number{}, err
			}
			return ast.Number{Base: ast.BaseBinary, Raw: t.input[digitsOff:t.offset]}, nil

		case r == 'x':
			t.bump(r, size)
			digitsOff := t.offset
			if err := t.skipWhile(isHexDigitOrSep); err != nil {
				return ast.Number{}, err
			}
			return ast.Number{Base: ast.BaseHexadecimal, Raw: t.input[digitsOff:t.offset]}, nil

		case isASCIIDigit(r):
			t.bump(r, size)
			if err := t.skipWhile(isNumericOrSep); err != nil {
				return ast.Number{}, err
			}
			return ast.Number{Base: ast.BaseDecimal, Raw: t.input[startOff:t.offset]}, nil

		default:
			return ast.Number{Base: ast.BaseDecimal, Raw: t.input[startOff:t.offset]}, nil
		}
	}

	if isASCIIDigit(r) {
		t.bump(r, size)
		if err := t.skipWhile(isNumericOrSep); err != nil {
			return ast.Number{}, err
		}
	}
	return ast.Number{Base: ast.BaseDecimal, Raw: t.input[startOff:t.offset]}, nil
}

func isBinaryDigitOrSep(r rune) bool {
	return r == '0' || r == '1' || r == '_'
}

func isHexDigitOrSep(r rune) bool {
	return isASCIIHexDigit(r) || r == '_'
}

func isNumericOrSep(r rune) bool {
	return unicode.IsNumber(r) || r == '_'
}
