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
	"strings"
	"unicode"

	"github.com/sexpkit/sexp/utf8x"
)

// asciiOperators is the punctuation allowed in identifiers: every ASCII
// operator except delimiters, '"', and ';'. '#' is in the set, so with
// bytes literals disabled it lexes as an ordinary identifier character.
const asciiOperators = "?!#@$+-*/=<>,.:|%^&~'`"

func isASCIIOperator(r rune) bool {
	return r < 0x80 && strings.ContainsRune(asciiOperators, r)
}

// isIdentStart reports whether r can begin an identifier under the
// configured rules.
func (t *Tokenizer) isIdentStart(r rune) bool {
	if t.cfg.unicode {
		return xidStart(r) || r == '_' || isASCIIOperator(r) || utf8x.IsMathOperator(r)
	}
	return isASCIILetter(r) || r == '_' || isASCIIOperator(r)
}

// isIdentContinue reports whether r can continue an identifier; the
// continuation set adds digits to the start set.
func (t *Tokenizer) isIdentContinue(r rune) bool {
	if t.cfg.unicode {
		return xidContinue(r) || r == '_' || isASCIIDigit(r) ||
			isASCIIOperator(r) || utf8x.IsMathOperator(r)
	}
	return isASCIILetter(r) || r == '_' || isASCIIDigit(r) || isASCIIOperator(r)
}

// xidStart approximates Unicode XID_Start with the stdlib range tables:
// letters plus Other_ID_Start.
func xidStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Other_ID_Start, r)
}

// xidContinue approximates Unicode XID_Continue: XID_Start plus decimal
// digits, marks, connector punctuation, and Other_ID_Continue.
func xidContinue(r rune) bool {
	return xidStart(r) ||
		unicode.In(r, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc, unicode.Other_ID_Continue)
}
