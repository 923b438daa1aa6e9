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

package ast

import "fmt"

// GroupKind identifies the delimiter pair of a group. The set is closed:
// parentheses, brackets, and braces are the only group delimiters.
type GroupKind byte

const (
	GroupParen GroupKind = iota
	GroupBracket
	GroupBrace
)

// OpenDelim returns the opening delimiter character for k.
func (k GroupKind) OpenDelim() byte {
	switch k {
	case GroupParen:
		return '('
	case GroupBracket:
		return '['
	case GroupBrace:
		return '{'
	}
	panic(fmt.Sprintf("ast: invalid GroupKind %d", k))
}

// CloseDelim returns the closing delimiter character for k.
func (k GroupKind) CloseDelim() byte {
	switch k {
	case GroupParen:
		return ')'
	case GroupBracket:
		return ']'
	case GroupBrace:
		return '}'
	}
	panic(fmt.Sprintf("ast: invalid GroupKind %d", k))
}

// String implements [fmt.Stringer].
func (k GroupKind) String() string {
	switch k {
	case GroupParen:
		return "paren"
	case GroupBracket:
		return "bracket"
	case GroupBrace:
		return "brace"
	}
	return fmt.Sprintf("GroupKind(%d)", k)
}
