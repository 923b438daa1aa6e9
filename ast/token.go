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

import "github.com/sexpkit/sexp/source"

// Token is one lexical token: an [Open] or [Close] delimiter, a [Comment],
// or any [Atom].
type Token interface {
	isToken()
}

// Open is the opening delimiter of a group.
type Open struct {
	Kind GroupKind
}

// Close is the closing delimiter of a group.
type Close struct {
	Kind GroupKind
}

// Comment is a line comment, including the leading ';' and running up to
// (but not including) the newline. Comments appear both as tokens and as
// elements.
type Comment string

func (Open) isToken()    {}
func (Close) isToken()   {}
func (Comment) isToken() {}
func (Number) isToken()  {}
func (Decimal) isToken() {}
func (String) isToken()  {}
func (Bytes) isToken()   {}
func (Ident) isToken()   {}

// SpannedToken is a token together with the source range it was lexed from.
// The span runs from the token's first character to just past its last.
type SpannedToken struct {
	Span  source.Span
	Token Token
}

// IsComment reports whether the token is a [Comment].
func (t SpannedToken) IsComment() bool {
	_, ok := t.Token.(Comment)
	return ok
}
