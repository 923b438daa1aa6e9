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

// Package printer renders elements back to compact s-expression text.
//
// The emitter has two states: a separating space is written only between
// two consecutive text emissions, or before an opening delimiter that
// follows text. Nothing is written immediately after an opening delimiter
// or before a closing one.
package printer

import (
	"strings"

	"github.com/sexpkit/sexp/ast"
)

type state byte

const (
	afterGroup state = iota
	afterText
)

// Printer accumulates s-expression text. The zero value is ready to use.
type Printer struct {
	buf  strings.Builder
	prev state
}

// Open begins a group of the given kind.
func (p *Printer) Open(kind ast.GroupKind) {
	if p.prev == afterText {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteByte(kind.OpenDelim())
	p.prev = afterGroup
}

// Close ends a group of the given kind.
func (p *Printer) Close(kind ast.GroupKind) {
	p.buf.WriteByte(kind.CloseDelim())
	p.prev = afterGroup
}

// Text emits one atom's worth of text.
func (p *Printer) Text(s string) {
	if p.prev == afterText {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(s)
	p.prev = afterText
}

// String returns everything emitted so far.
func (p *Printer) String() string {
	return p.buf.String()
}
