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

// Element is one node of the parse tree: a [Group], a [Comment], or any
// [Atom].
type Element interface {
	isElement()
}

// Group is a delimited sequence of elements. Children are in source order.
type Group struct {
	Kind     GroupKind
	Children []SpannedElement
}

func (Group) isElement()   {}
func (Comment) isElement() {}
func (Number) isElement()  {}
func (Decimal) isElement() {}
func (String) isElement()  {}
func (Bytes) isElement()   {}
func (Ident) isElement()   {}

// SpannedElement is an element together with the source range it covers.
// A group's span runs from its opening delimiter's start to just past its
// closing delimiter.
type SpannedElement struct {
	Span    source.Span
	Element Element
}

// Atom returns the element's atom, if it is one.
func (e SpannedElement) Atom() (Atom, bool) {
	a, ok := e.Element.(Atom)
	return a, ok
}

// Comment returns the comment text, if the element is a comment.
func (e SpannedElement) Comment() (string, bool) {
	c, ok := e.Element.(Comment)
	return string(c), ok
}

// Group returns the element's children if it is a group of the given kind.
func (e SpannedElement) Group(kind GroupKind) ([]SpannedElement, bool) {
	g, ok := e.Element.(Group)
	if !ok || g.Kind != kind {
		return nil, false
	}
	return g.Children, true
}

// Paren returns the element's children if it is a paren group.
func (e SpannedElement) Paren() ([]SpannedElement, bool) {
	return e.Group(GroupParen)
}

// Bracket returns the element's children if it is a bracket group.
func (e SpannedElement) Bracket() ([]SpannedElement, bool) {
	return e.Group(GroupBracket)
}

// Brace returns the element's children if it is a brace group.
func (e SpannedElement) Brace() ([]SpannedElement, bool) {
	return e.Group(GroupBrace)
}

// Ident returns the identifier text, if the element is an identifier atom.
func (e SpannedElement) Ident() (string, bool) {
	id, ok := e.Element.(Ident)
	return string(id), ok
}

// Number returns the integral literal, if the element is one.
func (e SpannedElement) Number() (Number, bool) {
	n, ok := e.Element.(Number)
	return n, ok
}

// Decimal returns the decimal literal, if the element is one.
func (e SpannedElement) Decimal() (Decimal, bool) {
	d, ok := e.Element.(Decimal)
	return d, ok
}

// StringLit returns the string literal, if the element is one.
func (e SpannedElement) StringLit() (String, bool) {
	s, ok := e.Element.(String)
	return s, ok
}

// BytesLit returns the bytes literal, if the element is one.
func (e SpannedElement) BytesLit() (Bytes, bool) {
	b, ok := e.Element.(Bytes)
	return b, ok
}
