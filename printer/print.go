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

package printer

import (
	"fmt"

	"github.com/sexpkit/sexp/ast"
)

// Print renders the given elements as compact s-expression text.
func Print(elems ...ast.SpannedElement) string {
	var p Printer
	for _, e := range elems {
		p.Element(e)
	}
	return p.String()
}

// Element emits one element tree.
func (p *Printer) Element(e ast.SpannedElement) {
	switch el := e.Element.(type) {
	case ast.Group:
		p.Open(el.Kind)
		for _, child := range el.Children {
			p.Element(child)
		}
		p.Close(el.Kind)
	case ast.Comment:
		p.Text(string(el))
	case ast.Atom:
		p.Text(AtomText(el))
	default:
		panic(fmt.Sprintf("printer: unknown element %T", e.Element))
	}
}

// AtomText renders an atom as it would appear in source text, including
// base prefixes, quotes, and bytes-literal delimiters.
func AtomText(a ast.Atom) string {
	switch at := a.(type) {
	case ast.Number:
		return at.Base.Prefix() + at.Raw
	case ast.Decimal:
		return at.RawIntegral + "." + at.RawFractional
	case ast.String:
		return `"` + at.Raw + `"`
	case ast.Bytes:
		return "#" + at.Raw + "#"
	case ast.Ident:
		return string(at)
	}
	panic(fmt.Sprintf("printer: unknown atom %T", a))
}
