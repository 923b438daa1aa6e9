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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/source"
)

func TestElementProjections(t *testing.T) {
	t.Parallel()

	ident := ast.SpannedElement{Span: source.OnLine(1, 1, 4), Element: ast.Ident("let")}
	group := ast.SpannedElement{
		Span:    source.OnLine(1, 0, 5),
		Element: ast.Group{Kind: ast.GroupParen, Children: []ast.SpannedElement{ident}},
	}

	children, ok := group.Paren()
	require.True(t, ok)
	require.Len(t, children, 1)

	id, ok := children[0].Ident()
	require.True(t, ok)
	assert.Equal(t, "let", id)

	_, ok = group.Bracket()
	assert.False(t, ok)
	_, ok = group.Atom()
	assert.False(t, ok)
	_, ok = ident.Paren()
	assert.False(t, ok)

	atom, ok := ident.Atom()
	require.True(t, ok)
	assert.Equal(t, ast.Ident("let"), atom)
}

func TestCommentProjection(t *testing.T) {
	t.Parallel()

	el := ast.SpannedElement{Span: source.OnLine(1, 0, 6), Element: ast.Comment("; note")}
	text, ok := el.Comment()
	require.True(t, ok)
	assert.Equal(t, "; note", text)

	// Comments are not atoms.
	_, ok = el.Atom()
	assert.False(t, ok)
}

func TestAtomProjections(t *testing.T) {
	t.Parallel()

	el := ast.SpannedElement{Element: ast.Number{Base: ast.BaseDecimal, Raw: "42"}}
	n, ok := el.Number()
	require.True(t, ok)
	assert.Equal(t, "42", n.Raw)
	_, ok = el.Decimal()
	assert.False(t, ok)

	el = ast.SpannedElement{Element: ast.String{HasEscape: true, Raw: `a\"b`}}
	s, ok := el.StringLit()
	require.True(t, ok)
	assert.True(t, s.HasEscape)

	el = ast.SpannedElement{Element: ast.Bytes{Raw: "dead"}}
	b, ok := el.BytesLit()
	require.True(t, ok)
	assert.Equal(t, "dead", b.Raw)
}
