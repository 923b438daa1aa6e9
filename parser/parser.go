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
	"errors"
	"io"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/source"
)

// Parser produces one fully balanced top-level element per call to [Parser.Next].
//
// Group balance is tracked with an explicit frame stack rather than
// recursive descent, so depth lives in a data structure instead of the call
// stack; the stack is rebuilt fresh on every call.
type Parser struct {
	tok *Tokenizer
}

// frame is one open group awaiting its closing delimiter.
type frame struct {
	kind     ast.GroupKind
	open     source.Span
	children []ast.SpannedElement
}

// NewParser returns a parser over input with [DefaultConfig].
func NewParser(input string) *Parser {
	return &Parser{tok: NewTokenizer(input)}
}

// NewParserWithConfig returns a parser over input with the given feature
// set.
func NewParserWithConfig(input string, cfg Config) *Parser {
	return &Parser{tok: NewTokenizerWithConfig(input, cfg)}
}

// Next returns the next top-level element: a lone atom or comment, or a
// complete group tree. It returns [io.EOF] at a clean end of input. Any
// malformed group aborts the call with a positioned error and no partial
// tree.
func (p *Parser) Next() (ast.SpannedElement, error) {
	var stack []frame
	for {
		tok, err := p.tok.Next()
		if errors.Is(err, io.EOF) {
			if len(stack) == 0 {
				return ast.SpannedElement{}, io.EOF
			}
			top := stack[len(stack)-1]
			return ast.SpannedElement{}, &ErrUnfinishedGroup{Kind: top.kind, Open: top.open}
		}
		if err != nil {
			return ast.SpannedElement{}, err
		}

		switch tk := tok.Token.(type) {
		case ast.Open:
			stack = append(stack, frame{kind: tk.Kind, open: tok.Span})

		case ast.Close:
			if len(stack) == 0 {
				return ast.SpannedElement{}, &ErrExtraClose{Pos: tok.Span.Start, Kind: tk.Kind}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.kind != tk.Kind {
				return ast.SpannedElement{}, &ErrMismatchedGroup{
					Group:    top.open.Extend(tok.Span),
					Expected: top.kind,
					Got:      tk.Kind,
				}
			}
			group := ast.SpannedElement{
				Span:    top.open.Extend(tok.Span),
				Element: ast.Group{Kind: top.kind, Children: top.children},
			}
			if len(stack) == 0 {
				return group, nil
			}
			stack[len(stack)-1].children = append(stack[len(stack)-1].children, group)

		default:
			// Comments and atoms are leaves; both are elements as-is.
			el := ast.SpannedElement{Span: tok.Span, Element: tok.Token.(ast.Element)}
			if len(stack) == 0 {
				return el, nil
			}
			stack[len(stack)-1].children = append(stack[len(stack)-1].children, el)
		}
	}
}
