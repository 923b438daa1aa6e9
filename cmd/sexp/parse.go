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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/parser"
	"github.com/sexpkit/sexp/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the parse tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src := string(data)

		p := parser.NewParserWithConfig(src, configFromFlags(cmd))
		for {
			el, err := p.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				printDiagnostic(cmd, path, src, err)
				return fmt.Errorf("%s: %w", path, err)
			}
			dumpElement(cmd.OutOrStdout(), el, 0)
		}
	},
}

func dumpElement(w io.Writer, el ast.SpannedElement, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := el.Element.(type) {
	case ast.Group:
		fmt.Fprintf(w, "%s%s group %s\n", indent, e.Kind, el.Span)
		for _, child := range e.Children {
			dumpElement(w, child, depth+1)
		}
	case ast.Comment:
		fmt.Fprintf(w, "%scomment %q %s\n", indent, string(e), el.Span)
	case ast.Atom:
		fmt.Fprintf(w, "%satom %s %s\n", indent, printer.AtomText(e), el.Span)
	}
}
