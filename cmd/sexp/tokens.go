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

	"github.com/spf13/cobra"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src := string(data)

		tz := parser.NewTokenizerWithConfig(src, configFromFlags(cmd))
		for {
			tok, err := tz.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				printDiagnostic(cmd, path, src, err)
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tok.Span, describeToken(tok.Token))
		}
	},
}

// describeToken renders one token for the dump, one line per token.
func describeToken(tok ast.Token) string {
	switch tk := tok.(type) {
	case ast.Open:
		return "open " + tk.Kind.String()
	case ast.Close:
		return "close " + tk.Kind.String()
	case ast.Comment:
		return fmt.Sprintf("comment %q", string(tk))
	case ast.Ident:
		return fmt.Sprintf("ident %q", string(tk))
	case ast.Number:
		return fmt.Sprintf("integral %s %q", tk.Base, tk.Raw)
	case ast.Decimal:
		return fmt.Sprintf("decimal %q %q", tk.RawIntegral, tk.RawFractional)
	case ast.String:
		return fmt.Sprintf("string %q escape=%v", tk.Raw, tk.HasEscape)
	case ast.Bytes:
		return fmt.Sprintf("bytes %q", tk.Raw)
	}
	return fmt.Sprintf("unknown %T", tok)
}
