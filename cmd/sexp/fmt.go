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
	"golang.org/x/sync/errgroup"

	"github.com/sexpkit/sexp/parser"
	"github.com/sexpkit/sexp/printer"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Reformat s-expression files to compact form",
	Long: "fmt parses each file and prints every top-level element back in " +
		"compact form, one per line. Files are parsed concurrently; output " +
		"is emitted in argument order.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromFlags(cmd)

		outputs := make([]string, len(args))
		var g errgroup.Group
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				src := string(data)

				var out strings.Builder
				p := parser.NewParserWithConfig(src, cfg)
				for {
					el, err := p.Next()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						printDiagnostic(cmd, path, src, err)
						return fmt.Errorf("%s: %w", path, err)
					}
					out.WriteString(printer.Print(el))
					out.WriteByte('\n')
				}
				outputs[i] = out.String()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, out := range outputs {
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}
