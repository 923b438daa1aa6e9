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

// Command sexp is a toolkit for s-expression files: it reformats them,
// dumps their token streams, and dumps their parse trees.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sexpkit/sexp/parser"
	"github.com/sexpkit/sexp/report"
)

var rootCmd = &cobra.Command{
	Use:           "sexp",
	Short:         "S-expression toolkit",
	Long:          "sexp reformats s-expression files and inspects their tokens and parse trees.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)

	flags := rootCmd.PersistentFlags()
	flags.Bool("filter-comments", false, "drop comments from the token stream")
	flags.Bool("no-bytes", false, "disable #hexdigits# bytes literals")
	flags.Bool("no-brackets", false, "disable [...] groups")
	flags.Bool("no-braces", false, "disable {...} groups")
	flags.Bool("ascii", false, "restrict identifiers to ASCII rules")
	flags.String("color", "auto", "colorize diagnostics (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configFromFlags translates the persistent flags into a tokenizer config.
func configFromFlags(cmd *cobra.Command) parser.Config {
	flags := cmd.Flags()
	cfg := parser.DefaultConfig()
	if on, _ := flags.GetBool("filter-comments"); on {
		cfg = cfg.WithComments(false)
	}
	if on, _ := flags.GetBool("no-bytes"); on {
		cfg = cfg.WithBytes(false)
	}
	if on, _ := flags.GetBool("no-brackets"); on {
		cfg = cfg.WithBrackets(false)
	}
	if on, _ := flags.GetBool("no-braces"); on {
		cfg = cfg.WithBraces(false)
	}
	if on, _ := flags.GetBool("ascii"); on {
		cfg = cfg.WithUnicode(false)
	}
	return cfg
}

// rendererFromFlags builds the diagnostic renderer, applying the --color
// mode to the process-wide color switch.
func rendererFromFlags(cmd *cobra.Command) report.Renderer {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
	return report.Renderer{Colors: mode != "off"}
}

// printDiagnostic renders err against the file it came from.
func printDiagnostic(cmd *cobra.Command, path, src string, err error) {
	r := rendererFromFlags(cmd)
	fmt.Fprint(cmd.ErrOrStderr(), r.RenderString(path, src, err))
}
