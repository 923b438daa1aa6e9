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

package parser_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/internal/golden"
	"github.com/sexpkit/sexp/parser"
	"github.com/sexpkit/sexp/source"
)

// corpusCase is one tokenizer corpus input. Config fields are pointers so
// that absent keys keep their defaults.
type corpusCase struct {
	Description string `yaml:"description"`
	Config      struct {
		Comments *bool `yaml:"comments"`
		Bytes    *bool `yaml:"bytes"`
		Brackets *bool `yaml:"brackets"`
		Braces   *bool `yaml:"braces"`
		Unicode  *bool `yaml:"unicode"`
	} `yaml:"config"`
	Input string `yaml:"input"`
}

func (c corpusCase) config() parser.Config {
	cfg := parser.DefaultConfig()
	if c.Config.Comments != nil {
		cfg = cfg.WithComments(*c.Config.Comments)
	}
	if c.Config.Bytes != nil {
		cfg = cfg.WithBytes(*c.Config.Bytes)
	}
	if c.Config.Brackets != nil {
		cfg = cfg.WithBrackets(*c.Config.Brackets)
	}
	if c.Config.Braces != nil {
		cfg = cfg.WithBraces(*c.Config.Braces)
	}
	if c.Config.Unicode != nil {
		cfg = cfg.WithUnicode(*c.Config.Unicode)
	}
	return cfg
}

func TestLexCorpus(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "SEXP_REFRESH",
		Extension: "yaml",
		Output:    "tokens.txt",
	}
	corpus.Run(t, func(t *testing.T, path, text string) string {
		var c corpusCase
		require.NoError(t, yaml.Unmarshal([]byte(text), &c))

		tz := parser.NewTokenizerWithConfig(c.Input, c.config())
		var out strings.Builder
		for {
			tok, err := tz.Next()
			if errors.Is(err, io.EOF) {
				return out.String()
			}
			if err != nil {
				if sp, ok := err.(interface{ Span() source.Span }); ok {
					fmt.Fprintf(&out, "error: %s: %v\n", sp.Span().Start, err)
				} else {
					fmt.Fprintf(&out, "error: %v\n", err)
				}
				return out.String()
			}
			fmt.Fprintf(&out, "%s %s\n", tok.Span, dumpToken(tok.Token))
		}
	})
}

func dumpToken(tok ast.Token) string {
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
