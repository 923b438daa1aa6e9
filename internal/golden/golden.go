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

// Package golden runs corpus tests: each input file under a testdata root
// is fed to a test callback, and the callback's output is compared against
// a golden file stored next to the input.
package golden

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a family of corpus tests.
type Corpus struct {
	// Root is the directory to glob for input files, usually "testdata".
	Root string

	// Refresh is the name of an environment variable which, when set,
	// causes golden files to be regenerated instead of compared.
	Refresh string

	// Extension is the input file extension, without a leading dot.
	Extension string

	// Output is the golden file extension, without a leading dot. For an
	// input "case.yaml" and output "tokens.txt", the golden file is
	// "case.tokens.txt".
	Output string
}

// Run globs the corpus and runs fn as a subtest on every input file,
// comparing its result with the corresponding golden file.
func (c Corpus) Run(t *testing.T, fn func(t *testing.T, path, text string) string) {
	pattern := filepath.Join(c.Root, "**", "*."+c.Extension)
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no corpus inputs matched %q", pattern)
	}

	refresh := c.Refresh != "" && os.Getenv(c.Refresh) != ""
	for _, path := range paths {
		name := strings.TrimPrefix(path, c.Root+string(filepath.Separator))
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			got := fn(t, path, string(text))
			goldenPath := strings.TrimSuffix(path, c.Extension) + c.Output

			if refresh {
				if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}

			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("missing golden file (set %s to regenerate): %v", c.Refresh, err)
			}
			if got != string(want) {
				diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(want)),
					B:        difflib.SplitLines(got),
					FromFile: goldenPath,
					ToFile:   "got",
					Context:  3,
				})
				t.Errorf("output does not match golden file:\n%s", diff)
			}
		})
	}
}
