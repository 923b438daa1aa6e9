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

// Package report renders parse and tokenize errors as human-readable
// diagnostics with a source snippet and an underline.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"

	"github.com/sexpkit/sexp/source"
)

// Spanner is any error (or other value) that knows the source range it
// refers to. All errors produced by the parser package implement it.
type Spanner interface {
	Span() source.Span
}

// Renderer formats diagnostics. The zero value renders plain text.
type Renderer struct {
	// Colorize the severity header and underline with ANSI escapes.
	// Whether escapes are actually emitted also honors the global
	// [color.NoColor] setting.
	Colors bool
}

var (
	headerColor = color.New(color.FgRed, color.Bold)
	gutterColor = color.New(color.FgBlue, color.Bold)
)

// RenderString formats err as a diagnostic for the given input text. If err
// carries a span, the output includes the offending source line with an
// underline; otherwise it is a single header line. path is used purely for
// display and may be empty.
func (r Renderer) RenderString(path, src string, err error) string {
	var out strings.Builder

	header := "error:"
	if r.Colors {
		header = headerColor.Sprint(header)
	}
	fmt.Fprintf(&out, "%s %v\n", header, err)

	// Spanner may sit anywhere in the wrap chain; callers commonly add a
	// path prefix with fmt.Errorf before rendering.
	var sp Spanner
	if !errors.As(err, &sp) {
		return out.String()
	}
	span := sp.Span()

	loc := span.Start.String()
	if path != "" {
		loc = path + ":" + loc
	}
	lineText, lineOK := lineOf(src, span.Start.Line)

	gutter := fmt.Sprintf("%d", span.Start.Line)
	pad := strings.Repeat(" ", len(gutter))
	arrow, bar := pad+"--> ", pad+" |"
	numbered := gutter + " |"
	if r.Colors {
		arrow = gutterColor.Sprint(arrow)
		bar = gutterColor.Sprint(bar)
		numbered = gutterColor.Sprint(numbered)
	}

	fmt.Fprintf(&out, "%s%s\n", arrow, loc)
	if !lineOK {
		return out.String()
	}

	underline := underlineFor(lineText, span)
	if r.Colors {
		underline = headerColor.Sprint(underline)
	}
	fmt.Fprintf(&out, "%s\n", bar)
	fmt.Fprintf(&out, "%s %s\n", numbered, lineText)
	fmt.Fprintf(&out, "%s %s\n", bar, underline)
	return out.String()
}

// lineOf returns the 1-based line n of src, without its trailing newline.
func lineOf(src string, n int) (string, bool) {
	for len(src) > 0 {
		line := src
		if i := strings.IndexByte(src, '\n'); i >= 0 {
			line, src = src[:i+1], src[i+1:]
		} else {
			src = ""
		}
		n--
		if n == 0 {
			return strings.TrimSuffix(line, "\n"), true
		}
	}
	return "", false
}

// underlineFor builds the caret line pointing at span within lineText.
// Columns count characters, but the underline is placed by rendered width
// so that lines holding wide characters or multi-rune graphemes still line
// up in a terminal.
func underlineFor(lineText string, span source.Span) string {
	prefix, rest := splitAtCol(lineText, span.Start.Col)

	// A span ending on a later line underlines to the end of this one; a
	// point span gets the minimum one-column caret.
	covered := rest
	if span.End.Line == span.Start.Line {
		covered, _ = splitAtCol(rest, span.End.Col-span.Start.Col)
	}

	width := uniseg.StringWidth(covered)
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", uniseg.StringWidth(prefix)) +
		"^" + strings.Repeat("~", width-1)
}

// splitAtCol splits s after the first n characters.
func splitAtCol(s string, n int) (string, string) {
	for i := range s {
		if n == 0 {
			return s[:i], s[i:]
		}
		n--
	}
	return s, ""
}
