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

// Package source provides positions and spans for locating syntax within an
// input buffer in editor coordinates.
package source

import "fmt"

// Position is a human-oriented location in an input buffer: a 1-based line
// and a 0-based column. Columns count decoded characters, not bytes.
type Position struct {
	Line int
	Col  int
}

// Start returns the position of the first character of a buffer.
func Start() Position {
	return Position{Line: 1, Col: 0}
}

// Advance returns the position immediately after consuming r at p.
//
// A newline moves to the start of the next line; any other character
// advances the column by one.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Col: 0}
	}
	return Position{Line: p.Line, Col: p.Col + 1}
}

// Compare orders positions lexicographically by line, then column. It
// returns a negative number if p precedes q, zero if they are equal, and a
// positive number otherwise.
func (p Position) Compare(q Position) int {
	if p.Line != q.Line {
		return p.Line - q.Line
	}
	return p.Col - q.Col
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a contiguous range of input between two positions. The end
// position is just past the last character the span covers, so for single
// tokens Start and End usually sit on the same line.
type Span struct {
	Start Position
	End   Position
}

// OnLine returns a span that starts and ends on the given line.
func OnLine(line, startCol, endCol int) Span {
	return Span{
		Start: Position{Line: line, Col: startCol},
		End:   Position{Line: line, Col: endCol},
	}
}

// Extend widens s to also cover other, keeping s's start. This is how a
// group's span grows to include its closing delimiter.
func (s Span) Extend(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Point returns a zero-width span anchored at p.
func Point(p Position) Span {
	return Span{Start: p, End: p}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
