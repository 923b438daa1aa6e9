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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sexpkit/sexp/source"
)

func TestPositionAdvance(t *testing.T) {
	t.Parallel()

	p := source.Start()
	assert.Equal(t, source.Position{Line: 1, Col: 0}, p)

	p = p.Advance('a')
	assert.Equal(t, source.Position{Line: 1, Col: 1}, p)

	p = p.Advance('\t')
	assert.Equal(t, source.Position{Line: 1, Col: 2}, p)

	p = p.Advance('\n')
	assert.Equal(t, source.Position{Line: 2, Col: 0}, p)

	// Multi-byte characters advance the column by one, like any other.
	p = p.Advance('é')
	assert.Equal(t, source.Position{Line: 2, Col: 1}, p)
}

func TestPositionCompare(t *testing.T) {
	t.Parallel()

	a := source.Position{Line: 1, Col: 5}
	b := source.Position{Line: 2, Col: 0}
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a))
	assert.Negative(t, a.Compare(source.Position{Line: 1, Col: 6}))
}

func TestSpanExtend(t *testing.T) {
	t.Parallel()

	open := source.OnLine(1, 0, 1)
	closing := source.OnLine(3, 4, 5)
	got := open.Extend(closing)
	assert.Equal(t, source.Span{
		Start: source.Position{Line: 1, Col: 0},
		End:   source.Position{Line: 3, Col: 5},
	}, got)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2:7", source.Position{Line: 2, Col: 7}.String())
	assert.Equal(t, "1:1-1:4", source.OnLine(1, 1, 4).String())
	assert.Equal(t, "3:0-3:0", source.Point(source.Position{Line: 3, Col: 0}).String())
}
