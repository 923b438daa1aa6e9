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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpkit/sexp/ast"
)

func TestNumberDigits(t *testing.T) {
	t.Parallel()

	n := ast.Number{Base: ast.BaseHexadecimal, Raw: "01_ab"}
	assert.Equal(t, "01ab", n.Digits())

	v, err := n.ToU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x01ab), v)
}

func TestNumberConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		num     ast.Number
		want    uint64
		wantErr bool
	}{
		{name: "decimal", num: ast.Number{Base: ast.BaseDecimal, Raw: "1_000"}, want: 1000},
		{name: "binary", num: ast.Number{Base: ast.BaseBinary, Raw: "10_10"}, want: 10},
		{name: "hex upper", num: ast.Number{Base: ast.BaseHexadecimal, Raw: "FF"}, want: 255},
		{name: "empty digits", num: ast.Number{Base: ast.BaseBinary, Raw: ""}, wantErr: true},
		{name: "bad digit for base", num: ast.Number{Base: ast.BaseBinary, Raw: "102"}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := tt.num.ToU64()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestNumberOverflow(t *testing.T) {
	t.Parallel()

	n := ast.Number{Base: ast.BaseDecimal, Raw: "256"}
	_, err := n.ToU8()
	assert.Error(t, err)

	v16, err := n.ToU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(256), v16)

	big := ast.Number{Base: ast.BaseHexadecimal, Raw: "1_0000_0000"}
	_, err = big.ToU32()
	assert.Error(t, err)
	v64, err := big.ToU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<32, v64)
}

func TestDecimalParts(t *testing.T) {
	t.Parallel()

	d := ast.Decimal{RawIntegral: "1_000", RawFractional: "25"}
	assert.Equal(t, "1000", d.Integral())
	assert.Equal(t, "25", d.Fractional())

	// `1.` is a valid decimal whose fractional part is empty.
	d = ast.Decimal{RawIntegral: "1", RawFractional: ""}
	assert.Equal(t, "1", d.Integral())
	assert.Empty(t, d.Fractional())
}

func TestBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, ast.BaseBinary.Radix())
	assert.Equal(t, 10, ast.BaseDecimal.Radix())
	assert.Equal(t, 16, ast.BaseHexadecimal.Radix())

	assert.Equal(t, "0b", ast.BaseBinary.Prefix())
	assert.Equal(t, "", ast.BaseDecimal.Prefix())
	assert.Equal(t, "0x", ast.BaseHexadecimal.Prefix())
}

func TestGroupKindDelims(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('('), ast.GroupParen.OpenDelim())
	assert.Equal(t, byte(')'), ast.GroupParen.CloseDelim())
	assert.Equal(t, byte('['), ast.GroupBracket.OpenDelim())
	assert.Equal(t, byte(']'), ast.GroupBracket.CloseDelim())
	assert.Equal(t, byte('{'), ast.GroupBrace.OpenDelim())
	assert.Equal(t, byte('}'), ast.GroupBrace.CloseDelim())

	assert.Equal(t, "paren", ast.GroupParen.String())
	assert.Equal(t, "bracket", ast.GroupBracket.String())
	assert.Equal(t, "brace", ast.GroupBrace.String())
}
