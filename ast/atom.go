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

package ast

import (
	"strconv"
	"strings"
)

// Atom is a leaf literal: a [Number], [Decimal], [String], [Bytes], or
// [Ident]. Every atom is also a [Token] and an [Element].
type Atom interface {
	Token
	Element
	isAtom()
}

// Base is the radix of an integral [Number] literal. Its numeric value is
// the radix itself.
type Base int

const (
	BaseBinary      Base = 2
	BaseDecimal     Base = 10
	BaseHexadecimal Base = 16
)

// Radix returns the base as the radix to parse digits with.
func (b Base) Radix() int {
	return int(b)
}

// Prefix returns the literal prefix that selects this base in source text.
// Decimal literals have no prefix.
func (b Base) Prefix() string {
	switch b {
	case BaseBinary:
		return "0b"
	case BaseHexadecimal:
		return "0x"
	default:
		return ""
	}
}

// String implements [fmt.Stringer].
func (b Base) String() string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseDecimal:
		return "decimal"
	case BaseHexadecimal:
		return "hexadecimal"
	}
	return "Base(" + strconv.Itoa(int(b)) + ")"
}

// Number is an integral literal. Raw is the digit text as written, without
// any base prefix but possibly with '_' separators.
type Number struct {
	Base Base
	Raw  string
}

// Digits returns the digit text with '_' separators stripped.
func (n Number) Digits() string {
	return strings.ReplaceAll(n.Raw, "_", "")
}

// ToU8 parses the literal as an 8-bit unsigned integer. It fails on
// overflow or on a digit invalid in the literal's base.
func (n Number) ToU8() (uint8, error) {
	v, err := strconv.ParseUint(n.Digits(), n.Base.Radix(), 8)
	return uint8(v), err
}

// ToU16 parses the literal as a 16-bit unsigned integer.
func (n Number) ToU16() (uint16, error) {
	v, err := strconv.ParseUint(n.Digits(), n.Base.Radix(), 16)
	return uint16(v), err
}

// ToU32 parses the literal as a 32-bit unsigned integer.
func (n Number) ToU32() (uint32, error) {
	v, err := strconv.ParseUint(n.Digits(), n.Base.Radix(), 32)
	return uint32(v), err
}

// ToU64 parses the literal as a 64-bit unsigned integer.
func (n Number) ToU64() (uint64, error) {
	return strconv.ParseUint(n.Digits(), n.Base.Radix(), 64)
}

// Decimal is a decimal literal with a fractional part, such as `12.34`.
// Both halves are stored as written; the fractional part may be empty, so
// `1.` has the same value as `1.0`.
type Decimal struct {
	RawIntegral   string
	RawFractional string
}

// Integral returns the integral digits with '_' separators stripped.
func (d Decimal) Integral() string {
	return strings.ReplaceAll(d.RawIntegral, "_", "")
}

// Fractional returns the fractional digits with '_' separators stripped.
func (d Decimal) Fractional() string {
	return strings.ReplaceAll(d.RawFractional, "_", "")
}

// String is a quoted string literal. Raw is the text between the quotes,
// with escape sequences left in place. HasEscape reports whether Raw
// contains a backslash escape; if it does, the caller must run its own
// unescape pass before using the value.
type String struct {
	HasEscape bool
	Raw       string
}

// Bytes is a `#hexdigits#` literal. Raw is the hexadecimal digit text
// between the delimiters; pairs are not interpreted into byte values at
// this layer.
type Bytes struct {
	Raw string
}

// Ident is an identifier or operator run.
type Ident string

func (Number) isAtom()  {}
func (Decimal) isAtom() {}
func (String) isAtom()  {}
func (Bytes) isAtom()   {}
func (Ident) isAtom()   {}
