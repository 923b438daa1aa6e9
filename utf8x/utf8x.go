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

// Package utf8x decodes single Unicode scalar values out of an input buffer
// at a given byte offset.
//
// Unlike [unicode/utf8.DecodeRuneInString], which folds every failure into
// RuneError, this decoder distinguishes the ways a sequence can be bad:
// a leading byte that can never start a sequence, a sequence truncated by
// the end of the buffer (more input might fix it), a continuation byte that
// does not match the 10xxxxxx pattern, and an assembled value that is not a
// valid scalar. Lexers use the distinction to report precise errors.
package utf8x

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Decoding failures. ErrIncomplete is a type rather than a sentinel because
// it carries the leading byte of the truncated sequence.
var (
	// ErrOutOfBounds reports a Decode call with an offset past the end of
	// the buffer. Offset == len(data) is not an error; it is end of input.
	ErrOutOfBounds = errors.New("offset past end of input")

	// ErrInvalidSequence reports a byte that cannot lead a UTF-8 sequence,
	// or an assembled value that is not a Unicode scalar (a surrogate, or a
	// value above U+10FFFF).
	ErrInvalidSequence = errors.New("invalid utf-8 sequence")

	// ErrInvalidContinuation reports a byte inside a multi-byte sequence
	// that does not match the 10xxxxxx continuation pattern.
	ErrInvalidContinuation = errors.New("invalid utf-8 continuation byte")
)

// ErrIncomplete reports a multi-byte sequence cut short by the end of the
// buffer. Callers reading from a stream may treat this as "need more input".
type ErrIncomplete struct {
	// Leading is the first byte of the truncated sequence.
	Leading byte
}

func (e *ErrIncomplete) Error() string {
	return fmt.Sprintf("incomplete utf-8 sequence starting with %#02x", e.Leading)
}

// charWidth maps a leading byte to the total length of the sequence it
// starts, or 0 if it cannot lead a sequence. See RFC 3629.
var charWidth = [256]byte{
	// 1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 1
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 2
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 3
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 4
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 5
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 6
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 7
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 8
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 9
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // A
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // B
	0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // C
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // D
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // E
	4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // F
}

const (
	contMask = 0b1100_0000
	contBits = 0b1000_0000
)

func isCont(b byte) bool { return b&contMask == contBits }

// Decode decodes the Unicode scalar value at data[offset:] and reports its
// width in bytes. At the exact end of the buffer it returns (-1, 0, nil).
// Decode never allocates and never mutates caller state.
func Decode(data string, offset int) (r rune, size int, err error) {
	if offset == len(data) {
		return -1, 0, nil
	}
	if offset > len(data) {
		return 0, 0, ErrOutOfBounds
	}

	h := data[offset]
	n := int(charWidth[h])
	if n == 0 {
		return 0, 0, ErrInvalidSequence
	}
	if offset+n > len(data) {
		return 0, 0, &ErrIncomplete{Leading: h}
	}

	if n == 1 {
		return rune(h), 1, nil
	}

	var v rune
	switch n {
	case 2:
		b2 := data[offset+1]
		if !isCont(b2) {
			return 0, 0, ErrInvalidContinuation
		}
		v = rune(h&0b0001_1111)<<6 | rune(b2&^contMask)
	case 3:
		b2, b3 := data[offset+1], data[offset+2]
		if !isCont(b2) || !isCont(b3) {
			return 0, 0, ErrInvalidContinuation
		}
		v = rune(h&0b0000_1111)<<12 | rune(b2&^contMask)<<6 | rune(b3&^contMask)
	case 4:
		b2, b3, b4 := data[offset+1], data[offset+2], data[offset+3]
		if !isCont(b2) || !isCont(b3) || !isCont(b4) {
			return 0, 0, ErrInvalidContinuation
		}
		v = rune(h&0b0000_0111)<<18 | rune(b2&^contMask)<<12 |
			rune(b3&^contMask)<<6 | rune(b4&^contMask)
	}

	// Reject surrogates and values past the last scalar.
	if !utf8.ValidRune(v) {
		return 0, 0, ErrInvalidSequence
	}
	return v, n, nil
}

// IsMathOperator reports whether r falls in the Mathematical Operators or
// Supplemental Mathematical Operators blocks.
func IsMathOperator(r rune) bool {
	return (r >= 0x2200 && r <= 0x22FF) || (r >= 0x2A00 && r <= 0x2AFF)
}

// IsMathAlphanumeric reports whether r falls in the Mathematical
// Alphanumeric Symbols block.
func IsMathAlphanumeric(r rune) bool {
	return r >= 0x1D400 && r <= 0x1D7FF
}
