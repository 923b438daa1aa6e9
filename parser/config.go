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

package parser

// Config selects optional lexical features. Paren groups are always
// supported and cannot be disabled. The zero value is not meaningful; start
// from [DefaultConfig] and toggle features with the With* methods, each of
// which returns a modified copy.
type Config struct {
	filterComments bool
	bytesLiterals  bool
	brackets       bool
	braces         bool
	unicode        bool
}

// DefaultConfig returns the default feature set: comments are emitted as
// tokens, and bytes literals, bracket groups, brace groups, and Unicode
// identifiers are all enabled.
func DefaultConfig() Config {
	return Config{
		bytesLiterals: true,
		brackets:      true,
		braces:        true,
		unicode:       true,
	}
}

// WithComments controls whether comments appear in the token stream. When
// disabled, the tokenizer consumes comments silently; filtering does not
// disturb the spans of the tokens around them.
func (c Config) WithComments(enabled bool) Config {
	c.filterComments = !enabled
	return c
}

// WithBytes controls support for `#hexdigits#` bytes literals. When
// disabled, '#' lexes as an ordinary operator character.
func (c Config) WithBytes(enabled bool) Config {
	c.bytesLiterals = enabled
	return c
}

// WithBrackets controls support for [...] groups. When disabled, '[' and
// ']' match no lexical rule at all.
func (c Config) WithBrackets(enabled bool) Config {
	c.brackets = enabled
	return c
}

// WithBraces controls support for {...} groups.
func (c Config) WithBraces(enabled bool) Config {
	c.braces = enabled
	return c
}

// WithUnicode controls the identifier rules. When enabled, identifiers may
// use Unicode identifier characters and math-operator code points; when
// disabled, only the ASCII rules apply.
func (c Config) WithUnicode(enabled bool) Config {
	c.unicode = enabled
	return c
}
