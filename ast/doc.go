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

// Package ast defines the values produced by tokenizing and parsing
// s-expression text: atoms, tokens, and elements, each annotated with a
// [github.com/sexpkit/sexp/source.Span].
//
// All text payloads are slices of the original input buffer; nothing is
// copied or unescaped at this layer, so values remain valid for exactly as
// long as the input they were parsed from.
//
// [Atom], [Token], and [Element] are closed sum types. The variants of each
// are plain structs (plus two string types), and one variant may belong to
// several sums: every atom is both a valid token payload and a valid
// element, and [Comment] appears in both the token and element sums.
// Callers discriminate with type switches or with the projection methods on
// [SpannedElement].
package ast
