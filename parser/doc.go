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

// Package parser tokenizes and parses s-expression text.
//
// A [Tokenizer] is a cursor over an in-memory buffer that produces one
// [ast.SpannedToken] per call. A [Parser] drives a tokenizer and produces
// one fully balanced top-level [ast.SpannedElement] per call, which may be
// an arbitrarily deep group tree. Both signal a clean end of input with
// [io.EOF] and stop at the first error; there is no resynchronization, so
// callers that want resilience must restart past the error themselves.
//
// Both types are single-owner: one instance must not be driven from two
// call sites concurrently, but independent instances over independent
// buffers need no coordination.
package parser
