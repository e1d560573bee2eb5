// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lex

import "github.com/consensys/go-arith/pkg/util/source"

// Token tags a run of characters in the text being scanned with a kind.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates the characters accepted by a scanner with a given tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits a sequence of items into tokens, trying its rules in the order
// given and taking the first which matches.
type Lexer[T any] struct {
	items  []T
	index  int
	rules  []LexRule[T]
	buffer []Token
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Index returns the current position within the items being scanned.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items were not consumed by any rule.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether another token can be produced.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return len(p.buffer) > 0
}

// Next returns the next token and advances the lexer.  This must only be called
// after HasNext has returned true.
func (p *Lexer[T]) Next() Token {
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	//
	if p.index == len(p.items) {
		// Step past the end so the end-of-input token is only produced once.
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Collect scans all remaining tokens in one go.  Scanning stops at the first
// position where no rule matches, which can be detected via Remaining.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() {
	if len(p.buffer) != 0 || p.index > len(p.items) {
		return
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			p.buffer = append(p.buffer, Token{r.tag, source.NewSpan(p.index, end)})
			//
			return
		}
	}
}
