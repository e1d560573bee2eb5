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
package circuit

import (
	"math"
	"slices"
	"strconv"

	"github.com/consensys/go-arith/pkg/util/source"
	"github.com/consensys/go-arith/pkg/util/source/lex"
	log "github.com/sirupsen/logrus"
)

// END_OF signals "end of file"
const END_OF uint = 0

// LBRACE signals "left brace"
const LBRACE uint = 1

// RBRACE signals "right brace"
const RBRACE uint = 2

// NUMBER signals an integer literal
const NUMBER uint = 3

// IDENTIFIER signals an input name
const IDENTIFIER uint = 4

// ADD signals integer addition
const ADD uint = 5

// SUB signals integer subtraction
const SUB uint = 6

// MUL signals integer multiplication
const MUL uint = 7

// DIV signals integer division
const DIV uint = 8

// DEFAULT_MAX_DEPTH is the default bound on both the height of a parsed tree,
// and the nesting of brackets within an expression.
const DEFAULT_MAX_DEPTH uint = 4096

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Rule for describing identifiers, which consist only of letters.
var identifier lex.Scanner[rune] = lex.Many(lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z')))

// lexing rules.  Observe there is no rule for whitespace.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// ParserConfig controls how expressions are parsed.
type ParserConfig struct {
	// MaxDepth bounds the height of the resulting tree, and the nesting depth of
	// brackets.  Expressions exceeding either are rejected with a syntax error,
	// which prevents later traversals of the tree from exhausting the stack.
	// Zero means unbounded.
	MaxDepth uint
}

// DefaultParserConfig returns the configuration used by Parse.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{MaxDepth: DEFAULT_MAX_DEPTH}
}

// Parse a given expression into a tree using the default configuration.  See
// ParserConfig.Parse for details.
func Parse(input string) (*Node, error) {
	return DefaultParserConfig().Parse(input)
}

// Parse a given expression into a tree according to the following grammar:
//
//	expression := term (("+"|"-") term)*
//	term       := factor (("*"|"/") factor)*
//	factor     := number | identifier | "(" expression ")"
//
// Both binary levels are left associative.  Numbers must fit into an int32,
// identifiers consist only of letters, and no whitespace is permitted.  If the
// input cannot be parsed in its entirety, a *source.SyntaxError identifying the
// offending position is returned.
func (c ParserConfig) Parse(input string) (*Node, error) {
	var (
		srcfile = source.NewSourceFile("expr", []byte(input))
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		tokens  = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		return nil, srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown text encountered")
	}
	//
	maxDepth := c.MaxDepth
	if maxDepth == 0 {
		maxDepth = math.MaxUint
	}
	//
	parser := &Parser{srcfile, tokens, 0, 0, maxDepth}
	//
	node, err := parser.parseExpression()
	if err == nil && !parser.follows(END_OF) {
		err = parser.syntaxError(parser.lookahead(), "unexpected trailing input")
	}
	//
	if err != nil {
		log.Debugf("failed parsing \"%s\": %s", input, err.Message())
		return nil, err
	}
	//
	log.Debugf("parsed \"%s\" (height %d)", input, node.Height())
	//
	return node, nil
}

// Parser is a recursive-descent parser over the tokens of a single expression.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
	// Current bracket nesting
	nesting uint
	// Bound on bracket nesting and tree height
	maxDepth uint
}

func (p *Parser) parseExpression() (*Node, *source.SyntaxError) {
	lhs, err := p.parseTerm()
	// Fold successive terms into the left operand
	for err == nil && p.follows(ADD, SUB) {
		var (
			op  = p.expect(p.lookahead().Kind)
			rhs *Node
		)
		//
		if rhs, err = p.parseTerm(); err == nil {
			lhs, err = p.parseBinary(op, lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseTerm() (*Node, *source.SyntaxError) {
	lhs, err := p.parseFactor()
	// Fold successive factors into the left operand
	for err == nil && p.follows(MUL, DIV) {
		var (
			op  = p.expect(p.lookahead().Kind)
			rhs *Node
		)
		//
		if rhs, err = p.parseFactor(); err == nil {
			lhs, err = p.parseBinary(op, lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseFactor() (*Node, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedExpression()
	case IDENTIFIER:
		p.expect(IDENTIFIER)
		return NewInput(p.string(token)), nil
	case NUMBER:
		return p.parseNumber()
	}
	//
	return nil, p.syntaxError(token, "expected number, identifier or '('")
}

func (p *Parser) parseBracketedExpression() (*Node, *source.SyntaxError) {
	lbrace := p.expect(LBRACE)
	//
	if p.nesting++; p.nesting > p.maxDepth {
		return nil, p.syntaxError(lbrace, "brackets nested too deeply")
	}
	//
	node, err := p.parseExpression()
	//
	if err == nil && !p.match(RBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected ')'")
	}
	//
	p.nesting--
	//
	return node, err
}

func (p *Parser) parseNumber() (*Node, *source.SyntaxError) {
	token := p.expect(NUMBER)
	// Literals consist only of digits, hence the only possible failure is range.
	val, err := strconv.ParseInt(p.string(token), 10, 32)
	if err != nil {
		return nil, p.syntaxError(token, "integer literal out of range")
	}
	//
	return NewConst(int32(val)), nil
}

// Construct the binary node for a given operator token, checking it remains
// within the height bound.
func (p *Parser) parseBinary(op lex.Token, lhs *Node, rhs *Node) (*Node, *source.SyntaxError) {
	var node *Node
	//
	switch op.Kind {
	case ADD:
		node = NewAdd(lhs, rhs)
	case SUB:
		node = NewSub(lhs, rhs)
	case MUL:
		node = NewMul(lhs, rhs)
	case DIV:
		node = NewDiv(lhs, rhs)
	default:
		panic("unknown operator")
	}
	//
	if node.Height() > p.maxDepth {
		return nil, p.syntaxError(op, "expression nested too deeply")
	}
	//
	return node, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because END_OF is always
// the last token.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
