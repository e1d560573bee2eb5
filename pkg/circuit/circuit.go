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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	log "github.com/sirupsen/logrus"
)

// Binding assigns a value to a named input.
type Binding struct {
	Name  string
	Value int32
}

// Bind is a convenience for constructing a binding.
func Bind(name string, value int32) Binding {
	return Binding{name, value}
}

// Circuit owns the tree of a parsed arithmetic expression, and provides the
// operations for evaluating it and rendering it as a Solidity contract.  A
// circuit is not safe for concurrent use.
type Circuit struct {
	root *Node
}

// NewCircuit constructs a circuit from an existing tree.
func NewCircuit(root *Node) *Circuit {
	return &Circuit{root}
}

// FromExpression parses a given expression into a circuit using the default
// parser configuration.  A *source.SyntaxError is returned if the expression is
// malformed.
func FromExpression(expr string) (*Circuit, error) {
	return DefaultParserConfig().Circuit(expr)
}

// MustFromExpression is like FromExpression, except that it panics if the
// expression is malformed.
func MustFromExpression(expr string) *Circuit {
	c, err := FromExpression(expr)
	if err != nil {
		panic(err)
	}
	//
	return c
}

// Circuit parses a given expression into a circuit using this configuration.
func (c ParserConfig) Circuit(expr string) (*Circuit, error) {
	root, err := c.Parse(expr)
	if err != nil {
		return nil, err
	}
	//
	return &Circuit{root}, nil
}

// Root returns the root node of this circuit's tree.
func (c *Circuit) Root() *Node {
	return c.root
}

// Evaluate this circuit against a sequence of bindings.  Where a name is bound
// more than once, the last binding wins.  Results are cached in the tree, hence
// evaluating the same circuit a second time returns the first result regardless
// of the bindings given (unless Reset is called in between).
func (c *Circuit) Evaluate(bindings ...Binding) (int32, error) {
	env := make(map[string]int32, len(bindings))
	//
	for _, b := range bindings {
		env[b.Name] = b.Value
	}
	//
	log.Debugf("evaluating %s with %d binding(s)", c.root, len(bindings))
	//
	return c.root.Evaluate(env)
}

// EvaluateField evaluates this circuit over the scalar field of BLS12-377,
// where each binding is mapped to its (possibly negated) field element.  This
// does not affect the cached results used by Evaluate.
func (c *Circuit) EvaluateField(bindings ...Binding) (fr.Element, error) {
	env := make(map[string]fr.Element, len(bindings))
	//
	for _, b := range bindings {
		var val fr.Element
		//
		val.SetInt64(int64(b.Value))
		env[b.Name] = val
	}
	//
	return c.root.EvaluateField(env)
}

// Reset clears all cached results, allowing the circuit to be evaluated
// against different bindings.
func (c *Circuit) Reset() {
	c.root.Reset()
}

// ToSolidity renders this circuit as a Solidity verification contract.
func (c *Circuit) ToSolidity() string {
	var counter uint
	//
	return SolidityContract(c.root.Solidity(&counter))
}

// Inputs returns the distinct names of all inputs used in this circuit, in the
// order they first occur (left to right).
func (c *Circuit) Inputs() []string {
	var (
		names []string
		seen  = make(map[string]bool)
		stack = []*Node{c.root}
	)
	//
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]
		//
		if input, ok := node.gate.(*Input); ok && !seen[input.Name] {
			seen[input.Name] = true
			names = append(names, input.Name)
		}
		// Push in reverse so the left operand is visited first
		operands := node.gate.Operands()
		for i := len(operands) - 1; i >= 0; i-- {
			stack = append(stack, operands[i])
		}
	}
	//
	return names
}

func (c *Circuit) String() string {
	return c.root.String()
}
