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

// Gate identifies the operation performed by a node of an expression tree.  The
// set of gates is closed: a gate is either an input reference, a constant, or
// one of the four binary arithmetic operators.
type Gate interface {
	// Operands returns the children of this gate, left to right.  Leaves have
	// none.
	Operands() []*Node
	// seal the set of gates.
	gate()
}

// Input refers to a named input, whose value is supplied by a binding at
// evaluation time.
type Input struct {
	Name string
}

// Const is a fixed integer value.
type Const struct {
	Value int32
}

// Binary is the shape shared by all binary operators.  Each exclusively owns
// its two operands.
type Binary struct {
	Left  *Node
	Right *Node
}

// Add represents integer addition.
type Add Binary

// Sub represents integer subtraction.
type Sub Binary

// Mul represents integer multiplication.
type Mul Binary

// Div represents integer division, truncating toward zero.
type Div Binary

// Operands implementation for Gate interface.
func (g *Input) Operands() []*Node { return nil }

// Operands implementation for Gate interface.
func (g *Const) Operands() []*Node { return nil }

// Operands implementation for Gate interface.
func (g *Add) Operands() []*Node { return []*Node{g.Left, g.Right} }

// Operands implementation for Gate interface.
func (g *Sub) Operands() []*Node { return []*Node{g.Left, g.Right} }

// Operands implementation for Gate interface.
func (g *Mul) Operands() []*Node { return []*Node{g.Left, g.Right} }

// Operands implementation for Gate interface.
func (g *Div) Operands() []*Node { return []*Node{g.Left, g.Right} }

func (g *Input) gate() {}
func (g *Const) gate() {}
func (g *Add) gate()   {}
func (g *Sub) gate()   {}
func (g *Mul) gate()   {}
func (g *Div) gate()   {}

// Split a binary gate into its operands and infix operator symbol.  Leaves
// return false.
func splitBinary(gate Gate) (*Binary, string, bool) {
	switch g := gate.(type) {
	case *Add:
		return (*Binary)(g), "+", true
	case *Sub:
		return (*Binary)(g), "-", true
	case *Mul:
		return (*Binary)(g), "*", true
	case *Div:
		return (*Binary)(g), "/", true
	default:
		return nil, "", false
	}
}
