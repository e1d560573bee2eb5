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
	"fmt"
	"strings"
)

// Node is a single element of an expression tree, pairing a gate with the value
// it evaluated to (if it has been evaluated).  Once a value is cached it is
// never recomputed: evaluating again, even against a different binding,
// returns the cached value.  See Reset for the one way to clear it.
type Node struct {
	gate Gate
	// Cached result of evaluation, or nil if not yet evaluated.
	value *int32
	// Length of the longest path from this node to a leaf, counting nodes.
	height uint
}

// NewInput constructs a leaf referring to a named input.
func NewInput(name string) *Node {
	return &Node{&Input{name}, nil, 1}
}

// NewConst constructs a leaf holding a constant.
func NewConst(value int32) *Node {
	return &Node{&Const{value}, nil, 1}
}

// NewAdd constructs a node computing left + right.
func NewAdd(left *Node, right *Node) *Node {
	return newBinary(&Add{left, right}, left, right)
}

// NewSub constructs a node computing left - right.
func NewSub(left *Node, right *Node) *Node {
	return newBinary(&Sub{left, right}, left, right)
}

// NewMul constructs a node computing left * right.
func NewMul(left *Node, right *Node) *Node {
	return newBinary(&Mul{left, right}, left, right)
}

// NewDiv constructs a node computing left / right.
func NewDiv(left *Node, right *Node) *Node {
	return newBinary(&Div{left, right}, left, right)
}

func newBinary(gate Gate, left *Node, right *Node) *Node {
	return &Node{gate, nil, 1 + max(left.height, right.height)}
}

// Gate returns the operation performed by this node.
func (n *Node) Gate() Gate {
	return n.gate
}

// Height returns the number of nodes on the longest path from this node down
// to a leaf.  Leaves have height 1.
func (n *Node) Height() uint {
	return n.height
}

// Value returns the cached result of evaluating this node, if there is one.
func (n *Node) Value() (int32, bool) {
	if n.value == nil {
		return 0, false
	}
	//
	return *n.value, true
}

// Clone produces a deep copy of this node, including its entire sub-tree and
// any cached values.
func (n *Node) Clone() *Node {
	var value *int32
	//
	if n.value != nil {
		v := *n.value
		value = &v
	}
	//
	var gate Gate
	//
	switch g := n.gate.(type) {
	case *Input:
		gate = &Input{g.Name}
	case *Const:
		gate = &Const{g.Value}
	case *Add:
		gate = &Add{g.Left.Clone(), g.Right.Clone()}
	case *Sub:
		gate = &Sub{g.Left.Clone(), g.Right.Clone()}
	case *Mul:
		gate = &Mul{g.Left.Clone(), g.Right.Clone()}
	case *Div:
		gate = &Div{g.Left.Clone(), g.Right.Clone()}
	default:
		panic(fmt.Sprintf("unknown gate %T", n.gate))
	}
	//
	return &Node{gate, value, n.height}
}

// Reset clears the cached value of this node and of every node below it, so
// that the tree can be evaluated afresh.
func (n *Node) Reset() {
	n.value = nil
	//
	for _, child := range n.gate.Operands() {
		child.Reset()
	}
}

// String returns a fully bracketed infix rendering of this node, which can be
// parsed back into an equivalent tree.
func (n *Node) String() string {
	var builder strings.Builder
	//
	n.writeTo(&builder)
	//
	return builder.String()
}

func (n *Node) writeTo(builder *strings.Builder) {
	switch g := n.gate.(type) {
	case *Input:
		builder.WriteString(g.Name)
	case *Const:
		fmt.Fprintf(builder, "%d", g.Value)
	default:
		b, op, _ := splitBinary(g)
		//
		builder.WriteString("(")
		b.Left.writeTo(builder)
		builder.WriteString(op)
		b.Right.writeTo(builder)
		builder.WriteString(")")
	}
}
