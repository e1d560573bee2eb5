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

// Solidity renders this node as an infix Solidity expression.  Inputs are
// rendered as array accesses name[counter], where counter is threaded through
// the whole traversal: each binary node increments it once after rendering its
// left operand, and once more after rendering its right operand.  Inputs
// themselves never advance it.
//
// Observe that the resulting indices do not, in general, correspond with the
// order in which inputs occur.  Likewise, no brackets are emitted, so the
// rendering of a tree like (x+y)*y does not respect the tree's structure under
// Solidity's precedence rules.
func (n *Node) Solidity(counter *uint) string {
	switch g := n.gate.(type) {
	case *Input:
		return fmt.Sprintf("%s[%d]", g.Name, *counter)
	case *Const:
		return fmt.Sprintf("%d", g.Value)
	default:
		b, op, ok := splitBinary(g)
		if !ok {
			panic(fmt.Sprintf("unknown gate %T", n.gate))
		}
		//
		lhs := b.Left.Solidity(counter)
		*counter++
		rhs := b.Right.Solidity(counter)
		*counter++
		//
		return fmt.Sprintf("%s %s %s", lhs, op, rhs)
	}
}

// SolidityContract embeds a rendered expression into the verification
// contract template.
func SolidityContract(expression string) string {
	return strings.ReplaceAll(solidityTemplate, "{expression}", expression)
}

const solidityTemplate string = `
pragma solidity ^0.8.0;

contract ArithmeticCircuit {
    function verify(int256[] memory x, int256[] memory y) public pure returns (int256) {
        return {expression};
    }
}
`
