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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// EvaluateField computes the value of this node in the scalar field of
// BLS12-377, against an environment mapping input names to field elements.
// Subtraction wraps modulo the field order and division multiplies by the
// inverse of the divisor, so it is exact whenever the divisor is non-zero.
// Unlike Evaluate, this neither reads nor writes the cached integer values.
func (n *Node) EvaluateField(env map[string]fr.Element) (fr.Element, error) {
	var result fr.Element
	//
	switch g := n.gate.(type) {
	case *Input:
		val, ok := env[g.Name]
		if !ok {
			return result, &MissingBindingError{g.Name}
		}
		//
		result.Set(&val)
	case *Const:
		result.SetInt64(int64(g.Value))
	default:
		b, _, ok := splitBinary(g)
		if !ok {
			panic(fmt.Sprintf("unknown gate %T", n.gate))
		}
		//
		lhs, err := b.Left.EvaluateField(env)
		if err != nil {
			return result, err
		}
		//
		rhs, err := b.Right.EvaluateField(env)
		if err != nil {
			return result, err
		}
		//
		switch g.(type) {
		case *Add:
			result.Add(&lhs, &rhs)
		case *Sub:
			result.Sub(&lhs, &rhs)
		case *Mul:
			result.Mul(&lhs, &rhs)
		case *Div:
			if rhs.IsZero() {
				return result, &DivisionByZeroError{b.Right.String()}
			}
			//
			result.Div(&lhs, &rhs)
		}
	}
	//
	return result, nil
}
