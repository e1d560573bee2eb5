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
)

// Evaluate computes the value of this node against a given environment mapping
// input names to values.  If this node already holds a cached value, that is
// returned immediately without consulting the environment.  Otherwise, both
// operands of a binary node are evaluated (left first), and the result is
// cached before being returned.
//
// Arithmetic follows Go's int32 semantics: addition, subtraction and
// multiplication wrap around on overflow, and division truncates toward zero.
// Division by zero is reported as a DivisionByZeroError, and an input missing
// from the environment as a MissingBindingError.  Operands evaluated before a
// failure remain cached.
func (n *Node) Evaluate(env map[string]int32) (int32, error) {
	if n.value != nil {
		return *n.value, nil
	}
	//
	var (
		result int32
		err    error
	)
	//
	switch g := n.gate.(type) {
	case *Input:
		val, ok := env[g.Name]
		if !ok {
			return 0, &MissingBindingError{g.Name}
		}
		//
		result = val
	case *Const:
		result = g.Value
	case *Add:
		result, err = evalBinary((*Binary)(g), env, func(l, r int32) int32 { return l + r })
	case *Sub:
		result, err = evalBinary((*Binary)(g), env, func(l, r int32) int32 { return l - r })
	case *Mul:
		result, err = evalBinary((*Binary)(g), env, func(l, r int32) int32 { return l * r })
	case *Div:
		result, err = evalDiv((*Binary)(g), env)
	default:
		panic(fmt.Sprintf("unknown gate %T", n.gate))
	}
	//
	if err != nil {
		return 0, err
	}
	//
	n.value = &result
	//
	return result, nil
}

// Evaluate both operands (left then right) and combine their results.
func evalBinary(b *Binary, env map[string]int32, fn func(int32, int32) int32) (int32, error) {
	lhs, err := b.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	//
	rhs, err := b.Right.Evaluate(env)
	if err != nil {
		return 0, err
	}
	//
	return fn(lhs, rhs), nil
}

func evalDiv(b *Binary, env map[string]int32) (int32, error) {
	lhs, err := b.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	//
	rhs, err := b.Right.Evaluate(env)
	//
	switch {
	case err != nil:
		return 0, err
	case rhs == 0:
		return 0, &DivisionByZeroError{b.Right.String()}
	}
	// NOTE: math.MinInt32 / -1 wraps around to math.MinInt32.
	return lhs / rhs, nil
}
