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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Valid(t *testing.T) {
	tests := []struct {
		input    string
		bindings []Binding
		expected int32
	}{
		{"(x+y)*y", []Binding{Bind("x", 2), Bind("y", 3)}, 15},
		{"2+3*4", nil, 14},
		{"(2+3)*4", nil, 20},
		{"10-3-2", nil, 5},
		{"8/4/2", nil, 1},
		{"7/2", nil, 3},
		{"x/y", []Binding{Bind("x", -7), Bind("y", 2)}, -3},
		{"x/y", []Binding{Bind("x", 7), Bind("y", -2)}, -3},
		{"x-y", []Binding{Bind("x", 2), Bind("y", 5)}, -3},
		{"x*x", []Binding{Bind("x", 65536)}, 0},
		{"x+1", []Binding{Bind("x", math.MaxInt32)}, math.MinInt32},
		{"x-1", []Binding{Bind("x", math.MinInt32)}, math.MaxInt32},
		{"x/y", []Binding{Bind("x", math.MinInt32), Bind("y", -1)}, math.MinInt32},
		// last binding wins
		{"x", []Binding{Bind("x", 1), Bind("x", 2)}, 2},
		// unused bindings are ignored
		{"x", []Binding{Bind("x", 1), Bind("y", 2)}, 1},
	}
	//
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := FromExpression(tt.input)
			require.NoError(t, err)
			//
			val, err := c.Evaluate(tt.bindings...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestEval_Memoised(t *testing.T) {
	c := MustFromExpression("x+1")
	//
	val, err := c.Evaluate(Bind("x", 2))
	require.NoError(t, err)
	assert.Equal(t, int32(3), val)
	// Second evaluation returns the cached result
	val, err = c.Evaluate(Bind("x", 100))
	require.NoError(t, err)
	assert.Equal(t, int32(3), val)
	// Even when bindings are missing altogether
	val, err = c.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, int32(3), val)
}

func TestEval_EachNodeCached(t *testing.T) {
	c := MustFromExpression("(x+y)*y")
	//
	_, err := c.Evaluate(Bind("x", 2), Bind("y", 3))
	require.NoError(t, err)
	//
	mul := c.Root().Gate().(*Mul)
	add := mul.Left.Gate().(*Add)
	//
	checkCached(t, c.Root(), 15)
	checkCached(t, mul.Left, 5)
	checkCached(t, mul.Right, 3)
	checkCached(t, add.Left, 2)
	checkCached(t, add.Right, 3)
}

func TestEval_Reset(t *testing.T) {
	c := MustFromExpression("x+1")
	//
	val, err := c.Evaluate(Bind("x", 2))
	require.NoError(t, err)
	assert.Equal(t, int32(3), val)
	//
	c.Reset()
	_, ok := c.Root().Value()
	assert.False(t, ok)
	//
	val, err = c.Evaluate(Bind("x", 100))
	require.NoError(t, err)
	assert.Equal(t, int32(101), val)
}

func TestEval_MissingBinding(t *testing.T) {
	c := MustFromExpression("x+z")
	//
	_, err := c.Evaluate(Bind("x", 2))
	//
	var missing *MissingBindingError
	//
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "z", missing.Name)
	assert.EqualError(t, err, "no binding for input \"z\"")
	// Nothing is cached for the failing node, but its left operand is.
	_, ok := c.Root().Value()
	assert.False(t, ok)
	checkCached(t, c.Root().Gate().(*Add).Left, 2)
	// Later evaluation reuses the cached operand
	val, err := c.Evaluate(Bind("x", 50), Bind("z", 3))
	require.NoError(t, err)
	assert.Equal(t, int32(5), val)
}

func TestEval_DivisionByZero(t *testing.T) {
	inputs := []string{"1/0", "x/(y-y)", "x/0*2"}
	//
	for _, input := range inputs {
		c := MustFromExpression(input)
		//
		_, err := c.Evaluate(Bind("x", 1), Bind("y", 4))
		//
		var divErr *DivisionByZeroError
		//
		assert.True(t, errors.As(err, &divErr), "input %s", input)
	}
}

func TestEval_DivisionByZeroMessage(t *testing.T) {
	_, err := MustFromExpression("x/(y-y)").Evaluate(Bind("x", 1), Bind("y", 4))
	assert.EqualError(t, err, "division by zero (divisor (y-y))")
}

func TestEval_Clone(t *testing.T) {
	c := MustFromExpression("x*2")
	//
	_, err := c.Evaluate(Bind("x", 4))
	require.NoError(t, err)
	//
	clone := c.Root().Clone()
	checkCached(t, clone, 8)
	// Clones are independent of the original
	clone.Reset()
	checkCached(t, c.Root(), 8)
	//
	val, err := clone.Evaluate(map[string]int32{"x": 5})
	require.NoError(t, err)
	assert.Equal(t, int32(10), val)
	assert.Equal(t, c.Root().String(), clone.String())
	assert.Equal(t, c.Root().Height(), clone.Height())
}

func checkCached(t *testing.T, node *Node, expected int32) {
	t.Helper()
	//
	val, ok := node.Value()
	require.True(t, ok, "node %s not cached", node)
	assert.Equal(t, expected, val)
}
