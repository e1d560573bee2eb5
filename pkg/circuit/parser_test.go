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
	"strings"
	"testing"

	"github.com/consensys/go-arith/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"007", "7"},
		{"x", "x"},
		{"Abc", "Abc"},
		{"(x)", "x"},
		{"x+y", "(x+y)"},
		{"x+y*z", "(x+(y*z))"},
		{"(x+y)*z", "((x+y)*z)"},
		{"10-3-2", "((10-3)-2)"},
		{"8/4/2", "((8/4)/2)"},
		{"a*b/c*d", "(((a*b)/c)*d)"},
		{"a-b+c*d/e", "((a-b)+((c*d)/e))"},
		{"2147483647", "2147483647"},
	}
	//
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, node.String())
		})
	}
}

func TestParser_Invalid(t *testing.T) {
	tests := []struct {
		input string
		start int
		msg   string
	}{
		{"", 0, "expected number, identifier or '('"},
		{"x++y", 2, "expected number, identifier or '('"},
		{"(x+y", 4, "expected ')'"},
		{"x+y)", 3, "unexpected trailing input"},
		{"()", 1, "expected number, identifier or '('"},
		{"x + y", 1, "unknown text encountered"},
		{"x_y", 1, "unknown text encountered"},
		{"x1", 1, "unexpected trailing input"},
		{"2x", 1, "unexpected trailing input"},
		{"-1", 0, "expected number, identifier or '('"},
		{"2147483648", 0, "integer literal out of range"},
		{"x%y", 1, "unknown text encountered"},
	}
	//
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			assert.Nil(t, node)
			//
			var serr *source.SyntaxError
			//
			require.True(t, errors.As(err, &serr), "expected syntax error, got %v", err)
			//
			span := serr.Span()
			assert.Equal(t, tt.start, span.Start())
			assert.Equal(t, tt.msg, serr.Message())
		})
	}
}

func TestParser_LeftDeep(t *testing.T) {
	node, err := Parse("a-b-c")
	require.NoError(t, err)
	// Outermost subtraction holds the accumulated subtraction on its left
	outer, ok := node.Gate().(*Sub)
	require.True(t, ok)
	inner, ok := outer.Left.Gate().(*Sub)
	require.True(t, ok)
	assert.Equal(t, &Input{"c"}, outer.Right.Gate())
	assert.Equal(t, &Input{"a"}, inner.Left.Gate())
	assert.Equal(t, &Input{"b"}, inner.Right.Gate())
	assert.Equal(t, uint(3), node.Height())
}

func TestParser_MaxDepth(t *testing.T) {
	config := ParserConfig{MaxDepth: 3}
	//
	_, err := config.Parse("1+1+1")
	assert.NoError(t, err)
	//
	_, err = config.Parse("1+1+1+1")
	assert.EqualError(t, err, "5:6:expression nested too deeply")
	//
	_, err = config.Parse("(((x)))")
	assert.NoError(t, err)
	//
	_, err = config.Parse("((((x))))")
	assert.EqualError(t, err, "3:4:brackets nested too deeply")
}

func TestParser_Unbounded(t *testing.T) {
	var (
		config = ParserConfig{}
		input  = strings.Repeat("(", 10000) + "x" + strings.Repeat(")", 10000)
	)
	//
	node, err := config.Parse(input)
	require.NoError(t, err)
	assert.Equal(t, "x", node.String())
	// Exceeds default bound
	_, err = Parse(input)
	assert.Error(t, err)
}

func TestParser_LongSum(t *testing.T) {
	input := "1" + strings.Repeat("+1", 1000)
	//
	c, err := FromExpression(input)
	require.NoError(t, err)
	//
	val, err := c.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, int32(1001), val)
}

func TestParser_RoundTrip(t *testing.T) {
	inputs := []string{"(x+y)*y", "a-b-c", "a-(b-c)", "8/(4/2)", "x*(y+z)/2-w"}
	//
	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err)
		second, err := Parse(first.String())
		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	}
}
