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
package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/consensys/go-arith/pkg/circuit"
	"github.com/consensys/go-arith/pkg/util/source"
	"github.com/consensys/go-arith/pkg/util/termio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBindings_Valid(t *testing.T) {
	bindings, err := ParseBindings([]string{"x=2", "y=-3", "x=7"})
	require.NoError(t, err)
	//
	expected := []circuit.Binding{circuit.Bind("x", 2), circuit.Bind("y", -3), circuit.Bind("x", 7)}
	assert.Equal(t, expected, bindings)
}

func TestParseBindings_Empty(t *testing.T) {
	bindings, err := ParseBindings(nil)
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

func TestParseBindings_Invalid(t *testing.T) {
	tests := []struct {
		arg string
		msg string
	}{
		{"x", "invalid binding \"x\" (expected name=value)"},
		{"=1", "invalid binding \"=1\" (expected name=value)"},
		{"x=", "invalid value for input \"x\": strconv.ParseInt: parsing \"\": invalid syntax"},
		{"x=abc", "invalid value for input \"x\": strconv.ParseInt: parsing \"abc\": invalid syntax"},
		{"x=2147483648", "invalid value for input \"x\": strconv.ParseInt: parsing \"2147483648\": value out of range"},
	}
	//
	for _, tt := range tests {
		_, err := ParseBindings([]string{"y=1", tt.arg})
		assert.EqualError(t, err, tt.msg)
	}
}

func TestPrintSyntaxError(t *testing.T) {
	var buf bytes.Buffer
	//
	err := parseError(t, "x++y")
	printSyntaxError(&buf, termio.PlainHighlighter(), err)
	//
	assert.Equal(t, "expr:1:3-4 expected number, identifier or '('\n\nx++y\n  ^\n", buf.String())
}

func TestPrintSyntaxError_EndOfInput(t *testing.T) {
	var buf bytes.Buffer
	//
	err := parseError(t, "(x+y")
	printSyntaxError(&buf, termio.PlainHighlighter(), err)
	//
	assert.Equal(t, "expr:1:5-6 expected ')'\n\n(x+y\n    ^\n", buf.String())
}

func parseError(t *testing.T, input string) *source.SyntaxError {
	var serr *source.SyntaxError
	//
	_, err := circuit.Parse(input)
	require.True(t, errors.As(err, &serr))
	//
	return serr
}
