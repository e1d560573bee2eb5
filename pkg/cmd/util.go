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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-arith/pkg/circuit"
	"github.com/consensys/go-arith/pkg/util"
	"github.com/consensys/go-arith/pkg/util/source"
	"github.com/consensys/go-arith/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Configure the log level according to the global flags.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") || GetFlag(cmd, "stats") {
		log.SetLevel(log.DebugLevel)
	}
}

// ParseCircuit parses an expression given on the command line into a circuit,
// printing any syntax error and exiting.
func ParseCircuit(cmd *cobra.Command, expr string) *circuit.Circuit {
	var (
		stats  = util.NewPerfStats()
		config = circuit.ParserConfig{MaxDepth: GetUint(cmd, "max-depth")}
	)
	//
	c, err := config.Circuit(expr)
	//
	if GetFlag(cmd, "stats") {
		stats.Log("Parsing expression")
	}
	//
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(os.Stdout, termio.NewHighlighter(os.Stdout), serr)
		os.Exit(2)
	} else if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return c
}

// ParseBindings parses command-line arguments of the form "name=value" into
// bindings, retaining their order.
func ParseBindings(args []string) ([]circuit.Binding, error) {
	bindings := make([]circuit.Binding, len(args))
	//
	for i, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("invalid binding \"%s\" (expected name=value)", arg)
		}
		//
		val, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for input \"%s\"", name)
		}
		//
		bindings[i] = circuit.Bind(name, int32(val))
	}
	//
	return bindings, nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, hl termio.Highlighter, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line), highlighting at least one
	// character so the end of input remains visible.
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, hl.Apply(errorHighlight(), strings.Repeat("^", length)))
}

func errorHighlight() termio.AnsiEscape {
	return termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
}
