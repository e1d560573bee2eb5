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

	"github.com/consensys/go-arith/pkg/circuit"
	"github.com/consensys/go-arith/pkg/util/source"
	"github.com/consensys/go-arith/pkg/util/termio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] expression ...",
	Short: "check one or more expressions are well-formed.",
	Long: `Parse one or more expressions, reporting any syntax errors.  For each
well-formed expression, its inputs and height are reported.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			config = circuit.ParserConfig{MaxDepth: GetUint(cmd, "max-depth")}
			hl     = termio.NewHighlighter(os.Stdout)
		)
		//
		if !runCheck(os.Stdout, hl, config, args) {
			os.Exit(2)
		}
	},
}

// Check each expression in turn, returning false if any failed.
func runCheck(out io.Writer, hl termio.Highlighter, config circuit.ParserConfig, exprs []string) bool {
	ok := true
	//
	for _, expr := range exprs {
		var serr *source.SyntaxError
		//
		c, err := config.Circuit(expr)
		//
		switch {
		case errors.As(err, &serr):
			printSyntaxError(out, hl, serr)
			//
			ok = false
		case err != nil:
			fmt.Fprintln(out, err)
			//
			ok = false
		default:
			fmt.Fprintf(out, "%s: inputs %v, height %d\n", c, c.Inputs(), c.Root().Height())
		}
	}
	//
	return ok
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
