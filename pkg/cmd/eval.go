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
	"github.com/consensys/go-arith/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression [name=value ...]",
	Short: "evaluate an expression against a set of input values.",
	Long: `Evaluate an arithmetic expression against a set of input values, each given as
name=value.  Where a name is given more than once, the last value wins.  By default,
evaluation uses 32-bit signed integer arithmetic.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		c := ParseCircuit(cmd, args[0])
		//
		bindings, err := ParseBindings(args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		//
		err = runEval(os.Stdout, c, GetFlag(cmd, "field"), bindings)
		//
		if GetFlag(cmd, "stats") {
			stats.Log("Evaluating expression")
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Evaluate a circuit, and write the result.
func runEval(out io.Writer, c *circuit.Circuit, field bool, bindings []circuit.Binding) error {
	log.Debugf("circuit %s has inputs %v", c, c.Inputs())
	//
	if field {
		val, err := c.EvaluateField(bindings...)
		if err != nil {
			return err
		}
		//
		_, err = fmt.Fprintf(out, "Result: %s\n", val.String())
		//
		return err
	}
	//
	val, err := c.Evaluate(bindings...)
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintf(out, "Result: %d\n", val)
	//
	return err
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("field", false, "evaluate over the BLS12-377 scalar field")
}
