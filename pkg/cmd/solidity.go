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
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var solidityCmd = &cobra.Command{
	Use:   "solidity [flags] expression",
	Short: "generate a Solidity contract for an expression.",
	Long: `Generate a Solidity contract whose verify function computes the given
expression over its array parameters.  The contract is written to standard output
unless an output file is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		filename := GetString(cmd, "output")
		c := ParseCircuit(cmd, args[0])
		//
		if err := writeSolidity(os.Stdout, filename, c); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

// Generate a contract, writing it to a given file (or out if none given).
func writeSolidity(out io.Writer, filename string, c *circuit.Circuit) error {
	contract := c.ToSolidity()
	//
	if filename == "" {
		_, err := fmt.Fprint(out, contract)
		return err
	}
	//
	log.Debugf("writing contract to %s", filename)
	//
	if err := os.WriteFile(filename, []byte(contract), 0644); err != nil {
		return errors.Wrapf(err, "failed writing contract")
	}
	//
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(solidityCmd)
	solidityCmd.Flags().StringP("output", "o", "", "specify output file.")
}
