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

import "fmt"

// MissingBindingError is reported when evaluation reaches an input for which
// no value was supplied.
type MissingBindingError struct {
	// Name of the unbound input.
	Name string
}

// Error implements the error interface.
func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("no binding for input \"%s\"", e.Name)
}

// DivisionByZeroError is reported when the divisor of a division evaluates to
// zero.
type DivisionByZeroError struct {
	// Divisor is the expression which evaluated to zero.
	Divisor string
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero (divisor %s)", e.Divisor)
}
