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
package termio

import (
	"os"

	"golang.org/x/term"
)

// Highlighter decorates text with ANSI escapes, but only when the output it is
// destined for is an interactive terminal.
type Highlighter struct {
	enabled bool
}

// NewHighlighter constructs a highlighter for text written to a given file.
func NewHighlighter(file *os.File) Highlighter {
	return Highlighter{term.IsTerminal(int(file.Fd()))}
}

// PlainHighlighter constructs a highlighter which never decorates text.
func PlainHighlighter() Highlighter {
	return Highlighter{false}
}

// Enabled indicates whether this highlighter decorates text.
func (p Highlighter) Enabled() bool {
	return p.enabled
}

// Apply a given escape to some text, resetting the terminal afterwards.
func (p Highlighter) Apply(escape AnsiEscape, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}
