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
package source

import (
	"fmt"
)

// Line is a single physical line of some source text, identified by its span
// and its line number (counting from 1).
type Line struct {
	// Text from which this line was taken.
	text []rune
	// Span of this line within text.
	span Span
	// Line number (counting from 1).
	number int
}

// String returns the characters of this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line has number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the index of the first character of this line.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File holds a named piece of source text, such as an expression given on the
// command line.  Contents are stored as runes so that spans index characters
// rather than bytes.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the name given to this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the characters covered by a given span.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the line which encloses the start of a
// span.  When the span starts at (or beyond) the end of the text, the last
// physical line is returned.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		index = span.start
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(s.contents); i++ {
		if i == index {
			end := findEndOfLine(index, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// SyntaxError records where in some source text parsing failed, and why.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the source file in which this error arose.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the source text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the reason for this error.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// FirstEnclosingLine determines the line on which this error starts.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}
