/*
 * Circuitc - front end of the circuit language compiler
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"fmt"
)

// Position defines a row/column within the source code.
type Position struct {
	// Offset is the byte offset, starting at 0
	Offset int `json:"Offset" cbor:"0,keyasint" yaml:"Offset"`
	// Line is the line number, starting at 1
	Line int `json:"Line" cbor:"1,keyasint" yaml:"Line"`
	// Column is the column number, starting at 0,
	// counted in grapheme clusters
	Column int `json:"Column" cbor:"2,keyasint" yaml:"Column"`
}

var EmptyPosition = Position{}

func NewPosition(offset, line, column int) Position {
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// Shifted returns the position on the same line,
// the given number of bytes and columns further.
func (position Position) Shifted(length int) Position {
	return Position{
		Line:   position.Line,
		Offset: position.Offset + length,
		Column: position.Column + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf(
		"%d(%d:%d)",
		position.Offset,
		position.Line,
		position.Column,
	)
}

// Compare orders positions by their offset.
func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

// FileID identifies a source file in the source map of the compilation unit.
type FileID uint32

// FileIDUnknown is used for nodes which were synthesized
// and do not originate from a source file.
const FileIDUnknown FileID = 0

// Span is the source range of an AST node,
// from its start position to its end position (inclusive).
type Span struct {
	StartPos Position `json:"StartPos" cbor:"0,keyasint" yaml:"StartPos"`
	EndPos   Position `json:"EndPos" cbor:"1,keyasint" yaml:"EndPos"`
	File     FileID   `json:"File" cbor:"2,keyasint" yaml:"File"`
}

var EmptySpan = Span{}

func NewSpan(file FileID, startPos, endPos Position) Span {
	return Span{
		StartPos: startPos,
		EndPos:   endPos,
		File:     file,
	}
}

func (s Span) IsEmpty() bool {
	return s == EmptySpan
}

// Contains returns true if the given position is within the span.
// The file is not considered.
func (s Span) Contains(pos Position) bool {
	return s.StartPos.Compare(pos) <= 0 &&
		s.EndPos.Compare(pos) >= 0
}

// Cover returns the smallest span which covers both spans.
// The file of the receiver is kept, unless it is unknown.
func (s Span) Cover(other Span) Span {
	result := s
	if other.StartPos.Compare(result.StartPos) < 0 {
		result.StartPos = other.StartPos
	}
	if other.EndPos.Compare(result.EndPos) > 0 {
		result.EndPos = other.EndPos
	}
	if result.File == FileIDUnknown {
		result.File = other.File
	}
	return result
}

// ShiftedBy returns the span moved by the given number of bytes.
// Lines and columns are left unchanged.
func (s Span) ShiftedBy(offset int) Span {
	s.StartPos.Offset += offset
	s.EndPos.Offset += offset
	return s
}

func (s Span) String() string {
	return fmt.Sprintf(
		"%d:%d:%d-%d:%d",
		s.File,
		s.StartPos.Line,
		s.StartPos.Column,
		s.EndPos.Line,
		s.EndPos.Column,
	)
}
