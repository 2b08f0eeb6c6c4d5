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
	"github.com/rivo/uniseg"
	"github.com/turbolent/prettier"

	"github.com/onflow/circuitc/common"
)

// Identifier

type Identifier struct {
	Identifier string
	Extent     Span
}

var _ Element = &Identifier{}

// NewIdentifier returns an identifier starting at the given position.
// The end position is the position of the last character of the identifier.
func NewIdentifier(
	memoryGauge common.MemoryGauge,
	identifier string,
	startPos Position,
	file FileID,
) Identifier {
	common.UseMemory(memoryGauge, common.IdentifierMemoryUsage)

	endPos := startPos
	if identifier != "" {
		endPos = Position{
			Offset: startPos.Offset + len(identifier) - 1,
			Line:   startPos.Line,
			Column: startPos.Column + uniseg.GraphemeClusterCount(identifier) - 1,
		}
	}

	return Identifier{
		Identifier: identifier,
		Extent:     NewSpan(file, startPos, endPos),
	}
}

func (i Identifier) String() string {
	return i.Identifier
}

func (i Identifier) Equal(other Identifier) bool {
	return i == other
}

func (*Identifier) ElementType() ElementType {
	return ElementTypeIdentifier
}

func (i *Identifier) Span() Span {
	return i.Extent
}

func (i *Identifier) SetSpan(span Span) {
	i.Extent = span
}

func (*Identifier) Walk(_ func(Element)) {
	// no children
}

func (i Identifier) Doc() prettier.Doc {
	return prettier.Text(i.Identifier)
}
