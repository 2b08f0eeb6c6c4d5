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
	"strconv"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/onflow/circuitc/common"
)

// Type is the declared type of a parameter.
// Types are rendered with String, which is used verbatim
// in the canonical form of the nodes which contain them.
type Type interface {
	Element
	fmt.Stringer
	HasDoc
	Equal(other Type) bool
	isType()
}

// PrimitiveType represents a built-in type, e.g. `u32` or `field`

type PrimitiveType struct {
	Kind   PrimitiveKind
	Extent Span
}

var _ Type = &PrimitiveType{}

func NewPrimitiveType(
	memoryGauge common.MemoryGauge,
	kind PrimitiveKind,
	span Span,
) *PrimitiveType {
	common.UseMemory(memoryGauge, common.PrimitiveTypeMemoryUsage)
	return &PrimitiveType{
		Kind:   kind,
		Extent: span,
	}
}

func (*PrimitiveType) isType() {}

func (*PrimitiveType) ElementType() ElementType {
	return ElementTypePrimitiveType
}

func (t *PrimitiveType) String() string {
	return t.Kind.Keyword()
}

func (t *PrimitiveType) Doc() prettier.Doc {
	return prettier.Text(t.Kind.Keyword())
}

func (t *PrimitiveType) Span() Span {
	return t.Extent
}

func (t *PrimitiveType) SetSpan(span Span) {
	t.Extent = span
}

func (*PrimitiveType) Walk(_ func(Element)) {
	// no children
}

func (t *PrimitiveType) Equal(other Type) bool {
	otherType, ok := other.(*PrimitiveType)
	if !ok || t == nil || otherType == nil {
		return ok && t == otherType
	}
	return *t == *otherType
}

// NamedType represents a user-defined type, e.g. a record or struct,
// referred to by its name

type NamedType struct {
	Identifier Identifier
	Extent     Span
}

var _ Type = &NamedType{}

// NewNamedType returns a named type which spans exactly its identifier.
func NewNamedType(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
) *NamedType {
	common.UseMemory(memoryGauge, common.NamedTypeMemoryUsage)
	return &NamedType{
		Identifier: identifier,
		Extent:     identifier.Extent,
	}
}

func (*NamedType) isType() {}

func (*NamedType) ElementType() ElementType {
	return ElementTypeNamedType
}

func (t *NamedType) String() string {
	return t.Identifier.String()
}

func (t *NamedType) Doc() prettier.Doc {
	return t.Identifier.Doc()
}

func (t *NamedType) Span() Span {
	return t.Extent
}

func (t *NamedType) SetSpan(span Span) {
	t.Extent = span
}

func (t *NamedType) Walk(walkChild func(Element)) {
	walkChild(&t.Identifier)
}

func (t *NamedType) Equal(other Type) bool {
	otherType, ok := other.(*NamedType)
	if !ok || t == nil || otherType == nil {
		return ok && t == otherType
	}
	return *t == *otherType
}

// ArrayType represents a fixed-length array type, e.g. `[u8; 32]`

type ArrayType struct {
	Type   Type
	Length uint64
	Extent Span
}

var _ Type = &ArrayType{}

func NewArrayType(
	memoryGauge common.MemoryGauge,
	elementType Type,
	length uint64,
	span Span,
) *ArrayType {
	common.UseMemory(memoryGauge, common.ArrayTypeMemoryUsage)
	return &ArrayType{
		Type:   elementType,
		Length: length,
		Extent: span,
	}
}

func (*ArrayType) isType() {}

func (*ArrayType) ElementType() ElementType {
	return ElementTypeArrayType
}

func (t *ArrayType) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if t.Type != nil {
		sb.WriteString(t.Type.String())
	}
	sb.WriteString("; ")
	sb.WriteString(strconv.FormatUint(t.Length, 10))
	sb.WriteByte(']')
	return sb.String()
}

var arrayTypeStartDoc prettier.Doc = prettier.Text("[")
var arrayTypeLengthSeparatorDoc prettier.Doc = prettier.Text("; ")
var arrayTypeEndDoc prettier.Doc = prettier.Text("]")

func (t *ArrayType) Doc() prettier.Doc {
	var elementDoc prettier.Doc = prettier.Text("")
	if t.Type != nil {
		elementDoc = t.Type.Doc()
	}
	return prettier.Concat{
		arrayTypeStartDoc,
		elementDoc,
		arrayTypeLengthSeparatorDoc,
		prettier.Text(strconv.FormatUint(t.Length, 10)),
		arrayTypeEndDoc,
	}
}

func (t *ArrayType) Span() Span {
	return t.Extent
}

func (t *ArrayType) SetSpan(span Span) {
	t.Extent = span
}

func (t *ArrayType) Walk(walkChild func(Element)) {
	if t.Type != nil {
		walkChild(t.Type)
	}
}

func (t *ArrayType) Equal(other Type) bool {
	otherType, ok := other.(*ArrayType)
	if !ok || t == nil || otherType == nil {
		return ok && t == otherType
	}
	return t.Length == otherType.Length &&
		t.Extent == otherType.Extent &&
		common.DeepEquals[Type](t.Type, otherType.Type)
}

// TupleType represents a tuple type, e.g. `(u8, bool)`.
// The tuple type without elements is the unit type `()`

type TupleType struct {
	Types  []Type
	Extent Span
}

var _ Type = &TupleType{}

func NewTupleType(
	memoryGauge common.MemoryGauge,
	types []Type,
	span Span,
) *TupleType {
	common.UseMemory(memoryGauge, common.TupleTypeMemoryUsage)
	return &TupleType{
		Types:  types,
		Extent: span,
	}
}

func (*TupleType) isType() {}

func (*TupleType) ElementType() ElementType {
	return ElementTypeTupleType
}

func (t *TupleType) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, elementType := range t.Types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elementType.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

var tupleTypeStartDoc prettier.Doc = prettier.Text("(")
var tupleTypeSeparatorDoc prettier.Doc = prettier.Text(", ")
var tupleTypeEndDoc prettier.Doc = prettier.Text(")")

func (t *TupleType) Doc() prettier.Doc {
	doc := prettier.Concat{tupleTypeStartDoc}
	for i, elementType := range t.Types {
		if i > 0 {
			doc = append(doc, tupleTypeSeparatorDoc)
		}
		doc = append(doc, elementType.Doc())
	}
	return append(doc, tupleTypeEndDoc)
}

func (t *TupleType) Span() Span {
	return t.Extent
}

func (t *TupleType) SetSpan(span Span) {
	t.Extent = span
}

func (t *TupleType) Walk(walkChild func(Element)) {
	for _, elementType := range t.Types {
		walkChild(elementType)
	}
}

func (t *TupleType) Equal(other Type) bool {
	otherType, ok := other.(*TupleType)
	if !ok || t == nil || otherType == nil {
		return ok && t == otherType
	}
	return t.Extent == otherType.Extent &&
		common.SliceEquals(t.Types, otherType.Types)
}
