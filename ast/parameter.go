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
	"io"
	"strings"

	"github.com/fxamacker/circlehash"
	"github.com/turbolent/prettier"

	"github.com/onflow/circuitc/common"
	"github.com/onflow/circuitc/errors"
)

const (
	publicKeyword  = "public"
	privateKeyword = "private"
	constKeyword   = "const"
	mutKeyword     = "mut"
)

const parameterTypeSeparator = ": "

// Parameter is a parameter of a function, circuit, or transition signature.
//
// All fields but the span are fixed once the parser constructed the parameter.
// No validation of the flags happens here, e.g. a parameter may be both constant and mutable;
// such combinations are rejected by the checker.
type Parameter struct {
	// Identifier is the name the parameter is accessible as in the body.
	Identifier Identifier
	IsConst    bool
	// IsPublic is true if the parameter is a public input,
	// and false if it is a private input.
	IsPublic  bool
	IsMutable bool
	Type      Type
	// Extent covers the parameter from its first modifier to the end of its type.
	Extent Span
}

var _ Element = &Parameter{}

func NewParameter(
	gauge common.MemoryGauge,
	identifier Identifier,
	isConst bool,
	isPublic bool,
	isMutable bool,
	typ Type,
	span Span,
) *Parameter {
	common.UseMemory(gauge, common.ParameterMemoryUsage)
	return &Parameter{
		Identifier: identifier,
		IsConst:    isConst,
		IsPublic:   isPublic,
		IsMutable:  isMutable,
		Type:       typ,
		Extent:     span,
	}
}

func (*Parameter) ElementType() ElementType {
	return ElementTypeParameter
}

func (p *Parameter) Span() Span {
	return p.Extent
}

func (p *Parameter) SetSpan(span Span) {
	p.Extent = span
}

func (p *Parameter) Walk(walkChild func(Element)) {
	walkChild(&p.Identifier)
	if p.Type != nil {
		walkChild(p.Type)
	}
}

// Equal returns true if both parameters have equal fields.
// The spans are compared too, so the same parameter declared
// at two different locations is not equal.
func (p *Parameter) Equal(other *Parameter) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Identifier.Equal(other.Identifier) &&
		p.IsConst == other.IsConst &&
		p.IsPublic == other.IsPublic &&
		p.IsMutable == other.IsMutable &&
		common.DeepEquals[Type](p.Type, other.Type) &&
		p.Extent == other.Extent
}

const parameterHashSeed uint64 = 0x7061_7261_6d65_7465

// Hash returns a hash of all fields compared by Equal.
// The hash is computed over the deterministic CBOR encoding of the parameter.
//
// Hash panics if the parameter cannot be encoded, e.g. if it has no type,
// a primitive type of unknown kind, or a name which is not valid UTF-8.
func (p *Parameter) Hash() uint64 {
	data, err := p.MarshalCBOR()
	if err != nil {
		panic(errors.NewUnexpectedErrorFromCause(err))
	}
	return circlehash.Hash64(data, parameterHashSeed)
}

// WriteTo writes the canonical form of the parameter,
// e.g. `public const x: u32`.
//
// Errors of the writer are returned as-is.
func (p *Parameter) WriteTo(w io.Writer) (int64, error) {
	sw := sequentialWriter{w: w}

	if p.IsPublic {
		sw.writeString(publicKeyword)
	} else {
		sw.writeString(privateKeyword)
	}
	sw.writeString(" ")

	if p.IsConst {
		sw.writeString(constKeyword)
		sw.writeString(" ")
	}

	if p.IsMutable {
		sw.writeString(mutKeyword)
		sw.writeString(" ")
	}

	sw.writeString(p.Identifier.String())
	sw.writeString(parameterTypeSeparator)

	if p.Type != nil {
		sw.writeString(p.Type.String())
	}

	return sw.n, sw.err
}

func (p *Parameter) String() string {
	var builder strings.Builder
	// writing to a strings.Builder never fails
	_, _ = p.WriteTo(&builder)
	return builder.String()
}

// GoString returns the canonical form, same as String,
// so %v and %#v print the same.
func (p *Parameter) GoString() string {
	return p.String()
}

var parameterTypeSeparatorDoc prettier.Doc = prettier.Text(parameterTypeSeparator)

func (p *Parameter) Doc() prettier.Doc {
	var doc prettier.Concat

	if p.IsPublic {
		doc = append(doc, prettier.Text(publicKeyword))
	} else {
		doc = append(doc, prettier.Text(privateKeyword))
	}
	doc = append(doc, prettier.Space)

	if p.IsConst {
		doc = append(
			doc,
			prettier.Text(constKeyword),
			prettier.Space,
		)
	}

	if p.IsMutable {
		doc = append(
			doc,
			prettier.Text(mutKeyword),
			prettier.Space,
		)
	}

	var typeDoc prettier.Doc = prettier.Text("")
	if p.Type != nil {
		typeDoc = p.Type.Doc()
	}

	return append(
		doc,
		p.Identifier.Doc(),
		parameterTypeSeparatorDoc,
		typeDoc,
	)
}

// sequentialWriter writes strings until the first error occurs.
type sequentialWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (w *sequentialWriter) writeString(s string) {
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	w.err = err
}
