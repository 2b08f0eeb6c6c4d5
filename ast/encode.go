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
	"unicode/utf8"

	"github.com/onflow/circuitc/common"
	"github.com/onflow/circuitc/errors"
)

// The encoded forms below are the single source of truth
// for the field names of all supported encodings.
// Field names and CBOR keys must never be reused or renumbered.

type encodedIdentifier struct {
	Identifier string `json:"Identifier" cbor:"0,keyasint" yaml:"Identifier"`
	Span       Span   `json:"Span" cbor:"1,keyasint" yaml:"Span"`
}

// Kinds of encoded types
const (
	encodedTypeKindPrimitive = "PrimitiveType"
	encodedTypeKindNamed     = "NamedType"
	encodedTypeKindArray     = "ArrayType"
	encodedTypeKindTuple     = "TupleType"
)

var encodedTypeKinds = []string{
	encodedTypeKindPrimitive,
	encodedTypeKindNamed,
	encodedTypeKindArray,
	encodedTypeKindTuple,
}

type encodedType struct {
	Kind       string             `json:"Kind" cbor:"0,keyasint" yaml:"Kind"`
	Primitive  string             `json:"Primitive,omitempty" cbor:"1,keyasint,omitempty" yaml:"Primitive,omitempty"`
	Identifier *encodedIdentifier `json:"Identifier,omitempty" cbor:"2,keyasint,omitempty" yaml:"Identifier,omitempty"`
	Type       *encodedType       `json:"Type,omitempty" cbor:"3,keyasint,omitempty" yaml:"Type,omitempty"`
	Length     uint64             `json:"Length,omitempty" cbor:"4,keyasint,omitempty" yaml:"Length,omitempty"`
	Types      []encodedType      `json:"Types,omitempty" cbor:"5,keyasint,omitempty" yaml:"Types,omitempty"`
	Span       Span               `json:"Span" cbor:"6,keyasint" yaml:"Span"`
}

type encodedParameter struct {
	Identifier encodedIdentifier `json:"Identifier" cbor:"0,keyasint" yaml:"Identifier"`
	IsConst    bool              `json:"IsConst" cbor:"1,keyasint" yaml:"IsConst"`
	IsPublic   bool              `json:"IsPublic" cbor:"2,keyasint" yaml:"IsPublic"`
	IsMutable  bool              `json:"IsMutable" cbor:"3,keyasint" yaml:"IsMutable"`
	Type       encodedType       `json:"Type" cbor:"4,keyasint" yaml:"Type"`
	Span       Span              `json:"Span" cbor:"5,keyasint" yaml:"Span"`
}

type encodedParameterList struct {
	Parameters []encodedParameter `json:"Parameters" cbor:"0,keyasint" yaml:"Parameters"`
	Span       Span               `json:"Span" cbor:"1,keyasint" yaml:"Span"`
}

// Encoding

// encodeIdentifier rejects names which are not valid UTF-8:
// text formats would replace the invalid bytes, and CBOR would fail to decode them.
func encodeIdentifier(identifier Identifier) (encodedIdentifier, error) {
	if !utf8.ValidString(identifier.Identifier) {
		return encodedIdentifier{}, errors.NewUnexpectedError(
			"cannot encode identifier which is not valid UTF-8: %q",
			identifier.Identifier,
		)
	}
	return encodedIdentifier{
		Identifier: identifier.Identifier,
		Span:       identifier.Extent,
	}, nil
}

func encodeType(t Type) (encodedType, error) {
	switch t := t.(type) {
	case nil:
		return encodedType{}, errors.NewUnexpectedError("cannot encode missing type")

	case *PrimitiveType:
		if t.Kind.Keyword() == "" {
			return encodedType{}, errors.NewUnexpectedError("cannot encode unknown primitive kind %d", t.Kind)
		}
		return encodedType{
			Kind:      encodedTypeKindPrimitive,
			Primitive: t.Kind.Keyword(),
			Span:      t.Extent,
		}, nil

	case *NamedType:
		identifier, err := encodeIdentifier(t.Identifier)
		if err != nil {
			return encodedType{}, err
		}
		return encodedType{
			Kind:       encodedTypeKindNamed,
			Identifier: &identifier,
			Span:       t.Extent,
		}, nil

	case *ArrayType:
		elementType, err := encodeType(t.Type)
		if err != nil {
			return encodedType{}, err
		}
		return encodedType{
			Kind:   encodedTypeKindArray,
			Type:   &elementType,
			Length: t.Length,
			Span:   t.Extent,
		}, nil

	case *TupleType:
		var types []encodedType
		if len(t.Types) > 0 {
			types = make([]encodedType, len(t.Types))
		}
		for i, elementType := range t.Types {
			encoded, err := encodeType(elementType)
			if err != nil {
				return encodedType{}, err
			}
			types[i] = encoded
		}
		return encodedType{
			Kind:  encodedTypeKindTuple,
			Types: types,
			Span:  t.Extent,
		}, nil

	default:
		panic(errors.NewUnreachableError())
	}
}

func encodeParameter(parameter *Parameter) (encodedParameter, error) {
	if parameter == nil {
		return encodedParameter{}, errors.NewUnexpectedError("cannot encode missing parameter")
	}

	identifier, err := encodeIdentifier(parameter.Identifier)
	if err != nil {
		return encodedParameter{}, err
	}

	typ, err := encodeType(parameter.Type)
	if err != nil {
		return encodedParameter{}, err
	}

	return encodedParameter{
		Identifier: identifier,
		IsConst:    parameter.IsConst,
		IsPublic:   parameter.IsPublic,
		IsMutable:  parameter.IsMutable,
		Type:       typ,
		Span:       parameter.Extent,
	}, nil
}

func encodeParameterList(list *ParameterList) (encodedParameterList, error) {
	if list == nil {
		return encodedParameterList{}, errors.NewUnexpectedError("cannot encode missing parameter list")
	}

	parameters := make([]encodedParameter, len(list.Parameters))
	for i, parameter := range list.Parameters {
		encoded, err := encodeParameter(parameter)
		if err != nil {
			return encodedParameterList{}, err
		}
		parameters[i] = encoded
	}

	return encodedParameterList{
		Parameters: parameters,
		Span:       list.Extent,
	}, nil
}

// Decoding

// typeDecoder converts encoded forms back into AST nodes.
// Errors are reported as errors.DecodeError for the given format.
type typeDecoder struct {
	gauge  common.MemoryGauge
	format string
}

func (d typeDecoder) errorf(path string, message string, args ...any) errors.DecodeError {
	decodeError := errors.NewDecodeError(d.format, fmt.Errorf(message, args...))
	decodeError.Path = path
	return decodeError
}

func (d typeDecoder) decodeIdentifier(encoded encodedIdentifier) (Identifier, error) {
	if encoded.Identifier == "" {
		return Identifier{}, d.errorf("Identifier", "missing identifier")
	}

	common.UseMemory(d.gauge, common.NewRawStringMemoryUsage(len(encoded.Identifier)))
	common.UseMemory(d.gauge, common.IdentifierMemoryUsage)

	return Identifier{
		Identifier: encoded.Identifier,
		Extent:     encoded.Span,
	}, nil
}

func (d typeDecoder) decodeType(encoded encodedType) (Type, error) {
	switch encoded.Kind {
	case "":
		return nil, d.errorf("Kind", "missing type")

	case encodedTypeKindPrimitive:
		kind, ok := PrimitiveKindFromKeyword(encoded.Primitive)
		if !ok {
			decodeError := d.errorf("Primitive", "unknown primitive type %q", encoded.Primitive)
			if suggestion := primitiveKeywordSuggestion(encoded.Primitive); suggestion != "" {
				decodeError.Suggestion = fmt.Sprintf("did you mean `%s`?", suggestion)
			}
			return nil, decodeError
		}
		return NewPrimitiveType(d.gauge, kind, encoded.Span), nil

	case encodedTypeKindNamed:
		if encoded.Identifier == nil {
			return nil, d.errorf("Identifier", "missing identifier")
		}
		identifier, err := d.decodeIdentifier(*encoded.Identifier)
		if err != nil {
			return nil, err
		}
		namedType := NewNamedType(d.gauge, identifier)
		namedType.Extent = encoded.Span
		return namedType, nil

	case encodedTypeKindArray:
		if encoded.Type == nil {
			return nil, d.errorf("Type", "missing element type")
		}
		elementType, err := d.decodeType(*encoded.Type)
		if err != nil {
			return nil, withPath(err, "Type")
		}
		return NewArrayType(d.gauge, elementType, encoded.Length, encoded.Span), nil

	case encodedTypeKindTuple:
		var types []Type
		if len(encoded.Types) > 0 {
			types = make([]Type, len(encoded.Types))
		}
		for i, encodedElementType := range encoded.Types {
			elementType, err := d.decodeType(encodedElementType)
			if err != nil {
				return nil, withPath(err, "Types."+strconv.Itoa(i))
			}
			types[i] = elementType
		}
		return NewTupleType(d.gauge, types, encoded.Span), nil

	default:
		decodeError := d.errorf("Kind", "unknown type kind %q", encoded.Kind)
		if suggestion := closestName(encoded.Kind, encodedTypeKinds); suggestion != "" {
			decodeError.Suggestion = fmt.Sprintf("did you mean `%s`?", suggestion)
		}
		return nil, decodeError
	}
}

func (d typeDecoder) decodeParameter(encoded encodedParameter) (*Parameter, error) {
	common.UseMemory(d.gauge, common.EncodedParameterMemoryUsage)

	identifier, err := d.decodeIdentifier(encoded.Identifier)
	if err != nil {
		return nil, err
	}

	typ, err := d.decodeType(encoded.Type)
	if err != nil {
		return nil, withPath(err, "Type")
	}

	return NewParameter(
		d.gauge,
		identifier,
		encoded.IsConst,
		encoded.IsPublic,
		encoded.IsMutable,
		typ,
		encoded.Span,
	), nil
}

func (d typeDecoder) decodeParameterList(encoded encodedParameterList) (*ParameterList, error) {
	parameters := make([]*Parameter, len(encoded.Parameters))
	for i, element := range encoded.Parameters {
		parameter, err := d.decodeParameter(element)
		if err != nil {
			return nil, withPath(err, "Parameters."+strconv.Itoa(i))
		}
		parameters[i] = parameter
	}
	return NewParameterList(d.gauge, parameters, encoded.Span), nil
}

func withPath(err error, field string) error {
	if decodeError, ok := err.(errors.DecodeError); ok {
		return decodeError.WithPath(field)
	}
	return err
}
