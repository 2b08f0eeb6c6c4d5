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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/onflow/circuitc/common"
	"github.com/onflow/circuitc/errors"
)

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
//
// The encoding is deterministic, so equal nodes have equal encodings.
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// CBORDecMode rejects unknown fields and duplicate keys,
// so data encoded with an incompatible schema is not silently accepted.
var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		IntDec:            cbor.IntDecConvertNone,
		MaxArrayElements:  1_000_000,
		MaxMapPairs:       1_000_000,
		MaxNestedLevels:   math.MaxInt16,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// WireFormat is a structured encoding of AST nodes.
type WireFormat struct {
	Name      string
	marshal   func(value any) ([]byte, error)
	unmarshal func(data []byte, target any) error
}

var JSONWireFormat = WireFormat{
	Name:      "json",
	marshal:   json.Marshal,
	unmarshal: unmarshalStrictJSON,
}

var CBORWireFormat = WireFormat{
	Name: "cbor",
	marshal: func(value any) ([]byte, error) {
		return CBOREncMode.Marshal(value)
	},
	unmarshal: func(data []byte, target any) error {
		return CBORDecMode.Unmarshal(data, target)
	},
}

var YAMLWireFormat = WireFormat{
	Name:    "yaml",
	marshal: yaml.Marshal,
	unmarshal: func(data []byte, target any) error {
		return yaml.UnmarshalWithOptions(data, target, yaml.DisallowUnknownField())
	},
}

func unmarshalStrictJSON(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	err := decoder.Decode(target)
	if err != nil {
		return err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after value, at offset %d", decoder.InputOffset())
	}

	return nil
}

func (f WireFormat) EncodeParameter(parameter *Parameter) ([]byte, error) {
	encoded, err := encodeParameter(parameter)
	if err != nil {
		return nil, err
	}
	return f.marshal(encoded)
}

func (f WireFormat) DecodeParameter(gauge common.MemoryGauge, data []byte) (*Parameter, error) {
	var encoded encodedParameter
	err := f.unmarshal(data, &encoded)
	if err != nil {
		return nil, errors.NewDecodeError(f.Name, err)
	}
	return f.decoder(gauge).decodeParameter(encoded)
}

func (f WireFormat) EncodeParameterList(list *ParameterList) ([]byte, error) {
	encoded, err := encodeParameterList(list)
	if err != nil {
		return nil, err
	}
	return f.marshal(encoded)
}

func (f WireFormat) DecodeParameterList(gauge common.MemoryGauge, data []byte) (*ParameterList, error) {
	var encoded encodedParameterList
	err := f.unmarshal(data, &encoded)
	if err != nil {
		return nil, errors.NewDecodeError(f.Name, err)
	}
	return f.decoder(gauge).decodeParameterList(encoded)
}

func (f WireFormat) decoder(gauge common.MemoryGauge) typeDecoder {
	return typeDecoder{
		gauge:  gauge,
		format: f.Name,
	}
}

// Parameter

func (p *Parameter) MarshalJSON() ([]byte, error) {
	return JSONWireFormat.EncodeParameter(p)
}

func (p *Parameter) UnmarshalJSON(data []byte) error {
	return p.unmarshal(JSONWireFormat, data)
}

func (p *Parameter) MarshalCBOR() ([]byte, error) {
	return CBORWireFormat.EncodeParameter(p)
}

func (p *Parameter) UnmarshalCBOR(data []byte) error {
	return p.unmarshal(CBORWireFormat, data)
}

func (p *Parameter) MarshalYAML() (any, error) {
	return encodeParameter(p)
}

func (p *Parameter) UnmarshalYAML(data []byte) error {
	return p.unmarshal(YAMLWireFormat, data)
}

func (p *Parameter) unmarshal(format WireFormat, data []byte) error {
	decoded, err := format.DecodeParameter(nil, data)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

// ParameterList

func (l *ParameterList) MarshalJSON() ([]byte, error) {
	return JSONWireFormat.EncodeParameterList(l)
}

func (l *ParameterList) UnmarshalJSON(data []byte) error {
	return l.unmarshal(JSONWireFormat, data)
}

func (l *ParameterList) MarshalCBOR() ([]byte, error) {
	return CBORWireFormat.EncodeParameterList(l)
}

func (l *ParameterList) UnmarshalCBOR(data []byte) error {
	return l.unmarshal(CBORWireFormat, data)
}

func (l *ParameterList) MarshalYAML() (any, error) {
	return encodeParameterList(l)
}

func (l *ParameterList) UnmarshalYAML(data []byte) error {
	return l.unmarshal(YAMLWireFormat, data)
}

// unmarshal replaces the parameters and the span,
// and resets the index by identifier, so it is rebuilt on next use.
// It must not be called concurrently with other uses of the list.
func (l *ParameterList) unmarshal(format WireFormat, data []byte) error {
	decoded, err := format.DecodeParameterList(nil, data)
	if err != nil {
		return err
	}
	l.once = sync.Once{}
	l._parametersByIdentifier = nil
	l.Parameters = decoded.Parameters
	l.Extent = decoded.Extent
	return nil
}
