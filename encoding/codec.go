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

// Package encoding selects a structured encoding for AST nodes,
// so a front end driver can cache or transfer function signatures.
package encoding

import (
	"strings"

	"github.com/onflow/circuitc/ast"
	"github.com/onflow/circuitc/common"
	"github.com/onflow/circuitc/errors"
)

type Format uint8

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatCBOR
	FormatYAML
)

var Formats = []Format{
	FormatJSON,
	FormatCBOR,
	FormatYAML,
}

func (f Format) wireFormat() (ast.WireFormat, bool) {
	switch f {
	case FormatJSON:
		return ast.JSONWireFormat, true
	case FormatCBOR:
		return ast.CBORWireFormat, true
	case FormatYAML:
		return ast.YAMLWireFormat, true
	default:
		return ast.WireFormat{}, false
	}
}

func (f Format) String() string {
	wireFormat, ok := f.wireFormat()
	if !ok {
		return "unknown"
	}
	return wireFormat.Name
}

// IsBinary returns true if encoded data of the format is not printable text.
func (f Format) IsBinary() bool {
	return f == FormatCBOR
}

// ParseFormat returns the format with the given name, e.g. "json".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, format := range Formats {
		if format.String() == name {
			return format, nil
		}
	}
	return FormatUnknown, errors.NewDefaultUserError("unknown format: %q", name)
}

// Encode returns the encoding of the given parameter in the given format.
func Encode(format Format, parameter *ast.Parameter) ([]byte, error) {
	wireFormat, ok := format.wireFormat()
	if !ok {
		return nil, errors.NewUnexpectedError("cannot encode in unknown format %d", format)
	}
	return wireFormat.EncodeParameter(parameter)
}

// Decode returns the parameter decoded from data in the given format.
//
// The returned error is an errors.DecodeError if data is malformed
// or was encoded with an incompatible schema.
func Decode(gauge common.MemoryGauge, format Format, data []byte) (*ast.Parameter, error) {
	wireFormat, ok := format.wireFormat()
	if !ok {
		return nil, errors.NewUnexpectedError("cannot decode from unknown format %d", format)
	}
	return wireFormat.DecodeParameter(gauge, data)
}

func EncodeList(format Format, list *ast.ParameterList) ([]byte, error) {
	wireFormat, ok := format.wireFormat()
	if !ok {
		return nil, errors.NewUnexpectedError("cannot encode in unknown format %d", format)
	}
	return wireFormat.EncodeParameterList(list)
}

func DecodeList(gauge common.MemoryGauge, format Format, data []byte) (*ast.ParameterList, error) {
	wireFormat, ok := format.wireFormat()
	if !ok {
		return nil, errors.NewUnexpectedError("cannot decode from unknown format %d", format)
	}
	return wireFormat.DecodeParameterList(gauge, data)
}
