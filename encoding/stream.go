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

package encoding

import (
	goErrors "errors"
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/circuitc/ast"
	"github.com/onflow/circuitc/common"
	"github.com/onflow/circuitc/errors"
)

// A StreamEncoder writes parameters as a CBOR sequence (RFC 8742),
// i.e. one CBOR data item per parameter, without framing.
type StreamEncoder struct {
	enc   *cbor.Encoder
	count int
}

func NewStreamEncoder(w io.Writer) *StreamEncoder {
	return &StreamEncoder{
		enc: ast.CBOREncMode.NewEncoder(w),
	}
}

// Encode writes the CBOR encoding of the given parameter.
// Errors of the underlying writer are returned as-is.
func (e *StreamEncoder) Encode(parameter *ast.Parameter) error {
	data, err := ast.CBORWireFormat.EncodeParameter(parameter)
	if err != nil {
		return err
	}

	err = e.enc.Encode(cbor.RawMessage(data))
	if err != nil {
		return err
	}

	e.count++
	return nil
}

// Count returns the number of parameters written so far.
func (e *StreamEncoder) Count() int {
	return e.count
}

// A StreamDecoder reads parameters from a CBOR sequence.
type StreamDecoder struct {
	dec   *cbor.Decoder
	gauge common.MemoryGauge
	count int
}

func NewStreamDecoder(gauge common.MemoryGauge, r io.Reader) *StreamDecoder {
	return &StreamDecoder{
		dec:   ast.CBORDecMode.NewDecoder(r),
		gauge: gauge,
	}
}

// Decode reads the next parameter.
// It returns io.EOF when the end of the sequence is reached.
func (d *StreamDecoder) Decode() (*ast.Parameter, error) {
	var raw cbor.RawMessage
	err := d.dec.Decode(&raw)
	if err != nil {
		if goErrors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errors.NewDecodeError(ast.CBORWireFormat.Name, err).
			WithPath(streamItemPath(d.count))
	}

	parameter, err := ast.CBORWireFormat.DecodeParameter(d.gauge, raw)
	if err != nil {
		var decodeError errors.DecodeError
		if goErrors.As(err, &decodeError) {
			return nil, decodeError.WithPath(streamItemPath(d.count))
		}
		return nil, err
	}

	d.count++
	return parameter, nil
}

// DecodeAll reads all remaining parameters of the sequence.
func (d *StreamDecoder) DecodeAll() ([]*ast.Parameter, error) {
	var parameters []*ast.Parameter
	for {
		parameter, err := d.Decode()
		if err == io.EOF {
			return parameters, nil
		}
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, parameter)
	}
}

func streamItemPath(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}
