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

package encoding_test

import (
	"bytes"
	goErrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/circuitc/ast"
	"github.com/onflow/circuitc/encoding"
	. "github.com/onflow/circuitc/test_utils/common_utils"
)

func TestStream(t *testing.T) {

	t.Parallel()

	parameters := []*ast.Parameter{
		newTestParameter("a", 0),
		newTestParameter("b", 20),
		newTestParameter("c", 40),
	}

	var buffer bytes.Buffer

	encoder := encoding.NewStreamEncoder(&buffer)
	for _, parameter := range parameters {
		require.NoError(t, encoder.Encode(parameter))
	}
	require.Equal(t, len(parameters), encoder.Count())

	encoded := buffer.Bytes()

	t.Run("decode", func(t *testing.T) {
		t.Parallel()

		decoder := encoding.NewStreamDecoder(nil, bytes.NewReader(encoded))

		for _, expected := range parameters {
			actual, err := decoder.Decode()
			require.NoError(t, err)
			AssertEqualWithDiff(t, expected, actual)
		}

		_, err := decoder.Decode()
		require.Equal(t, io.EOF, err)
	})

	t.Run("decode all", func(t *testing.T) {
		t.Parallel()

		decoder := encoding.NewStreamDecoder(nil, bytes.NewReader(encoded))

		actual, err := decoder.DecodeAll()
		require.NoError(t, err)
		require.Len(t, actual, len(parameters))

		for i, parameter := range parameters {
			assert.True(t, parameter.Equal(actual[i]))
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		decoder := encoding.NewStreamDecoder(nil, bytes.NewReader(nil))

		actual, err := decoder.DecodeAll()
		require.NoError(t, err)
		require.Empty(t, actual)
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()

		decoder := encoding.NewStreamDecoder(nil, bytes.NewReader(encoded[:len(encoded)-1]))

		_, err := decoder.DecodeAll()
		decodeError := RequireDecodeError(t, err)
		assert.Equal(t, "[2]", decodeError.Path)
	})

	t.Run("invalid item", func(t *testing.T) {
		t.Parallel()

		first, err := ast.CBORWireFormat.EncodeParameter(parameters[0])
		require.NoError(t, err)

		// an empty map is well-formed, but not a valid parameter
		data := append(append([]byte{}, first...), 0xa0)

		decoder := encoding.NewStreamDecoder(nil, bytes.NewReader(data))

		_, err = decoder.Decode()
		require.NoError(t, err)

		_, err = decoder.Decode()
		decodeError := RequireDecodeError(t, err)
		assert.Equal(t, "[1].Identifier", decodeError.Path)
	})
}

type failingWriter struct{}

var errTestWriteFailed = goErrors.New("write failed")

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errTestWriteFailed
}

func TestStreamEncoder_WriterError(t *testing.T) {

	t.Parallel()

	encoder := encoding.NewStreamEncoder(failingWriter{})

	err := encoder.Encode(newTestParameter("a", 0))
	require.ErrorIs(t, err, errTestWriteFailed)
	require.Equal(t, 0, encoder.Count())
}
