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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/circuitc/errors"
)

// unsupportedType is a type node unknown to the encoder
type unsupportedType struct {
	PrimitiveType
}

var _ Type = &unsupportedType{}

func TestEncodeType_Unsupported(t *testing.T) {

	t.Parallel()

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		_, _ = encodeType(&unsupportedType{})
	}()

	require.NotNil(t, recovered)

	err, ok := recovered.(error)
	require.True(t, ok)
	assert.True(t, errors.IsInternalError(err))
	assert.IsType(t, &errors.UnreachableError{}, err)
}

func TestEncodeIdentifier(t *testing.T) {

	t.Parallel()

	encoded, err := encodeIdentifier(Identifier{Identifier: "aé", Extent: testSpan(0, 3)})
	require.NoError(t, err)
	assert.Equal(t,
		encodedIdentifier{Identifier: "aé", Span: testSpan(0, 3)},
		encoded,
	)

	_, err = encodeIdentifier(Identifier{Identifier: "a\xc3"})
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
