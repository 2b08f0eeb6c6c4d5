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

package errors

import (
	goErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {

	t.Parallel()

	cause := goErrors.New("cause")

	for name, testCase := range map[string]struct {
		err      error
		internal bool
		user     bool
	}{
		"unexpected":       {err: NewUnexpectedError("unexpected %d", 1), internal: true},
		"unexpected cause": {err: NewUnexpectedErrorFromCause(cause), internal: true},
		"unreachable":      {err: NewUnreachableError(), internal: true},
		"default user":     {err: NewDefaultUserError("invalid %s", "input"), user: true},
		"memory":           {err: MemoryError{Err: cause}, user: true},
		"decode":           {err: NewDecodeError("json", cause), user: true},
		"wrapped decode":   {err: fmt.Errorf("loading: %w", NewDecodeError("json", cause)), user: true},
		"plain":            {err: cause},
	} {
		testCase := testCase

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.internal, IsInternalError(testCase.err))
			assert.Equal(t, testCase.user, IsUserError(testCase.err))
		})
	}
}

func TestDecodeError(t *testing.T) {

	t.Parallel()

	cause := goErrors.New("missing identifier")

	t.Run("without path", func(t *testing.T) {
		t.Parallel()

		err := NewDecodeError("cbor", cause)

		assert.Equal(t, "cbor: failed to decode: missing identifier", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "", err.SecondaryError())
	})

	t.Run("with path", func(t *testing.T) {
		t.Parallel()

		err := NewDecodeError("json", cause).
			WithPath("Identifier").
			WithPath("Parameters.0")

		assert.Equal(t, "Parameters.0.Identifier", err.Path)
		assert.Equal(t,
			"json: failed to decode Parameters.0.Identifier: missing identifier",
			err.Error(),
		)
	})

	t.Run("suggestion", func(t *testing.T) {
		t.Parallel()

		err := NewDecodeError("yaml", cause)
		err.Suggestion = "did you mean `bool`?"

		assert.Equal(t, "did you mean `bool`?", err.SecondaryError())
	})

	t.Run("as", func(t *testing.T) {
		t.Parallel()

		var err error = fmt.Errorf("wrapped: %w", NewDecodeError("json", cause))

		var decodeError DecodeError
		require.ErrorAs(t, err, &decodeError)
		assert.Equal(t, "json", decodeError.Format)
	})
}
