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
	"fmt"
)

// DecodeError is reported when an encoded AST cannot be decoded,
// e.g. because the input is malformed or was produced with an incompatible schema.
type DecodeError struct {
	// Format is the name of the encoding, e.g. "json" or "cbor"
	Format string
	// Path locates the offending field in the encoded form, if known
	Path string
	Err  error
	// Suggestion is an optional hint shown as the secondary message
	Suggestion string
}

var _ UserError = DecodeError{}
var _ SecondaryError = DecodeError{}

func NewDecodeError(format string, err error) DecodeError {
	return DecodeError{
		Format: format,
		Err:    err,
	}
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

func (e DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: failed to decode %s: %s", e.Format, e.Path, e.Err.Error())
	}
	return fmt.Sprintf("%s: failed to decode: %s", e.Format, e.Err.Error())
}

func (e DecodeError) SecondaryError() string {
	return e.Suggestion
}

func (e DecodeError) IsUserError() {}

// WithPath returns a copy of the error that refers to the given field path.
// Paths of nested errors are joined with a dot, outermost first.
func (e DecodeError) WithPath(field string) DecodeError {
	if e.Path == "" {
		e.Path = field
	} else {
		e.Path = field + "." + e.Path
	}
	return e
}
