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

package common

import (
	"github.com/onflow/circuitc/errors"
)

type MemoryUsage struct {
	Kind   MemoryKind
	Amount uint64
}

// MemoryGauge is implemented by the front end driver
// to limit the memory used for constructing and decoding ASTs.
type MemoryGauge interface {
	MeterMemory(usage MemoryUsage) error
}

var (
	// AST

	IdentifierMemoryUsage = NewConstantMemoryUsage(MemoryKindIdentifier)
	ParameterMemoryUsage  = NewConstantMemoryUsage(MemoryKindParameter)

	// AST types

	PrimitiveTypeMemoryUsage = NewConstantMemoryUsage(MemoryKindPrimitiveType)
	NamedTypeMemoryUsage     = NewConstantMemoryUsage(MemoryKindNamedType)
	ArrayTypeMemoryUsage     = NewConstantMemoryUsage(MemoryKindArrayType)
	TupleTypeMemoryUsage     = NewConstantMemoryUsage(MemoryKindTupleType)

	// Encoding

	EncodedParameterMemoryUsage = NewConstantMemoryUsage(MemoryKindEncodedParameter)
)

func UseMemory(gauge MemoryGauge, usage MemoryUsage) {
	if gauge == nil {
		return
	}

	err := gauge.MeterMemory(usage)
	if err != nil {
		panic(errors.MemoryError{Err: err})
	}
}

func NewConstantMemoryUsage(kind MemoryKind) MemoryUsage {
	return MemoryUsage{
		Kind:   kind,
		Amount: 1,
	}
}

func NewRawStringMemoryUsage(length int) MemoryUsage {
	return MemoryUsage{
		Kind: MemoryKindRawString,
		// + 1 to account for empty strings
		Amount: uint64(length) + 1,
	}
}

func NewParameterListMemoryUsage(parameterCount int) MemoryUsage {
	return MemoryUsage{
		Kind:   MemoryKindParameterList,
		Amount: uint64(parameterCount) + 1,
	}
}
