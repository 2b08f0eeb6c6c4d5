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
	"strings"
	"sync"

	"github.com/turbolent/prettier"

	"github.com/onflow/circuitc/common"
)

// ParameterList is the list of parameters of a signature.
// It must not be copied after first use.
type ParameterList struct {
	once                    sync.Once
	_parametersByIdentifier map[string]*Parameter
	Parameters              []*Parameter
	Extent                  Span
}

var _ Element = &ParameterList{}

func NewParameterList(
	gauge common.MemoryGauge,
	parameters []*Parameter,
	span Span,
) *ParameterList {
	common.UseMemory(gauge, common.NewParameterListMemoryUsage(len(parameters)))
	return &ParameterList{
		Parameters: parameters,
		Extent:     span,
	}
}

// ParametersByIdentifier returns the parameters indexed by their name.
// If multiple parameters have the same name, the first one is returned.
func (l *ParameterList) ParametersByIdentifier() map[string]*Parameter {
	l.once.Do(l.initParametersByIdentifier)
	return l._parametersByIdentifier
}

func (l *ParameterList) initParametersByIdentifier() {
	parametersByIdentifier := make(map[string]*Parameter, len(l.Parameters))
	for _, parameter := range l.Parameters {
		name := parameter.Identifier.Identifier
		if _, ok := parametersByIdentifier[name]; ok {
			continue
		}
		parametersByIdentifier[name] = parameter
	}
	l._parametersByIdentifier = parametersByIdentifier
}

func (*ParameterList) ElementType() ElementType {
	return ElementTypeParameterList
}

func (l *ParameterList) Span() Span {
	return l.Extent
}

func (l *ParameterList) SetSpan(span Span) {
	l.Extent = span
}

func (l *ParameterList) Walk(walkChild func(Element)) {
	for _, parameter := range l.Parameters {
		walkChild(parameter)
	}
}

func (l *ParameterList) Equal(other *ParameterList) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Extent == other.Extent &&
		common.SliceEquals(l.Parameters, other.Parameters)
}

func (l *ParameterList) String() string {
	var builder strings.Builder
	builder.WriteByte('(')
	for i, parameter := range l.Parameters {
		if i > 0 {
			builder.WriteString(", ")
		}
		// writing to a strings.Builder never fails
		_, _ = parameter.WriteTo(&builder)
	}
	builder.WriteByte(')')
	return builder.String()
}

var parameterListEmptyDoc prettier.Doc = prettier.Text("()")

var parameterSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (l *ParameterList) Doc() prettier.Doc {

	if len(l.Parameters) == 0 {
		return parameterListEmptyDoc
	}

	parameterDocs := make([]prettier.Doc, 0, len(l.Parameters))

	for _, parameter := range l.Parameters {
		parameterDocs = append(parameterDocs, parameter.Doc())
	}

	return prettier.WrapParentheses(
		prettier.Join(
			parameterSeparatorDoc,
			parameterDocs...,
		),
		prettier.SoftLine{},
	)
}
