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

// HasSpan is implemented by every AST node kind.
// It allows passes which relocate nodes, e.g. desugaring,
// to operate on any node without knowing its kind.
type HasSpan interface {
	Span() Span
	// SetSpan replaces the span. Spans are not merged.
	SetSpan(span Span)
}

type Element interface {
	HasSpan
	ElementType() ElementType
	Walk(walkChild func(Element))
}

// Inspect traverses an AST in depth-first order:
// It starts by calling f(element); element must not be nil.
// If f returns true, Inspect invokes f recursively for each of the non-nil children of element.
func Inspect(element Element, f func(Element) bool) {
	if !f(element) {
		return
	}
	element.Walk(func(child Element) {
		if child == nil {
			return
		}
		Inspect(child, f)
	})
}

// Respan replaces the span of the given element and of all its descendants
// with the span returned by rewrite.
func Respan(element Element, rewrite func(Span) Span) {
	Inspect(element, func(element Element) bool {
		element.SetSpan(rewrite(element.Span()))
		return true
	})
}

// ShiftSpans returns a rewrite function for Respan
// which moves spans by the given number of bytes.
func ShiftSpans(offset int) func(Span) Span {
	return func(span Span) Span {
		return span.ShiftedBy(offset)
	}
}

// ReplaceFile returns a rewrite function for Respan
// which attributes spans to the given file.
func ReplaceFile(file FileID) func(Span) Span {
	return func(span Span) Span {
		span.File = file
		return span
	}
}
