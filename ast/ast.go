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

// Package ast contains the AST nodes of function signatures.
// All AST nodes implement the Element interface,
// so have span information, can be re-spanned,
// and can be traversed using Walk and Inspect.
// Nodes also implement the json.Marshaler, cbor.Marshaler,
// and yaml.InterfaceMarshaler interfaces,
// so can be serialized to a standardized/stable format.
package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

const prettierMaxLineWidth = 80
const prettierIndent = "    "

type HasDoc interface {
	Doc() prettier.Doc
}

// Prettier lays out the document of the given element.
func Prettier(element HasDoc) string {
	var builder strings.Builder
	prettier.Prettier(&builder, element.Doc(), prettierMaxLineWidth, prettierIndent)
	return builder.String()
}
