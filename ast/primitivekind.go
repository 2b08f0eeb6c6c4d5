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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// PrimitiveKind is the kind of a built-in type
type PrimitiveKind uint8

const (
	PrimitiveKindUnknown PrimitiveKind = iota
	PrimitiveKindAddress
	PrimitiveKindBool
	PrimitiveKindField
	PrimitiveKindGroup
	PrimitiveKindScalar
	PrimitiveKindSignature
	PrimitiveKindString
	PrimitiveKindI8
	PrimitiveKindI16
	PrimitiveKindI32
	PrimitiveKindI64
	PrimitiveKindI128
	PrimitiveKindU8
	PrimitiveKindU16
	PrimitiveKindU32
	PrimitiveKindU64
	PrimitiveKindU128
)

var primitiveKindKeywords = [...]string{
	PrimitiveKindUnknown:   "",
	PrimitiveKindAddress:   "address",
	PrimitiveKindBool:      "bool",
	PrimitiveKindField:     "field",
	PrimitiveKindGroup:     "group",
	PrimitiveKindScalar:    "scalar",
	PrimitiveKindSignature: "signature",
	PrimitiveKindString:    "string",
	PrimitiveKindI8:        "i8",
	PrimitiveKindI16:       "i16",
	PrimitiveKindI32:       "i32",
	PrimitiveKindI64:       "i64",
	PrimitiveKindI128:      "i128",
	PrimitiveKindU8:        "u8",
	PrimitiveKindU16:       "u16",
	PrimitiveKindU32:       "u32",
	PrimitiveKindU64:       "u64",
	PrimitiveKindU128:      "u128",
}

var primitiveKindsByKeyword = func() map[string]PrimitiveKind {
	kinds := make(map[string]PrimitiveKind, len(primitiveKindKeywords))
	for kind, keyword := range primitiveKindKeywords {
		if keyword == "" {
			continue
		}
		kinds[keyword] = PrimitiveKind(kind)
	}
	return kinds
}()

// PrimitiveKinds returns all known primitive kinds, in declaration order.
func PrimitiveKinds() []PrimitiveKind {
	kinds := make([]PrimitiveKind, 0, len(primitiveKindKeywords)-1)
	for kind := PrimitiveKindAddress; int(kind) < len(primitiveKindKeywords); kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Keyword returns the source keyword of the kind,
// or the empty string for an unknown kind.
func (k PrimitiveKind) Keyword() string {
	if int(k) >= len(primitiveKindKeywords) {
		return ""
	}
	return primitiveKindKeywords[k]
}

func (k PrimitiveKind) String() string {
	return k.Keyword()
}

func PrimitiveKindFromKeyword(keyword string) (PrimitiveKind, bool) {
	kind, ok := primitiveKindsByKeyword[keyword]
	return kind, ok
}

// closestName returns the candidate with the smallest edit distance to the given name,
// or the empty string if every candidate would require a complete replacement.
func closestName(name string, candidates []string) (closest string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	for _, candidate := range sorted {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}

func primitiveKeywordSuggestion(keyword string) string {
	keywords := make([]string, 0, len(primitiveKindsByKeyword))
	for candidate := range primitiveKindsByKeyword { //nolint:maprange
		keywords = append(keywords, candidate)
	}
	return closestName(keyword, keywords)
}
