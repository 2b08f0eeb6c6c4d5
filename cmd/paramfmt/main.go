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

// paramfmt renders, converts, hashes, and inspects encoded function parameters.
//
// Usage:
//
//	paramfmt render [file]
//	paramfmt convert --to cbor [file] > out.cbor
//	paramfmt hash --format cbor --stream out.cbor
//	paramfmt inspect [file]
//
// Input is read from the given file, or from standard input.

package main

import (
	"os"
)

func main() {
	a := newApp()
	rootCmd := newRootCommand(a)
	if err := rootCmd.Execute(); err != nil {
		_, _ = rootCmd.ErrOrStderr().Write([]byte(a.formatError(rootCmd, err) + "\n"))
		os.Exit(1)
	}
}
