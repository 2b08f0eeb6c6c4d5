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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/onflow/circuitc/ast"
)

const flagDump = "dump"

func newInspectCommand(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the element tree of the input, with spans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := a.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			var roots []ast.Element
			if decoded.list != nil {
				roots = []ast.Element{decoded.list}
			} else {
				for _, parameter := range decoded.parameters {
					roots = append(roots, parameter)
				}
			}

			out := cmd.OutOrStdout()

			var count int
			for _, root := range roots {
				ast.Inspect(root, func(ast.Element) bool {
					count++
					return true
				})

				err := writeElementTree(out, root, 0)
				if err != nil {
					return err
				}
			}

			a.logger.Debug().Int("elements", count).Msg("inspected input")

			if dump {
				printer := pp.New()
				printer.SetColoringEnabled(a.config.Color)
				printer.SetExportedOnly(true)
				printer.SetOutput(out)
				for _, root := range roots {
					_, err := printer.Println(root)
					if err != nil {
						return err
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, flagDump, false, "also dump the decoded Go values")

	return cmd
}

func writeElementTree(w io.Writer, element ast.Element, depth int) (err error) {
	_, err = fmt.Fprintf(
		w,
		"%s%s %s\n",
		strings.Repeat("  ", depth),
		strings.TrimPrefix(element.ElementType().String(), "ElementType"),
		element.Span(),
	)
	if err != nil {
		return err
	}

	element.Walk(func(child ast.Element) {
		if err != nil || child == nil {
			return
		}
		err = writeElementTree(w, child, depth+1)
	})

	return err
}
