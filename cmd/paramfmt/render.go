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

	"github.com/logrusorgru/aurora/v4"
	"github.com/spf13/cobra"

	"github.com/onflow/circuitc/ast"
)

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print the canonical form of the parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := a.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			colors := aurora.New(aurora.WithColors(a.config.Color))

			var lines []string
			if decoded.list != nil {
				lines = []string{ast.Prettier(decoded.list)}
			} else {
				for _, parameter := range decoded.parameters {
					lines = append(lines, parameter.String())
				}
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				_, err := fmt.Fprintln(out, colors.BrightYellow(line))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
