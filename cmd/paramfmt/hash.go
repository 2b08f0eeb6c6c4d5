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

	"github.com/spf13/cobra"
)

func newHashCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the hash of each parameter",
		Long: "Print the hash of each parameter, followed by its canonical form.\n" +
			"Equal parameters, including their source spans, have equal hashes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := a.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, parameter := range decoded.elements() {
				_, err := fmt.Fprintf(out, "%016x  %s\n", parameter.Hash(), parameter)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
