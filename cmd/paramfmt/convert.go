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
	"bytes"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/onflow/circuitc/encoding"
)

const (
	flagTo     = "to"
	flagPretty = "pretty"
)

var yamlDocumentSeparator = []byte("---\n")

func newConvertCommand(a *app) *cobra.Command {
	var to string
	var prettyJSON bool

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert the input to another format",
		Long: "Convert the input to another format.\n" +
			"A CBOR sequence is written as a CBOR sequence,\n" +
			"as JSON lines, or as a multi-document YAML stream.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := encoding.ParseFormat(to)
			if err != nil {
				return err
			}

			decoded, err := a.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if decoded.list != nil {
				data, err := encoding.EncodeList(target, decoded.list)
				if err != nil {
					return err
				}
				_, err = out.Write(a.formatOutput(target, data, prettyJSON))
				return err
			}

			if a.config.Stream && target == encoding.FormatCBOR {
				encoder := encoding.NewStreamEncoder(out)
				for _, parameter := range decoded.parameters {
					err := encoder.Encode(parameter)
					if err != nil {
						return err
					}
				}
				a.logger.Debug().Int("parameters", encoder.Count()).Msg("wrote CBOR sequence")
				return nil
			}

			for i, parameter := range decoded.parameters {
				data, err := encoding.Encode(target, parameter)
				if err != nil {
					return err
				}

				if i > 0 && target == encoding.FormatYAML {
					_, err = out.Write(yamlDocumentSeparator)
					if err != nil {
						return err
					}
				}

				_, err = out.Write(a.formatOutput(target, data, prettyJSON))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&to, flagTo, "t", encoding.FormatCBOR.String(), "format of the output: json, cbor, or yaml")
	flags.BoolVar(&prettyJSON, flagPretty, false, "indent JSON output")

	return cmd
}

// formatOutput prepares encoded data for writing.
// Text formats are terminated with a newline.
func (a *app) formatOutput(format encoding.Format, data []byte, prettyJSON bool) []byte {
	if format.IsBinary() {
		return data
	}

	if format == encoding.FormatJSON {
		if prettyJSON {
			data = pretty.Pretty(data)
		}
		if a.config.Color {
			data = pretty.Color(data, nil)
		}
	}

	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}

	return data
}
