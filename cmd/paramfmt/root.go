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
	goErrors "errors"
	"io"
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/onflow/circuitc/ast"
	"github.com/onflow/circuitc/encoding"
	"github.com/onflow/circuitc/errors"
)

// app is the state shared by the commands of one invocation.
type app struct {
	config config
	// loaded is true once the configuration was loaded successfully
	loaded bool
	logger zerolog.Logger
}

func newApp() *app {
	return &app{
		logger: zerolog.Nop(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paramfmt",
		Short:         "Render, convert, hash, and inspect encoded function parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}

			a.config, err = loadConfig(v)
			if err != nil {
				return err
			}
			a.loaded = true

			a.logger = a.config.newLogger(cmd)
			a.logger.Debug().
				Str("command", cmd.Name()).
				Stringer("config", a.config).
				Msg("loaded configuration")

			return nil
		},
	}

	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRenderCommand(a),
		newConvertCommand(a),
		newHashCommand(a),
		newInspectCommand(a),
	)

	return rootCmd
}

// colorsEnabled returns the configured color setting.
// If the configuration could not be loaded, only the flag is considered.
func (a *app) colorsEnabled(cmd *cobra.Command) bool {
	if a.loaded {
		return a.config.Color
	}
	enabled, err := cmd.PersistentFlags().GetBool(flagColor)
	return err == nil && enabled
}

// formatError renders an error returned by a command for the terminal.
func (a *app) formatError(cmd *cobra.Command, err error) string {
	colors := aurora.New(aurora.WithColors(a.colorsEnabled(cmd)))
	return colors.Red(err.Error()).Bold().String()
}

// input is the decoded input of a command:
// either a parameter list, or one or more parameters.
type input struct {
	list       *ast.ParameterList
	parameters []*ast.Parameter
}

func (i input) elements() []*ast.Parameter {
	if i.list != nil {
		return i.list.Parameters
	}
	return i.parameters
}

// readInput reads the file named by the only argument, if any,
// or else standard input.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, errors.NewDefaultUserError("failed to read input: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to read input: %w", err)
	}
	return data, nil
}

func (a *app) decodeInput(cmd *cobra.Command, args []string) (input, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return input{}, err
	}

	a.logger.Debug().Int("bytes", len(data)).Msg("read input")

	var result input

	switch {
	case a.config.List:
		result.list, err = encoding.DecodeList(nil, a.config.Format, data)

	case a.config.Stream:
		decoder := encoding.NewStreamDecoder(nil, bytes.NewReader(data))
		result.parameters, err = decoder.DecodeAll()

	default:
		var parameter *ast.Parameter
		parameter, err = encoding.Decode(nil, a.config.Format, data)
		if err == nil {
			result.parameters = []*ast.Parameter{parameter}
		}
	}

	if err != nil {
		a.logDecodeError(err)
		return input{}, err
	}

	a.logger.Debug().
		Int("parameters", len(result.elements())).
		Msg("decoded input")

	return result, nil
}

func (a *app) logDecodeError(err error) {
	var decodeError errors.DecodeError
	if !goErrors.As(err, &decodeError) {
		return
	}

	event := a.logger.Error()
	if decodeError.Path != "" {
		event = event.Str("path", decodeError.Path)
	}
	if suggestion := decodeError.SecondaryError(); suggestion != "" {
		event = event.Str("suggestion", suggestion)
	}
	event.Err(decodeError.Err).Msg("failed to decode input")
}
