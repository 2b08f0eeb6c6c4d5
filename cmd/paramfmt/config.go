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
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/onflow/circuitc/encoding"
	"github.com/onflow/circuitc/errors"
)

const envPrefix = "PARAMFMT"

const (
	flagConfig   = "config"
	flagFormat   = "format"
	flagList     = "list"
	flagStream   = "stream"
	flagColor    = "color"
	flagLogLevel = "log-level"
)

// config is the configuration shared by all commands.
// Values are taken from the flags, the environment (PARAMFMT_FORMAT etc.),
// and the optional config file, in that order of precedence.
type config struct {
	Format   encoding.Format
	List     bool
	Stream   bool
	Color    bool
	LogLevel zerolog.Level
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String(flagConfig, "", "path to a config file (yaml, json, or toml)")
	flags.StringP(flagFormat, "f", encoding.FormatJSON.String(), "format of the input: json, cbor, or yaml")
	flags.Bool(flagList, false, "the input is a parameter list")
	flags.Bool(flagStream, false, "the input is a CBOR sequence of parameters")
	flags.Bool(flagColor, false, "colorize the output")
	flags.String(flagLogLevel, zerolog.InfoLevel.String(), "log level: debug, info, warn, or error")
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, errors.NewUnexpectedErrorFromCause(err)
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.NewDefaultUserError("failed to read config file %s: %w", path, err)
		}
	}

	return v, nil
}

func loadConfig(v *viper.Viper) (config, error) {
	format, err := encoding.ParseFormat(v.GetString(flagFormat))
	if err != nil {
		return config{}, err
	}

	logLevel, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return config{}, errors.NewDefaultUserError("invalid log level: %w", err)
	}

	cfg := config{
		Format:   format,
		List:     v.GetBool(flagList),
		Stream:   v.GetBool(flagStream),
		Color:    v.GetBool(flagColor),
		LogLevel: logLevel,
	}

	if cfg.Stream && cfg.Format != encoding.FormatCBOR {
		return config{}, errors.NewDefaultUserError(
			"--%s requires --%s=%s",
			flagStream,
			flagFormat,
			encoding.FormatCBOR,
		)
	}

	if cfg.Stream && cfg.List {
		return config{}, errors.NewDefaultUserError(
			"--%s and --%s are mutually exclusive",
			flagStream,
			flagList,
		)
	}

	return cfg, nil
}

func (c config) newLogger(cmd *cobra.Command) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    !c.Color,
		TimeFormat: time.TimeOnly,
	}).
		Level(c.LogLevel).
		With().
		Timestamp().
		Str("format", c.Format.String()).
		Logger()
}

func (c config) String() string {
	return fmt.Sprintf(
		"format=%s list=%t stream=%t color=%t log-level=%s",
		c.Format,
		c.List,
		c.Stream,
		c.Color,
		c.LogLevel,
	)
}
