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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/circuitc/ast"
	"github.com/onflow/circuitc/encoding"
	"github.com/onflow/circuitc/errors"
	. "github.com/onflow/circuitc/test_utils/common_utils"
)

func execute(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand(newApp())

	var stdout, stderr bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func newResultParameter() *ast.Parameter {
	return ast.NewParameter(
		nil,
		ast.NewIdentifier(nil, "result", ast.Position{Offset: 11, Line: 1, Column: 11}, TestFile),
		false,
		true,
		true,
		ast.NewPrimitiveType(nil, ast.PrimitiveKindBool, NewTestSpan(19, 22)),
		NewTestSpan(0, 22),
	)
}

func newCountParameter() *ast.Parameter {
	return ast.NewParameter(
		nil,
		ast.NewIdentifier(nil, "count", ast.Position{Offset: 32, Line: 1, Column: 32}, TestFile),
		true,
		false,
		false,
		ast.NewPrimitiveType(nil, ast.PrimitiveKindU32, NewTestSpan(39, 41)),
		NewTestSpan(24, 41),
	)
}

func encodeTestParameter(t *testing.T, format encoding.Format, parameter *ast.Parameter) []byte {
	data, err := encoding.Encode(format, parameter)
	require.NoError(t, err)
	return data
}

func TestRender(t *testing.T) {

	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t,
			encodeTestParameter(t, encoding.FormatJSON, newResultParameter()),
			"render",
		)
		require.NoError(t, err)
		assert.Equal(t, "public mut result: bool\n", stdout)
	})

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "parameter.yaml")
		err := os.WriteFile(path, encodeTestParameter(t, encoding.FormatYAML, newCountParameter()), 0o644)
		require.NoError(t, err)

		stdout, _, err := execute(t, nil, "render", "--format", "yaml", path)
		require.NoError(t, err)
		assert.Equal(t, "private const count: u32\n", stdout)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		list := ast.NewParameterList(
			nil,
			[]*ast.Parameter{newResultParameter(), newCountParameter()},
			NewTestSpan(0, 42),
		)
		data, err := encoding.EncodeList(encoding.FormatCBOR, list)
		require.NoError(t, err)

		stdout, _, err := execute(t, data, "render", "--format", "cbor", "--list")
		require.NoError(t, err)
		assert.Equal(t, "(public mut result: bool, private const count: u32)\n", stdout)
	})

	t.Run("stream", func(t *testing.T) {
		t.Parallel()

		var buffer bytes.Buffer
		encoder := encoding.NewStreamEncoder(&buffer)
		require.NoError(t, encoder.Encode(newResultParameter()))
		require.NoError(t, encoder.Encode(newCountParameter()))

		stdout, _, err := execute(t, buffer.Bytes(), "render", "--format", "cbor", "--stream")
		require.NoError(t, err)
		assert.Equal(t,
			"public mut result: bool\n"+
				"private const count: u32\n",
			stdout,
		)
	})

	t.Run("decode error", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := execute(t,
			[]byte(`{"Identifier": {"Identifier": "x"}, "Type": {"Kind": "PrimitiveType", "Primitive": "bol"}}`),
			"render",
		)
		decodeError := RequireDecodeError(t, err)
		assert.Equal(t, "Type.Primitive", decodeError.Path)

		assert.Contains(t, stderr, "failed to decode input")
		assert.Contains(t, stderr, "Type.Primitive")
		assert.Contains(t, stderr, "did you mean")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, nil, "render", "--stream")
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))

		_, _, err = execute(t, nil, "render", "--format", "xml")
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}

func TestConvert(t *testing.T) {

	t.Parallel()

	t.Run("json to cbor", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t,
			encodeTestParameter(t, encoding.FormatJSON, newResultParameter()),
			"convert", "--to", "cbor",
		)
		require.NoError(t, err)

		assert.Equal(t,
			string(encodeTestParameter(t, encoding.FormatCBOR, newResultParameter())),
			stdout,
		)
	})

	t.Run("cbor to pretty json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t,
			encodeTestParameter(t, encoding.FormatCBOR, newCountParameter()),
			"convert", "--format", "cbor", "--to", "json", "--pretty",
		)
		require.NoError(t, err)

		assert.Contains(t, stdout, "\n  \"IsConst\": true,\n")

		decoded, err := encoding.Decode(nil, encoding.FormatJSON, []byte(stdout))
		require.NoError(t, err)
		assert.True(t, newCountParameter().Equal(decoded))
	})

	t.Run("stream to json lines", func(t *testing.T) {
		t.Parallel()

		var buffer bytes.Buffer
		encoder := encoding.NewStreamEncoder(&buffer)
		require.NoError(t, encoder.Encode(newResultParameter()))
		require.NoError(t, encoder.Encode(newCountParameter()))

		stdout, _, err := execute(t, buffer.Bytes(),
			"convert", "--format", "cbor", "--stream", "--to", "json",
		)
		require.NoError(t, err)

		lines := bytes.Split(bytes.TrimSuffix([]byte(stdout), []byte("\n")), []byte("\n"))
		require.Len(t, lines, 2)

		first, err := encoding.Decode(nil, encoding.FormatJSON, lines[0])
		require.NoError(t, err)
		assert.True(t, newResultParameter().Equal(first))
	})

	t.Run("stream to stream", func(t *testing.T) {
		t.Parallel()

		var buffer bytes.Buffer
		encoder := encoding.NewStreamEncoder(&buffer)
		require.NoError(t, encoder.Encode(newResultParameter()))
		require.NoError(t, encoder.Encode(newCountParameter()))

		stdout, _, err := execute(t, buffer.Bytes(),
			"convert", "--format", "cbor", "--stream", "--to", "cbor",
		)
		require.NoError(t, err)
		assert.Equal(t, buffer.String(), stdout)
	})
}

func TestHash(t *testing.T) {

	t.Parallel()

	parameter := newResultParameter()

	stdout, _, err := execute(t,
		encodeTestParameter(t, encoding.FormatJSON, parameter),
		"hash",
	)
	require.NoError(t, err)

	assert.Equal(t,
		fmt.Sprintf("%016x  public mut result: bool\n", parameter.Hash()),
		stdout,
	)
}

func TestInspect(t *testing.T) {

	t.Parallel()

	stdout, _, err := execute(t,
		encodeTestParameter(t, encoding.FormatJSON, newResultParameter()),
		"inspect",
	)
	require.NoError(t, err)

	assert.Equal(t,
		"Parameter 1:1:0-1:22\n"+
			"  Identifier 1:1:11-1:16\n"+
			"  PrimitiveType 1:1:19-1:22\n",
		stdout,
	)
}

func TestConfiguration(t *testing.T) {

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PARAMFMT_FORMAT", "yaml")

		stdout, _, err := execute(t,
			encodeTestParameter(t, encoding.FormatYAML, newResultParameter()),
			"render",
		)
		require.NoError(t, err)
		assert.Equal(t, "public mut result: bool\n", stdout)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "paramfmt.yaml")
		err := os.WriteFile(path, []byte("format: cbor\nlog-level: debug\n"), 0o644)
		require.NoError(t, err)

		stdout, stderr, err := execute(t,
			encodeTestParameter(t, encoding.FormatCBOR, newResultParameter()),
			"render", "--config", path,
		)
		require.NoError(t, err)
		assert.Equal(t, "public mut result: bool\n", stdout)
		assert.Contains(t, stderr, "loaded configuration")
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("PARAMFMT_FORMAT", "yaml")

		stdout, _, err := execute(t,
			encodeTestParameter(t, encoding.FormatJSON, newResultParameter()),
			"render", "--format", "json",
		)
		require.NoError(t, err)
		assert.Equal(t, "public mut result: bool\n", stdout)
	})
}

func TestFormatError(t *testing.T) {

	run := func(t *testing.T, args ...string) string {
		a := newApp()
		cmd := newRootCommand(a)

		var stdout, stderr bytes.Buffer
		cmd.SetIn(bytes.NewReader([]byte("{")))
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs(args)

		err := cmd.Execute()
		require.Error(t, err)

		return a.formatError(cmd, err)
	}

	const escape = "\x1b["

	t.Run("plain", func(t *testing.T) {
		message := run(t, "render")
		assert.NotContains(t, message, escape)
		assert.Contains(t, message, "json: failed to decode")
	})

	t.Run("flag", func(t *testing.T) {
		assert.Contains(t, run(t, "render", "--color"), escape)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PARAMFMT_COLOR", "true")

		assert.Contains(t, run(t, "render"), escape)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "paramfmt.yaml")
		err := os.WriteFile(path, []byte("color: true\n"), 0o644)
		require.NoError(t, err)

		assert.Contains(t, run(t, "render", "--config", path), escape)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		message := run(t, "render", "--color", "--format", "xml")
		assert.Contains(t, message, escape)
		assert.Contains(t, message, "unknown format")
	})
}
