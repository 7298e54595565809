/*
 * Copyright 2024-present Open Networking Foundation (ONF) and the ONF Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	hf, err := parseFlags([]string{"-i", "in.txt", "-n", "-o", "out.txt"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "in.txt", hf.inputPath)
	assert.Equal(t, "out.txt", hf.outputPath)
	assert.True(t, hf.singlePacket)

	_, err = parseFlags(nil, &stderr)
	assert.Error(t, err)
	_, err = parseFlags([]string{"-s", "00 01", "-i", "in.txt"}, &stderr)
	assert.Error(t, err)
}

func TestRunToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("aa bb\ncc dd\n"), 0o600))

	require.NoError(t, run(context.Background(), &hexdumpFlags{inputPath: in, outputPath: out}))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "000000 aa bb \n000000 cc dd \n", string(content))

	require.NoError(t, run(context.Background(), &hexdumpFlags{inputPath: in, outputPath: out, singlePacket: true}))
	content, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "000000 aa bb cc dd \n", string(content))
}

func TestConvertHexString(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, convert(context.Background(), &hexdumpFlags{hexString: "01 02"}, &out))
	assert.Equal(t, "000000 01 02 \n", out.String())
}
