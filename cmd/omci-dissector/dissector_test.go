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
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencord/omci-dissector-go/internal/pkg/capture"
	"github.com/opencord/omci-dissector-go/internal/pkg/config"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcienc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getResponse() []byte {
	return omcienc.NewBuilder().Header(0x0102, omcidef.Get, false, true, omcidef.AniGClassID, 0x8001).
		MaskedAttributes(1, 3, omcidef.AniGClassID, 0x0040).Trailer().Bytes()
}

func TestDissectorHexFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "frames.txt")
	lines := "# capture\n" + hex.EncodeToString(getResponse()) + "\n\n0102\n"
	require.NoError(t, os.WriteFile(input, []byte(lines), 0o600))

	cf := config.NewDissectorFlags()
	cf.InputPath = input
	cf.Stats = true
	cf.StorePath = filepath.Join(dir, "frames.db")

	var out bytes.Buffer
	ctx := context.Background()
	dh, err := newDissector(ctx, cf, &out)
	require.NoError(t, err)
	src, err := dh.openSource(ctx)
	require.NoError(t, err)
	require.NoError(t, dh.run(ctx, src))
	require.NoError(t, src.Close())

	stored, err := dh.store.QueryRun(ctx, dh.store.RunID())
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	dh.stop(ctx)
	text := out.String()
	assert.Contains(t, text, "#1 ONU< Get response                   - ANI-G")
	assert.Contains(t, text, "#2 error: ")
	assert.Contains(t, text, "       1  ONU< Get response                   - ANI-G")
	assert.Equal(t, 1, dh.decoded)
}

func TestDissectorHexStringJSON(t *testing.T) {
	cf := config.NewDissectorFlags()
	cf.HexString = hex.EncodeToString(getResponse())
	cf.OutputFormat = "json"
	cf.CrossCheck = true

	var out bytes.Buffer
	ctx := context.Background()
	dh, err := newDissector(ctx, cf, &out)
	require.NoError(t, err)
	src, err := dh.openSource(ctx)
	require.NoError(t, err)
	require.NoError(t, dh.run(ctx, src))
	dh.stop(ctx)

	assert.Contains(t, out.String(), `"summary"`)
	assert.Contains(t, out.String(), `"cross_check"`)
}

func TestDissectorRejectsBadSettings(t *testing.T) {
	cf := config.NewDissectorFlags()
	cf.Variant = "epon"
	_, err := newDissector(context.Background(), cf, &bytes.Buffer{})
	assert.Error(t, err)

	cf = config.NewDissectorFlags()
	cf.OutputFormat = "xml"
	_, err = newDissector(context.Background(), cf, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDissectorRotatedOutput(t *testing.T) {
	cf := config.NewDissectorFlags()
	cf.OutputPath = filepath.Join(t.TempDir(), "decode.log")

	ctx := context.Background()
	dh, err := newDissector(ctx, cf, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, dh.processRecord(ctx, capture.Record{Index: 1, Data: getResponse(), FrameLen: 48}))
	dh.stop(ctx)

	content, err := os.ReadFile(cf.OutputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "#1 ONU< Get response"))
}

func TestPromptCommands(t *testing.T) {
	cf := config.NewDissectorFlags()
	var out bytes.Buffer
	ctx := context.Background()
	dh, err := newDissector(ctx, cf, &out)
	require.NoError(t, err)
	p := newPrompt(dh, &out)

	quit, err := p.handleLine(ctx, "variant xgpon")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, omcidec.VariantXGPON, dh.opts.Variant)

	_, err = p.handleLine(ctx, "xcheck on")
	require.NoError(t, err)
	assert.True(t, dh.crossCheck)

	_, err = p.handleLine(ctx, "stats")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "stats are disabled")

	_, err = p.handleLine(ctx, "mib")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "the MIB view is disabled")

	_, err = p.handleLine(ctx, "zz")
	require.NoError(t, err)
	assert.Equal(t, 0, p.index)

	_, err = p.handleLine(ctx, hex.EncodeToString(getResponse()))
	require.NoError(t, err)
	assert.Equal(t, 1, p.index)
	assert.Contains(t, out.String(), "ONU< Get response")
	assert.Contains(t, out.String(), "\n  = ")

	quit, err = p.handleLine(ctx, "quit")
	require.NoError(t, err)
	assert.True(t, quit)
	dh.stop(ctx)
}

func TestDissectorMibView(t *testing.T) {
	cf := config.NewDissectorFlags()
	cf.MibView = true
	cf.InstanceID = "onu-1"

	var out bytes.Buffer
	ctx := context.Background()
	dh, err := newDissector(ctx, cf, &out)
	require.NoError(t, err)
	p := newPrompt(dh, &out)

	upload := omcienc.NewBuilder().Header(2, omcidef.MibUpload, false, true, omcidef.OnuDataClassID, 0).Uint16(0, 1).Bytes()
	next := omcienc.NewBuilder().Header(3, omcidef.MibUploadNext, false, true, omcidef.OnuDataClassID, 0).
		Uint16(0, omcidef.TContClassID).Uint16(2, 0x8001).MaskedAttributes(4, 6, omcidef.TContClassID, 0x8000).Bytes()
	for _, raw := range [][]byte{upload, next} {
		_, err = p.handleLine(ctx, hex.EncodeToString(raw))
		require.NoError(t, err)
	}
	_, err = p.handleLine(ctx, "mib")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "MIB of onu-1: upload completed, 1 records\n")
	assert.Contains(t, out.String(), "262 T-CONT, instance 0x8001\n    Alloc-ID: 0101\n")
	dh.stop(ctx)
}
