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

package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcienc"
	"github.com/opencord/omci-dissector-go/internal/pkg/xcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleEntry(t *testing.T) Entry {
	t.Helper()
	raw := omcienc.NewBuilder().Header(0x0102, omcidef.Get, false, true, omcidef.AniGClassID, 0x8001).
		MaskedAttributes(1, 3, omcidef.AniGClassID, 0x0040).Trailer().Bytes()
	frame, err := omcidec.DecodeFrame(context.Background(), raw, len(raw), omcidec.Options{})
	require.NoError(t, err)
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return Entry{Index: 3, Timestamp: &ts, Frame: frame, CrossCheck: &xcheck.Report{}}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
	_, err = NewWriter("xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleEntry(t)))
	require.NoError(t, w.Write(Entry{Index: 4, Error: "truncated-frame"}))
	require.NoError(t, w.Close())

	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "#3 ONU< Get response                   - ANI-G  (2024-05-01T12:00:00.000000Z)", lines[0])
	assert.Contains(t, out, "  [00] Transaction id: 258\n")
	assert.Contains(t, out, "      [11] Optical signal level: 2570\n")
	assert.Contains(t, out, "  [40] Trailer\n")
	assert.Contains(t, out, "  = reference decode agrees\n")
	assert.Contains(t, out, "#4 error: truncated-frame\n")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleEntry(t)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	frame := decoded["frame"].(map[string]interface{})
	assert.Equal(t, "ONU< Get response                   - ANI-G", frame["summary"])
	assert.Equal(t, "result-mask-attributes", frame["shape"])
	attrs := frame["attributes"].([]interface{})
	require.Len(t, attrs, 1)
	assert.Equal(t, "0a0a", attrs[0].(map[string]interface{})["raw"])
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatYAML, &buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleEntry(t)))
	require.NoError(t, w.Close())

	var decoded struct {
		Index int `yaml:"index"`
		Frame struct {
			Summary string `yaml:"summary"`
			Content string `yaml:"content"`
		} `yaml:"frame"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.Index)
	assert.Equal(t, "ONU< Get response                   - ANI-G", decoded.Frame.Summary)
	assert.Len(t, decoded.Frame.Content, 64)
}

func TestCBORWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatCBOR, &buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleEntry(t)))
	require.NoError(t, w.Write(Entry{Index: 4, Error: "truncated-frame"}))

	dec := cbor.NewDecoder(&buf)
	var first struct {
		Index int `cbor:"index"`
		Frame struct {
			Summary string `cbor:"summary"`
			Content []byte `cbor:"content"`
		} `cbor:"frame"`
	}
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, 3, first.Index)
	assert.Equal(t, "ONU< Get response                   - ANI-G", first.Frame.Summary)
	assert.Len(t, first.Frame.Content, 32)

	var second Entry
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "truncated-frame", second.Error)
}
