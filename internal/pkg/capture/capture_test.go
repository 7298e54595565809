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

package capture

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	data, err := ParseHex("0x00 01:4f-0a")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x4f, 0x0a}, data)

	_, err = ParseHex("   ")
	assert.Error(t, err)
	_, err = ParseHex("0a0")
	assert.Error(t, err)
	_, err = ParseHex("zz")
	assert.Error(t, err)
}

func TestHexLineSource(t *testing.T) {
	input := strings.Join([]string{
		"# captured frames",
		"",
		"80 01 49 0a 01 00 00 00",
		"not hex",
		"8002290a01000000",
	}, "\n")
	src := NewHexLineSource("test", strings.NewReader(input))
	ctx := context.Background()

	rec, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Index)
	assert.Equal(t, 8, rec.FrameLen)
	assert.Equal(t, byte(0x49), rec.Data[2])

	rec, err = src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Index)
	assert.Equal(t, byte(0x29), rec.Data[2])

	_, err = src.Next(ctx)
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, src.Close())
}

func TestHexLineSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewHexLineSource("test", strings.NewReader("00\n"))
	_, err := src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func ethernetFrame(etherType uint16, payload []byte) []byte {
	frame := []byte{
		0x02, 0, 0, 0, 0, 1, // dst
		0x02, 0, 0, 0, 0, 2, // src
		byte(etherType >> 8), byte(etherType),
	}
	return append(frame, payload...)
}

func writePcap(t *testing.T, linkType layers.LinkType, packets ...[]byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := pcapgo.NewWriter(&buf)
	require.NoError(t, w.WriteFileHeader(65536, linkType))
	ts := time.Unix(1700000000, 0)
	for i, p := range packets {
		ci := gopacket.CaptureInfo{Timestamp: ts.Add(time.Duration(i) * time.Second), CaptureLength: len(p), Length: len(p)}
		require.NoError(t, w.WritePacket(ci, p))
	}
	return &buf
}

func TestPcapSourceEthernet(t *testing.T) {
	omci := make([]byte, 48)
	omci[0], omci[1], omci[2] = 0x80, 0x01, 0x4d
	ipv4 := make([]byte, 46)
	buf := writePcap(t, layers.LinkTypeEthernet,
		ethernetFrame(0x0800, ipv4),
		ethernetFrame(0x88b5, omci),
	)
	src, err := NewPcapSource("mem", buf, 0)
	require.NoError(t, err)
	assert.Equal(t, layers.LinkTypeEthernet, src.LinkType())

	rec, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Index)
	assert.Equal(t, 48, rec.FrameLen)
	assert.Equal(t, omci, rec.Data)
	assert.Equal(t, int64(1700000001), rec.Timestamp.Unix())

	_, err = src.Next(context.Background())
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, src.Close())
}

func TestPcapSourceRawOmci(t *testing.T) {
	omci := make([]byte, 44)
	buf := writePcap(t, LinkTypeOmci, omci)
	src, err := NewPcapSource("mem", buf, 0)
	require.NoError(t, err)
	rec, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 44, rec.FrameLen)
}

func TestPcapSourceRejectsLinkType(t *testing.T) {
	buf := writePcap(t, layers.LinkTypeRaw, make([]byte, 20))
	_, err := NewPcapSource("mem", buf, 0)
	assert.ErrorIs(t, err, ErrUnsupportedLinkType)

	_, err = NewPcapSource("empty", bytes.NewReader(nil), 0)
	assert.Error(t, err)
}
