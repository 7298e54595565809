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

package omcienc

import (
	"encoding/binary"
	"testing"

	"github.com/boguslaw-wojcik/crc32a"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderHeader(t *testing.T) {
	buf := NewBuilder().Header(0x1234, omcidef.Get, true, false, omcidef.OnuGClassID, 1).Bytes()
	require.Len(t, buf, 40)
	assert.Equal(t, []byte{0x12, 0x34, 0x49, 0x0a, 0x01, 0x00, 0x00, 0x01}, buf[:8])

	buf = NewBuilder().Header(1, omcidef.Get, false, true, omcidef.OnuGClassID, 0).DeviceIdent(0x0b).Bytes()
	assert.Equal(t, byte(0x29), buf[2])
	assert.Equal(t, byte(0x0b), buf[3])
}

func TestBuilderTrailer(t *testing.T) {
	buf := NewBuilder().Header(1, omcidef.MibReset, true, false, omcidef.OnuDataClassID, 0).Trailer().Bytes()
	require.Len(t, buf, 48)
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(buf[40:42]))
	assert.Equal(t, uint16(0x28), binary.BigEndian.Uint16(buf[42:44]))
	assert.Equal(t, uint32(crc32a.Checksum(buf[:44])), binary.BigEndian.Uint32(buf[44:48]))
}

func TestBuilderMaskedAttributes(t *testing.T) {
	// ANI-G attributes 1 (1 byte), 2 (2 bytes) and 10 (2 bytes)
	buf := NewBuilder().Header(1, omcidef.Set, true, false, omcidef.AniGClassID, 0x8001).
		MaskedAttributes(0, 2, omcidef.AniGClassID, 0xc040).Bytes()
	content := buf[8:40]
	assert.Equal(t, []byte{0xc0, 0x40}, content[0:2])
	assert.Equal(t, []byte{1, 2, 2, 10, 10, 0}, content[2:8])
}

func TestBuilderContentClamped(t *testing.T) {
	buf := NewBuilder().Content(30, 1, 2, 3, 4).Content(40, 9).Bytes()
	assert.Equal(t, []byte{1, 2}, buf[38:40])
	assert.Len(t, buf, 40)
}

func TestBuilderPadded(t *testing.T) {
	assert.Len(t, NewBuilder().Padded(46), 46)
	assert.Len(t, NewBuilder().Trailer().Padded(54), 54)
	assert.Len(t, NewBuilder().Trailer().Padded(10), 48)
}
