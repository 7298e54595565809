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

// Package omcienc builds synthetic baseline OMCI frames
package omcienc

import (
	"encoding/binary"

	"github.com/boguslaw-wojcik/crc32a"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
)

// baseline frame geometry
const (
	contentOffset = 8
	contentLength = 32
	trailerOffset = contentOffset + contentLength
	frameLength   = trailerOffset + 8
	crcOffset     = trailerOffset + 4
	// CPCS-SDU length of a baseline message
	baselineSduLength = 0x0028
)

// Builder assembles a 40 byte frame, or 48 bytes with the trailer
type Builder struct {
	buf     [frameLength]byte
	trailer bool
}

// NewBuilder returns a builder for a baseline message set frame
func NewBuilder() *Builder {
	b := &Builder{}
	b.buf[3] = omcidef.BaselineDeviceIdent
	return b
}

// Header sets transaction id, message type byte, entity class and instance
func (b *Builder) Header(tid uint16, mt omcidef.MessageType, ar, ak bool, classID, instance uint16) *Builder {
	binary.BigEndian.PutUint16(b.buf[0:2], tid)
	mtByte := uint8(mt) & omcidef.MessageTypeMask
	if ar {
		mtByte |= 0x40
	}
	if ak {
		mtByte |= 0x20
	}
	b.buf[2] = mtByte
	binary.BigEndian.PutUint16(b.buf[4:6], classID)
	binary.BigEndian.PutUint16(b.buf[6:8], instance)
	return b
}

// MessageTypeByte overrides the raw message type byte, e.g. to set reserved codes or the DB bit
func (b *Builder) MessageTypeByte(v uint8) *Builder {
	b.buf[2] = v
	return b
}

// DeviceIdent overrides the device identifier byte
func (b *Builder) DeviceIdent(v uint8) *Builder {
	b.buf[3] = v
	return b
}

// Content copies data into the content region at offset; bytes past the region are dropped
func (b *Builder) Content(offset int, data ...byte) *Builder {
	if offset < 0 || offset >= contentLength {
		return b
	}
	copy(b.buf[contentOffset+offset:trailerOffset], data)
	return b
}

// Uint16 writes a big endian value into the content region
func (b *Builder) Uint16(offset int, v uint16) *Builder {
	var raw [2]byte
	binary.BigEndian.PutUint16(raw[:], v)
	return b.Content(offset, raw[:]...)
}

// Mask writes an attribute mask into the content region
func (b *Builder) Mask(offset int, mask uint16) *Builder {
	return b.Uint16(offset, mask)
}

// MaskedAttributes writes mask at maskOffset and fills every attribute it selects, starting at
// attrOffset, with bytes equal to the attribute index. Attributes are laid out in schema order.
func (b *Builder) MaskedAttributes(maskOffset, attrOffset int, classID uint16, mask uint16) *Builder {
	b.Mask(maskOffset, mask)
	offset := attrOffset
	for i, def := range omcidef.LookupClass(classID).Attributes {
		if i >= 16 {
			break
		}
		if mask&(0x8000>>uint(i)) == 0 {
			continue
		}
		b.fill(offset, int(def.Length), byte(i+1))
		offset += int(def.Length)
	}
	return b
}

// CreateAttributes fills the set-by-create attributes of the class from offset 0
func (b *Builder) CreateAttributes(classID uint16) *Builder {
	offset := 0
	for i, def := range omcidef.LookupClass(classID).Attributes {
		if !def.SettableOnCreate {
			continue
		}
		b.fill(offset, int(def.Length), byte(i+1))
		offset += int(def.Length)
	}
	return b
}

func (b *Builder) fill(offset, length int, v byte) {
	for k := 0; k < length; k++ {
		b.Content(offset+k, v)
	}
}

// Trailer appends the 8 byte trailer with the baseline SDU length and the CRC-32 of the
// preceding bytes
func (b *Builder) Trailer() *Builder {
	b.trailer = true
	return b
}

// Bytes returns the frame, 40 bytes without and 48 bytes with trailer
func (b *Builder) Bytes() []byte {
	if !b.trailer {
		out := make([]byte, trailerOffset)
		copy(out, b.buf[:trailerOffset])
		return out
	}
	out := make([]byte, frameLength)
	copy(out, b.buf[:])
	binary.BigEndian.PutUint16(out[trailerOffset:], 0)
	binary.BigEndian.PutUint16(out[trailerOffset+2:], baselineSduLength)
	binary.BigEndian.PutUint32(out[crcOffset:], uint32(crc32a.Checksum(out[:crcOffset])))
	return out
}

// Padded returns Bytes zero padded to n bytes, as the frame appears in a minimum size Ethernet payload
func (b *Builder) Padded(n int) []byte {
	out := b.Bytes()
	if n > len(out) {
		out = append(out, make([]byte, n-len(out))...)
	}
	return out
}
