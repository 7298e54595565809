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

package omcidec

import (
	"encoding/binary"
	"fmt"
)

// Trailer is the AAL5 style trailer of a baseline frame. The CRC is reported, not verified.
type Trailer struct {
	CpcsUuCpi uint16 `json:"cpcs_uu_cpi" yaml:"cpcs_uu_cpi" cbor:"cpcs_uu_cpi"`
	SduLength uint16 `json:"sdu_length" yaml:"sdu_length" cbor:"sdu_length"`
	CRC       uint32 `json:"crc" yaml:"crc" cbor:"crc"`
}

// DecodeTrailer reads the 8 trailer bytes that follow the content region
func DecodeTrailer(buf []byte) (Trailer, error) {
	if len(buf) < FullFrameLength {
		return Trailer{}, fmt.Errorf("%w: needs %d bytes, buffer has %d", ErrTruncatedTrailer, FullFrameLength, len(buf))
	}
	t := buf[TrailerOffset:FullFrameLength]
	return Trailer{
		CpcsUuCpi: binary.BigEndian.Uint16(t[0:2]),
		SduLength: binary.BigEndian.Uint16(t[2:4]),
		CRC:       binary.BigEndian.Uint32(t[4:8]),
	}, nil
}

func trailerField(buf []byte, t Trailer) *Field {
	f := newField("Trailer", TrailerOffset, buf[TrailerOffset:FullFrameLength])
	f.Add(uintField("CPCS-UU and CPI", TrailerOffset, buf[TrailerOffset:TrailerOffset+2]))
	f.Add(uintField("CPCS-SDU length", TrailerOffset+2, buf[TrailerOffset+2:TrailerOffset+4]))
	crc := textField("CRC-32", TrailerOffset+4, buf[TrailerOffset+4:FullFrameLength], fmt.Sprintf("0x%08x", t.CRC))
	crc.Value = t.CRC
	f.Add(crc)
	return f
}
