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

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
)

// baseline frame geometry
const (
	HeaderLength    = 8
	ContentOffset   = 8
	ContentLength   = 32
	TrailerOffset   = ContentOffset + ContentLength
	TrailerLength   = 8
	MinFrameLength  = ContentOffset + ContentLength
	FullFrameLength = TrailerOffset + TrailerLength
	// frames whose on-wire length exceeds this carry the trailer; 46 is the minimum Ethernet payload
	trailerThreshold = 46
)

// bits of the message type byte
const (
	dbFlagMask = 0x80
	arFlagMask = 0x40
	akFlagMask = 0x20
)

// Header holds the fixed fields in front of the content region
type Header struct {
	TransactionID   uint16              `json:"transaction_id" yaml:"transaction_id" cbor:"transaction_id"`
	MessageTypeByte uint8               `json:"message_type_byte" yaml:"message_type_byte" cbor:"message_type_byte"`
	MessageType     omcidef.MessageType `json:"message_type" yaml:"message_type" cbor:"message_type"`
	DB              bool                `json:"db" yaml:"db" cbor:"db"`
	AR              bool                `json:"ar" yaml:"ar" cbor:"ar"`
	AK              bool                `json:"ak" yaml:"ak" cbor:"ak"`
	DeviceIdent     uint8               `json:"device_ident" yaml:"device_ident" cbor:"device_ident"`
	ClassID         uint16              `json:"class_id" yaml:"class_id" cbor:"class_id"`
	Instance        uint16              `json:"instance" yaml:"instance" cbor:"instance"`
}

// DecodeHeader extracts the header fields. Message type and class are not validated here,
// unknown values are resolved by the registry later on.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLength {
		return Header{}, truncatedFrameError("header", HeaderLength, len(buf))
	}
	mt := buf[2]
	return Header{
		TransactionID:   binary.BigEndian.Uint16(buf[0:2]),
		MessageTypeByte: mt,
		MessageType:     omcidef.MessageType(mt & omcidef.MessageTypeMask),
		DB:              mt&dbFlagMask != 0,
		AR:              mt&arFlagMask != 0,
		AK:              mt&akFlagMask != 0,
		DeviceIdent:     buf[3],
		ClassID:         binary.BigEndian.Uint16(buf[4:6]),
		Instance:        binary.BigEndian.Uint16(buf[6:8]),
	}, nil
}

// MessageTypeName returns the registry name of the message type
func (h Header) MessageTypeName() string {
	return omcidef.LookupMessageType(uint8(h.MessageType))
}

// TrailerPresent tells from the on-wire frame length whether the 8 byte trailer follows the content
func TrailerPresent(frameLen int) bool {
	return frameLen > trailerThreshold
}
