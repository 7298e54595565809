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

	"github.com/opencord/omci-dissector-go/internal/pkg/common"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
)

// TestSlot is one fixed position of the ANI-G self test report
type TestSlot struct {
	Name         string  `json:"name" yaml:"name" cbor:"name"`
	Offset       uint    `json:"offset" yaml:"offset" cbor:"offset"`
	Tag          uint8   `json:"tag" yaml:"tag" cbor:"tag"`
	ExpectedTag  uint8   `json:"expected_tag" yaml:"expected_tag" cbor:"expected_tag"`
	Raw          int16   `json:"raw" yaml:"raw" cbor:"raw"`
	Value        float64 `json:"value" yaml:"value" cbor:"value"`
	Unit         string  `json:"unit" yaml:"unit" cbor:"unit"`
	NotSupported bool    `json:"not_supported,omitempty" yaml:"not_supported,omitempty" cbor:"not_supported,omitempty"`
	Malformed    bool    `json:"malformed,omitempty" yaml:"malformed,omitempty" cbor:"malformed,omitempty"`

	format string
}

// Text renders the interpreted value, e.g. "1000 mV"
func (s TestSlot) Text() string {
	switch {
	case s.Malformed:
		return fmt.Sprintf("malformed, expected type %d got %d", s.ExpectedTag, s.Tag)
	case s.NotSupported:
		return "Not supported"
	}
	return fmt.Sprintf(s.format, s.Value) + " " + s.Unit
}

type testSlotLayout struct {
	offset        uint
	tag           uint8
	name          string
	unit          string
	format        string
	zeroMeansNone bool
	convert       func(raw int16) float64
}

func opticalPower(raw int16) float64 {
	return float64(raw)*0.002 - 30
}

// ANI-G test result, G.988 A.2.43; a tag byte followed by a 2 byte two's complement value
var aniGTestResultLayout = []testSlotLayout{
	{offset: 0, tag: 1, name: "Power feed voltage", unit: "mV", format: "%.0f",
		convert: func(raw int16) float64 { return float64(raw) * 20 }},
	{offset: 3, tag: 3, name: "Received optical power", unit: "dBm", format: "%.3f", zeroMeansNone: true,
		convert: opticalPower},
	{offset: 6, tag: 5, name: "Mean optical launch power", unit: "dBm", format: "%.3f", zeroMeansNone: true,
		convert: opticalPower},
	{offset: 9, tag: 9, name: "Laser bias current", unit: "µA", format: "%.0f",
		convert: func(raw int16) float64 { return float64(raw) * 2 }},
	{offset: 12, tag: 12, name: "Temperature", unit: "°C", format: "%.2f",
		convert: func(raw int16) float64 { return float64(raw) / 256.0 }},
}

const testSlotLength = 3

// DecodeTestResult interprets the test report of a Test Result notification. ok is false for
// classes without a known report layout. A slot with an unexpected tag is marked malformed and
// does not affect the other slots.
func DecodeTestResult(content []byte, classID uint16) (slots []TestSlot, ok bool) {
	if classID != omcidef.AniGClassID {
		return nil, false
	}
	for _, layout := range aniGTestResultLayout {
		slot := TestSlot{
			Name:        layout.name,
			Offset:      layout.offset,
			ExpectedTag: layout.tag,
			Unit:        layout.unit,
			format:      layout.format,
		}
		if int(layout.offset)+testSlotLength > len(content) {
			slot.Malformed = true
			slots = append(slots, slot)
			continue
		}
		slot.Tag = content[layout.offset]
		slot.Raw = common.TwosComplementToSignedInt16(binary.BigEndian.Uint16(content[layout.offset+1:]))
		switch {
		case slot.Tag != layout.tag:
			slot.Malformed = true
		case layout.zeroMeansNone && slot.Raw == 0:
			slot.NotSupported = true
		default:
			slot.Value = layout.convert(slot.Raw)
		}
		slots = append(slots, slot)
	}
	return slots, true
}

// DecodeAlarmBitmap returns the set alarm numbers in ascending order. Bit j of byte i
// (j = 0 is the MSB) is alarm i*8+j.
func DecodeAlarmBitmap(bitmap []byte) []int {
	var alarms []int
	for i := 0; i < len(bitmap) && i < omcidef.AlarmBitmapLength; i++ {
		for j := 0; j < 8; j++ {
			if bitmap[i]&(0x80>>uint(j)) != 0 {
				alarms = append(alarms, i*8+j)
			}
		}
	}
	return alarms
}

// alarm notification content offsets
const (
	alarmSequenceOffset = 31
)

// MibUploadNextRecord is the ME instance reported in a MIB Upload Next response
type MibUploadNextRecord struct {
	ClassID    uint16
	Instance   uint16
	Mask       uint16
	Class      omcidef.ManagedEntityClass
	Attributes []DecodedAttribute
}

// MIB upload next response content offsets
const (
	mibUploadNextClassOffset    = 0
	mibUploadNextInstanceOffset = 2
	mibUploadNextMaskOffset     = 4
	mibUploadNextAttrOffset     = 6
)

// DecodeMibUploadNext resolves the nested class through the registry and decodes its
// attributes. An unknown nested class yields no attributes.
func DecodeMibUploadNext(content []byte) (MibUploadNextRecord, error) {
	if len(content) < mibUploadNextAttrOffset {
		return MibUploadNextRecord{}, truncatedFrameError("mib upload next record", mibUploadNextAttrOffset, len(content))
	}
	rec := MibUploadNextRecord{
		ClassID:  binary.BigEndian.Uint16(content[mibUploadNextClassOffset:]),
		Instance: binary.BigEndian.Uint16(content[mibUploadNextInstanceOffset:]),
		Mask:     binary.BigEndian.Uint16(content[mibUploadNextMaskOffset:]),
	}
	rec.Class = omcidef.LookupClass(rec.ClassID)
	rec.Attributes = DecodeMaskedAttributes(content, rec.Class, rec.Mask, mibUploadNextAttrOffset)
	return rec, nil
}

// TestRequest is the decoded selector part of a Test request
type TestRequest struct {
	Selector      int
	SelectorWidth int
	Category      omcidef.TestCategory
	// CategoryErr is set when the selector is outside the test id domain
	CategoryErr      error
	HasBufferPointer bool
	BufferPointer    uint16
}

// classes whose test request carries a general purpose buffer pointer after the selector
var testBufferPointerClasses = map[uint16]bool{
	omcidef.OnuGClassID:        true,
	omcidef.CircuitPackClassID: true,
	omcidef.AniGClassID:        true,
}

// DecodeTestRequest reads the test selector; G-PON uses one byte, XG-PON two bytes
func DecodeTestRequest(content []byte, classID uint16, variant Variant) (TestRequest, error) {
	req := TestRequest{SelectorWidth: 1}
	if variant == VariantXGPON {
		req.SelectorWidth = 2
	}
	need := req.SelectorWidth
	if testBufferPointerClasses[classID] {
		need += 2
	}
	if len(content) < need {
		return req, truncatedFrameError("test request", need, len(content))
	}
	req.Selector = int(beUint(content[:req.SelectorWidth]))
	req.Category, req.CategoryErr = omcidef.LookupTestID(req.Selector)
	if testBufferPointerClasses[classID] {
		req.HasBufferPointer = true
		req.BufferPointer = binary.BigEndian.Uint16(content[req.SelectorWidth:])
	}
	return req, nil
}
