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
	"context"
	"fmt"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

const summaryNameWidth = 30

// Options carries the framing metadata the decoder cannot learn from the frame itself
type Options struct {
	Variant Variant
}

// Frame is the result of decoding one OMCI frame
type Frame struct {
	Header    Header                     `json:"header" yaml:"header" cbor:"header"`
	Class     omcidef.ManagedEntityClass `json:"-" yaml:"-" cbor:"-"`
	ClassName string                     `json:"class_name" yaml:"class_name" cbor:"class_name"`
	FrameLen  int                        `json:"frame_len" yaml:"frame_len" cbor:"frame_len"`
	Content   HexBytes                   `json:"content" yaml:"content" cbor:"content"`
	Shape     Shape                      `json:"shape" yaml:"shape" cbor:"shape"`
	// Attributes holds the attributes of the message content, if its shape carries any
	Attributes  []DecodedAttribute `json:"attributes,omitempty" yaml:"attributes,omitempty" cbor:"attributes,omitempty"`
	Alarms      []int              `json:"alarms,omitempty" yaml:"alarms,omitempty" cbor:"alarms,omitempty"`
	Trailer     *Trailer           `json:"trailer,omitempty" yaml:"trailer,omitempty" cbor:"trailer,omitempty"`
	Summary     string             `json:"summary" yaml:"summary" cbor:"summary"`
	Fields      []*Field           `json:"fields" yaml:"fields" cbor:"fields"`
	Diagnostics []Diagnostic       `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" cbor:"diagnostics,omitempty"`
}

// HasDiagnostic reports whether a diagnostic of the kind was recorded
func (f *Frame) HasDiagnostic(kind DiagnosticKind) bool {
	for _, d := range f.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Field returns the top level field with the given name
func (f *Frame) Field(name string) *Field {
	for _, c := range f.Fields {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Summary builds the one line description, e.g.
// "OLT> Get                            - ONU-G" or "ONU< Get response                   - ONU-G"
func Summary(hdr Header, entityName string) string {
	name := hdr.MessageTypeName()
	direction := "ONU< "
	switch {
	case hdr.AR:
		direction = "OLT> "
	case hdr.AK:
		name += " response"
	}
	return fmt.Sprintf("%s%-*s - %s", direction, summaryNameWidth, name, entityName)
}

// DecodeFrame decodes buf, frameLen is the on-wire length used to decide whether the trailer is
// present; 0 means len(buf). Only a buffer shorter than header and content is an error.
func DecodeFrame(ctx context.Context, buf []byte, frameLen int, opts Options) (*Frame, error) {
	if len(buf) < MinFrameLength {
		logger.Debugw(ctx, "frame-too-short", log.Fields{"len": len(buf), "min": MinFrameLength})
		return nil, truncatedFrameError("header and content", MinFrameLength, len(buf))
	}
	if frameLen <= 0 {
		frameLen = len(buf)
	}
	hdr, err := DecodeHeader(buf)
	if err != nil {
		return nil, err
	}
	frame := &Frame{
		Header:   hdr,
		FrameLen: frameLen,
		Content:  HexBytes(buf[ContentOffset:MinFrameLength]),
	}
	frame.Fields = headerFields(buf, hdr)

	if !hdr.MessageType.IsKnown() {
		frame.Diagnostics = append(frame.Diagnostics, Diagnostic{Kind: UnknownMessageType, Offset: 2,
			Message: fmt.Sprintf("message type %d", hdr.MessageType)})
	}
	content, err := DecodeContent(ctx, hdr, buf[ContentOffset:MinFrameLength], opts.Variant)
	if err != nil {
		return nil, err
	}
	frame.Class = omcidef.LookupClass(hdr.ClassID)
	frame.ClassName = frame.Class.Name
	if !frame.Class.Known {
		frame.Diagnostics = append(frame.Diagnostics, Diagnostic{Kind: UnknownClass, Offset: 4,
			Message: fmt.Sprintf("class %d: %s", hdr.ClassID, frame.Class.Name)})
	}
	frame.Shape = content.Shape
	frame.Attributes = content.Attributes
	frame.Alarms = content.Alarms
	frame.Diagnostics = append(frame.Diagnostics, content.Diagnostics...)
	contentField := newField("Message content", ContentOffset, buf[ContentOffset:MinFrameLength])
	contentField.Fields = content.Fields
	frame.Fields = append(frame.Fields, contentField)

	if TrailerPresent(frameLen) {
		trailer, err := DecodeTrailer(buf)
		if err != nil {
			logger.Warnw(ctx, "trailer-missing", log.Fields{"frame-len": frameLen, "buf-len": len(buf)})
			frame.Diagnostics = append(frame.Diagnostics, Diagnostic{Kind: TruncatedTrailer, Offset: TrailerOffset,
				Message: err.Error()})
		} else {
			frame.Trailer = &trailer
			frame.Fields = append(frame.Fields, trailerField(buf, trailer))
		}
	}
	frame.Summary = Summary(hdr, frame.ClassName)
	logger.Debugw(ctx, "frame-decoded", log.Fields{"tid": hdr.TransactionID, "summary": frame.Summary,
		"shape": frame.Shape.String(), "diagnostics": len(frame.Diagnostics)})
	return frame, nil
}

func headerFields(buf []byte, hdr Header) []*Field {
	mt := textField("Message type", 2, buf[2:3], fmt.Sprintf("0x%02x", hdr.MessageTypeByte))
	mt.Add(flagField("Destination bit", hdr.DB))
	mt.Add(flagField("Acknowledge request", hdr.AR))
	mt.Add(flagField("Acknowledge", hdr.AK))
	typeField := textField("Message type code", 2, buf[2:3], fmt.Sprintf("%d (%s)", hdr.MessageType, hdr.MessageTypeName()))
	typeField.Value = uint8(hdr.MessageType)
	mt.Add(typeField)

	dev := textField("Device identifier", 3, buf[3:4], fmt.Sprintf("0x%02x (%s)", hdr.DeviceIdent, omcidef.DeviceIdentName(hdr.DeviceIdent)))
	dev.Value = hdr.DeviceIdent
	class := textField("Managed entity class", 4, buf[4:6],
		fmt.Sprintf("%d (%s)", hdr.ClassID, omcidef.LookupClass(hdr.ClassID).Name))
	class.Value = hdr.ClassID

	return []*Field{
		uintField("Transaction id", 0, buf[0:2]),
		mt,
		dev,
		class,
		uintField("Managed entity instance", 6, buf[6:8]),
	}
}

func flagField(name string, set bool) *Field {
	return &Field{Name: name, Offset: 2, Value: set}
}
