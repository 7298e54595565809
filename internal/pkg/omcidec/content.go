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
	"encoding/binary"
	"fmt"

	"github.com/opencord/omci-dissector-go/internal/pkg/common"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

// Content is the decoded content region
type Content struct {
	Shape Shape
	// Class is the schema used for attributes, the nested class for MIB Upload Next responses
	Class      omcidef.ManagedEntityClass
	Attributes []DecodedAttribute
	// Alarms lists the set alarm numbers of an alarm notification
	Alarms      []int
	Fields      []*Field
	Diagnostics []Diagnostic
}

type contentDecoder struct {
	ctx     context.Context
	hdr     Header
	content []byte
	variant Variant
	out     *Content
}

// DecodeContent dispatches the 32 byte content region on (message type, AR, AK).
// Only a short buffer is an error, everything else degrades to diagnostics.
func DecodeContent(ctx context.Context, hdr Header, content []byte, variant Variant) (*Content, error) {
	if len(content) < ContentLength {
		return nil, truncatedFrameError("content", ContentLength, len(content))
	}
	d := &contentDecoder{
		ctx:     ctx,
		hdr:     hdr,
		content: content[:ContentLength],
		variant: variant,
		out: &Content{
			Shape: SelectShape(hdr.MessageType, hdr.AR, hdr.AK),
			Class: omcidef.LookupClass(hdr.ClassID),
		},
	}
	switch d.out.Shape {
	case ShapeMaskAttributes:
		d.decodeMaskSection(d.out.Class, 0, 2)
	case ShapeResultMaskAttributes:
		d.decodeResult(0)
		d.decodeMaskSection(d.out.Class, 1, 3)
	case ShapeResult:
		d.decodeResult(0)
	case ShapeCreate:
		d.decodeCreate()
	case ShapeCommandCount:
		d.add(uintField("Number of subsequent commands", ContentOffset, d.content[0:2]))
	case ShapeSequenceNumber:
		d.add(uintField("Command sequence number", ContentOffset, d.content[0:2]))
	case ShapeMibUploadNext:
		d.decodeMibUploadNext()
	case ShapeTestRequest:
		d.decodeTestRequest()
	case ShapeTestResult:
		d.decodeTestResult()
	case ShapeAlarm:
		d.decodeAlarm()
	default:
		d.diag(UnimplementedShape, 0, "no layout for %s with ar=%t ak=%t",
			hdr.MessageTypeName(), hdr.AR, hdr.AK)
		d.add(textField("Message content", ContentOffset, d.content, "not interpreted"))
	}
	return d.out, nil
}

func (d *contentDecoder) add(f *Field) *Field {
	d.out.Fields = append(d.out.Fields, f)
	return f
}

// diag records a finding; offset is relative to the content region
func (d *contentDecoder) diag(kind DiagnosticKind, offset int, format string, args ...interface{}) {
	diagnostic := Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: ContentOffset + offset}
	logger.Debugw(d.ctx, "content-diagnostic", log.Fields{"kind": kind.String(), "offset": diagnostic.Offset,
		"message": diagnostic.Message, "tid": d.hdr.TransactionID})
	d.out.Diagnostics = append(d.out.Diagnostics, diagnostic)
}

func (d *contentDecoder) decodeResult(offset int) {
	code := d.content[offset]
	f := d.add(textField("Result", ContentOffset+offset, d.content[offset:offset+1], omcidef.LookupResultCode(code)))
	f.Value = code
	if !omcidef.ResultCode(code).IsKnown() {
		d.diag(UnknownResultCode, offset, "result code %d", code)
	}
}

func (d *contentDecoder) maskField(offset int) (uint16, *Field) {
	raw := d.content[offset : offset+2]
	mask := binary.BigEndian.Uint16(raw)
	f := textField("Attribute mask", ContentOffset+offset, raw, fmt.Sprintf("0x%04x (%s)", mask, common.MaskBitString(mask)))
	f.Value = mask
	return mask, f
}

func (d *contentDecoder) decodeMaskSection(schema omcidef.ManagedEntityClass, maskOffset int, attrOffset uint) {
	mask, f := d.maskField(maskOffset)
	d.add(f)
	d.emitAttributes(DecodeMaskedAttributes(d.content, schema, mask, attrOffset), attrOffset)
	d.checkMask(schema, mask, maskOffset)
}

func (d *contentDecoder) checkMask(schema omcidef.ManagedEntityClass, mask uint16, maskOffset int) {
	if beyond := MaskBeyondSchema(schema, mask); beyond != 0 && schema.Known {
		d.diag(AttributesBeyondSchema, maskOffset, "mask bits 0x%04x select no attribute of %s (%d attributes)",
			beyond, schema.Name, schema.NumAttributes())
	}
}

func (d *contentDecoder) emitAttributes(attrs []DecodedAttribute, base uint) {
	list := d.add(newField("Attribute list", ContentOffset+int(base), nil))
	overflow := false
	for _, attr := range attrs {
		list.Add(attributeField(attr))
		overflow = overflow || attr.Truncated
	}
	if overflow {
		d.diag(AttributeOverflow, int(base), "selected attributes exceed the %d byte content region", ContentLength)
	}
	d.out.Attributes = attrs
}

func (d *contentDecoder) decodeCreate() {
	d.emitAttributes(DecodeCreateAttributes(d.content, d.out.Class), 0)
}

func (d *contentDecoder) decodeMibUploadNext() {
	rec, err := DecodeMibUploadNext(d.content)
	if err != nil {
		// unreachable with a full content region
		d.diag(UnimplementedShape, 0, "%v", err)
		return
	}
	d.out.Class = rec.Class
	classField := textField("Managed entity class", ContentOffset+mibUploadNextClassOffset,
		d.content[mibUploadNextClassOffset:mibUploadNextInstanceOffset], rec.Class.Name)
	classField.Value = rec.ClassID
	d.add(classField)
	d.add(uintField("Managed entity instance", ContentOffset+mibUploadNextInstanceOffset,
		d.content[mibUploadNextInstanceOffset:mibUploadNextMaskOffset]))
	if !rec.Class.Known {
		d.diag(UnknownClass, mibUploadNextClassOffset, "nested class %d: %s", rec.ClassID, rec.Class.Name)
	}
	_, f := d.maskField(mibUploadNextMaskOffset)
	d.add(f)
	d.emitAttributes(rec.Attributes, mibUploadNextAttrOffset)
	d.checkMask(rec.Class, rec.Mask, mibUploadNextMaskOffset)
}

func (d *contentDecoder) decodeTestRequest() {
	req, err := DecodeTestRequest(d.content, d.hdr.ClassID, d.variant)
	if err != nil {
		d.diag(UnimplementedShape, 0, "%v", err)
		return
	}
	sel := d.add(textField("Select test", ContentOffset, d.content[:req.SelectorWidth],
		fmt.Sprintf("%d (%s)", req.Selector, req.Category)))
	sel.Value = req.Selector
	if req.CategoryErr != nil {
		sel.Text = fmt.Sprintf("%d (invalid)", req.Selector)
		d.diag(TestIDOutOfRange, 0, "%v", req.CategoryErr)
	}
	if req.HasBufferPointer {
		d.add(uintField("General purpose buffer pointer", ContentOffset+req.SelectorWidth,
			d.content[req.SelectorWidth:req.SelectorWidth+2]))
	}
}

func (d *contentDecoder) decodeTestResult() {
	slots, ok := DecodeTestResult(d.content, d.hdr.ClassID)
	report := d.add(newField("Test report", ContentOffset, nil))
	if !ok {
		report.Text = "not implemented for this class"
		d.diag(UnimplementedShape, 0, "test result of %s", d.out.Class.Name)
		return
	}
	for _, slot := range slots {
		end := int(slot.Offset) + testSlotLength
		f := textField(slot.Name, ContentOffset+int(slot.Offset), d.content[slot.Offset:end], slot.Text())
		if !slot.Malformed && !slot.NotSupported {
			f.Value = slot.Value
		}
		report.Add(f)
		if slot.Malformed {
			d.diag(MalformedTestSlot, int(slot.Offset), "%s: expected type %d, got %d", slot.Name, slot.ExpectedTag, slot.Tag)
		}
	}
}

func (d *contentDecoder) decodeAlarm() {
	bitmap := d.content[:omcidef.AlarmBitmapLength]
	alarms := DecodeAlarmBitmap(bitmap)
	d.out.Alarms = alarms
	list := d.add(newField("Alarm bitmap", ContentOffset, bitmap))
	if len(alarms) == 0 {
		list.Add(&Field{Name: "All alarms cleared", Offset: ContentOffset})
	}
	for _, n := range alarms {
		f := &Field{Name: fmt.Sprintf("Alarm %d", n), Offset: ContentOffset + n/8}
		if name, known := omcidef.LookupAlarmName(d.hdr.ClassID, n); known {
			f.Text = name
		}
		list.Add(f)
	}
	d.add(uintField("Alarm sequence number", ContentOffset+alarmSequenceOffset,
		d.content[alarmSequenceOffset:alarmSequenceOffset+1]))
}
