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

package xcheck

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/gopacket"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-lib-go/v2"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

const (
	baseMessageTrailerLen = 40
	baseFrameLen          = 48
	messageTypeBits       = 0x7f
)

// Mismatch is one value the two decoders disagree about
type Mismatch struct {
	Field     string `json:"field" yaml:"field" cbor:"field"`
	Ours      string `json:"ours" yaml:"ours" cbor:"ours"`
	Reference string `json:"reference" yaml:"reference" cbor:"reference"`
}

// Report is the outcome of one comparison
type Report struct {
	// Failure holds the reference decode problem, if any
	Failure    string     `json:"failure,omitempty" yaml:"failure,omitempty" cbor:"failure,omitempty"`
	Mismatches []Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty" cbor:"mismatches,omitempty"`
}

// OK reports whether the reference decoder agreed on everything it was able to decode
func (r Report) OK() bool {
	return r.Failure == "" && len(r.Mismatches) == 0
}

func (r Report) String() string {
	if r.OK() {
		return "reference decode agrees"
	}
	parts := make([]string, 0, len(r.Mismatches)+1)
	if r.Failure != "" {
		parts = append(parts, "reference decode failed: "+r.Failure)
	}
	for _, m := range r.Mismatches {
		parts = append(parts, fmt.Sprintf("%s: ours %s, reference %s", m.Field, m.Ours, m.Reference))
	}
	return strings.Join(parts, "; ")
}

func (r *Report) mismatch(field string, ours, reference interface{}) {
	r.Mismatches = append(r.Mismatches, Mismatch{Field: field, Ours: fmt.Sprint(ours), Reference: fmt.Sprint(reference)})
}

// normalize returns a 48 byte baseline frame with the trailer length omci-lib-go expects
func normalize(raw []byte) []byte {
	msg := make([]byte, baseFrameLen)
	copy(msg, raw)
	binary.BigEndian.PutUint16(msg[42:44], baseMessageTrailerLen)
	return msg
}

// Compare decodes raw with omci-lib-go and checks the header fields, MIB upload records,
// ANI-G test results and alarm bitmaps against frame. Extended message set frames are skipped.
func Compare(ctx context.Context, frame *omcidec.Frame, raw []byte) Report {
	var report Report
	if frame.Header.DeviceIdent != omcidef.BaselineDeviceIdent {
		report.Failure = "only the baseline message set is compared"
		return report
	}
	packet := gopacket.NewPacket(normalize(raw), omci.LayerTypeOMCI, gopacket.NoCopy)
	omciLayer := packet.Layer(omci.LayerTypeOMCI)
	if omciLayer == nil {
		report.Failure = "no omci layer"
		return report
	}
	omciMsg, ok := omciLayer.(*omci.OMCI)
	if !ok {
		report.Failure = "no omci layer"
		return report
	}
	if failure, decodeOk := packet.Layer(gopacket.LayerTypeDecodeFailure).(*gopacket.DecodeFailure); decodeOk {
		report.Failure = failure.Error().Error()
		logger.Debugw(ctx, "reference-decode-issue", log.Fields{"tid": frame.Header.TransactionID, "issue": report.Failure})
	}

	hdr := frame.Header
	if omciMsg.TransactionID != hdr.TransactionID {
		report.mismatch("transaction id", hdr.TransactionID, omciMsg.TransactionID)
	}
	if byte(omciMsg.MessageType)&messageTypeBits != hdr.MessageTypeByte&messageTypeBits {
		report.mismatch("message type", fmt.Sprintf("0x%02x", hdr.MessageTypeByte&messageTypeBits),
			fmt.Sprintf("0x%02x", byte(omciMsg.MessageType)&messageTypeBits))
	}
	if byte(omciMsg.DeviceIdentifier) != hdr.DeviceIdent {
		report.mismatch("device identifier", hdr.DeviceIdent, byte(omciMsg.DeviceIdentifier))
	}

	switch frame.Shape {
	case omcidec.ShapeMibUploadNext:
		compareMibUploadNext(packet, frame, &report)
	case omcidec.ShapeTestResult:
		compareTestResult(packet, frame, &report)
	case omcidec.ShapeAlarm:
		compareAlarm(packet, frame, &report)
	}
	if !report.OK() {
		logger.Infow(ctx, "reference-decode-differs", log.Fields{"tid": hdr.TransactionID, "report": report.String()})
	}
	return report
}

func compareMibUploadNext(packet gopacket.Packet, frame *omcidec.Frame, report *Report) {
	msgObj, ok := packet.Layer(omci.LayerTypeMibUploadNextResponse).(*omci.MibUploadNextResponse)
	if !ok {
		return
	}
	rec, err := omcidec.DecodeMibUploadNext(frame.Content)
	if err != nil {
		report.mismatch("mib upload next record", err, "decoded")
		return
	}
	if uint16(msgObj.ReportedME.GetClassID()) != rec.ClassID {
		report.mismatch("reported class", rec.ClassID, uint16(msgObj.ReportedME.GetClassID()))
	}
	if msgObj.ReportedME.GetEntityID() != rec.Instance {
		report.mismatch("reported instance", rec.Instance, msgObj.ReportedME.GetEntityID())
	}
}

func compareTestResult(packet gopacket.Packet, frame *omcidec.Frame, report *Report) {
	msgObj, ok := packet.Layer(omci.LayerTypeTestResult).(*omci.OpticalLineSupervisionTestResult)
	if !ok {
		return
	}
	slots, implemented := omcidec.DecodeTestResult(frame.Content, frame.Header.ClassID)
	if !implemented {
		return
	}
	reference := []uint16{
		msgObj.PowerFeedVoltage,
		msgObj.ReceivedOpticalPower,
		msgObj.MeanOpticalLaunch,
		msgObj.LaserBiasCurrent,
		msgObj.Temperature,
	}
	for i, slot := range slots {
		if i >= len(reference) || slot.Malformed {
			continue
		}
		if uint16(slot.Raw) != reference[i] {
			report.mismatch(slot.Name, uint16(slot.Raw), reference[i])
		}
	}
}

func compareAlarm(packet gopacket.Packet, frame *omcidec.Frame, report *Report) {
	msgObj, ok := packet.Layer(omci.LayerTypeAlarmNotification).(*omci.AlarmNotificationMsg)
	if !ok {
		return
	}
	reference := omcidec.DecodeAlarmBitmap(msgObj.AlarmBitmap[:])
	if fmt.Sprint(reference) != fmt.Sprint(frame.Alarms) {
		report.mismatch("alarms", frame.Alarms, reference)
	}
	if int(msgObj.AlarmSequenceNumber) != int(frame.Content[omcidef.AlarmBitmapLength+3]) {
		report.mismatch("alarm sequence number", frame.Content[omcidef.AlarmBitmapLength+3], msgObj.AlarmSequenceNumber)
	}
}
