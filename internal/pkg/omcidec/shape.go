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
	"fmt"
	"strings"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
)

// Shape is the content layout selected by message type and the AR/AK flags
type Shape uint8

const (
	// ShapeOpaque - no layout defined, content is shown as raw bytes
	ShapeOpaque Shape = iota
	// ShapeMaskAttributes - mask at 0, attributes from 2
	ShapeMaskAttributes
	// ShapeResultMaskAttributes - result at 0, mask at 1, attributes from 3
	ShapeResultMaskAttributes
	// ShapeResult - result byte at 0
	ShapeResult
	// ShapeCreate - set-by-create attributes from 0, no mask
	ShapeCreate
	// ShapeCommandCount - number of subsequent commands at 0
	ShapeCommandCount
	// ShapeSequenceNumber - command sequence number at 0
	ShapeSequenceNumber
	// ShapeMibUploadNext - nested class, instance and mask followed by attributes of the nested class
	ShapeMibUploadNext
	// ShapeTestRequest - test selector, layout depends on class and device variant
	ShapeTestRequest
	// ShapeTestResult - class specific test report
	ShapeTestResult
	// ShapeAlarm - alarm bitmap and sequence number
	ShapeAlarm
)

var shapeNames = map[Shape]string{
	ShapeOpaque:               "opaque",
	ShapeMaskAttributes:       "mask-attributes",
	ShapeResultMaskAttributes: "result-mask-attributes",
	ShapeResult:               "result",
	ShapeCreate:               "create",
	ShapeCommandCount:         "command-count",
	ShapeSequenceNumber:       "sequence-number",
	ShapeMibUploadNext:        "mib-upload-next",
	ShapeTestRequest:          "test-request",
	ShapeTestResult:           "test-result",
	ShapeAlarm:                "alarm",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type shapeKey struct {
	mt omcidef.MessageType
	ar bool
	ak bool
}

// SelectShape maps (message type, AR, AK) to the content layout. Combinations without a
// defined layout yield ShapeOpaque.
func SelectShape(mt omcidef.MessageType, ar, ak bool) Shape {
	request := func(m omcidef.MessageType) shapeKey { return shapeKey{m, true, false} }
	response := func(m omcidef.MessageType) shapeKey { return shapeKey{m, false, true} }
	notification := func(m omcidef.MessageType) shapeKey { return shapeKey{m, false, false} }

	switch (shapeKey{mt, ar, ak}) {
	case request(omcidef.Get), request(omcidef.GetCurrentData),
		request(omcidef.Set),
		notification(omcidef.AttributeValueChange):
		return ShapeMaskAttributes
	case response(omcidef.Get), response(omcidef.GetCurrentData):
		return ShapeResultMaskAttributes
	case response(omcidef.Set), response(omcidef.Create), response(omcidef.MibReset), response(omcidef.Test),
		response(omcidef.Delete), response(omcidef.Reboot), response(omcidef.SynchronizeTime):
		return ShapeResult
	case request(omcidef.Create):
		return ShapeCreate
	case response(omcidef.MibUpload), response(omcidef.GetAllAlarms):
		return ShapeCommandCount
	case request(omcidef.MibUploadNext), request(omcidef.GetAllAlarmsNext):
		return ShapeSequenceNumber
	case response(omcidef.MibUploadNext):
		return ShapeMibUploadNext
	case request(omcidef.Test):
		return ShapeTestRequest
	case notification(omcidef.TestResult):
		return ShapeTestResult
	case notification(omcidef.AlarmNotification):
		return ShapeAlarm
	}
	return ShapeOpaque
}

// Variant is the PON flavour hint of the enclosing transport
type Variant uint8

const (
	// VariantGPON selects the G-PON field widths
	VariantGPON Variant = iota
	// VariantXGPON selects the XG-PON field widths
	VariantXGPON
)

func (v Variant) String() string {
	if v == VariantXGPON {
		return "xgpon"
	}
	return "gpon"
}

// ParseVariant accepts "gpon" and "xgpon" (also "xgs-pon"), case insensitive
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "", "gpon", "g-pon":
		return VariantGPON, nil
	case "xgpon", "xg-pon", "xgspon", "xgs-pon":
		return VariantXGPON, nil
	}
	return VariantGPON, fmt.Errorf("unknown pon variant %q", s)
}
