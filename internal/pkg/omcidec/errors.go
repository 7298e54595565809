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
	"errors"
	"fmt"
)

// ErrTruncatedFrame is returned when the buffer cannot hold the header or the content region
var ErrTruncatedFrame = errors.New("truncated-frame")

// ErrTruncatedTrailer is returned when the frame length announces a trailer the buffer does not hold
var ErrTruncatedTrailer = errors.New("truncated-trailer")

// DiagnosticKind classifies a non-fatal decode finding
type DiagnosticKind uint8

const (
	// UnknownClass - the entity class was resolved by range fallback
	UnknownClass DiagnosticKind = iota + 1
	// UnknownMessageType - the message type code is outside 4..29
	UnknownMessageType
	// UnknownResultCode - the result code has no defined meaning
	UnknownResultCode
	// MalformedTestSlot - a test result slot carries an unexpected type tag
	MalformedTestSlot
	// UnimplementedShape - no layout is defined for the message type and flags
	UnimplementedShape
	// TruncatedTrailer - the trailer is announced but not present in the buffer
	TruncatedTrailer
	// AttributesBeyondSchema - the mask selects attributes the class does not define
	AttributesBeyondSchema
	// AttributeOverflow - selected attributes do not fit into the content region
	AttributeOverflow
	// TestIDOutOfRange - the test selector is outside 0..255
	TestIDOutOfRange
)

var diagnosticKindNames = map[DiagnosticKind]string{
	UnknownClass:           "UnknownClass",
	UnknownMessageType:     "UnknownMessageType",
	UnknownResultCode:      "UnknownResultCode",
	MalformedTestSlot:      "MalformedTestSlot",
	UnimplementedShape:     "UnimplementedShape",
	TruncatedTrailer:       "TruncatedTrailer",
	AttributesBeyondSchema: "AttributesBeyondSchema",
	AttributeOverflow:      "AttributeOverflow",
	TestIDOutOfRange:       "TestIDOutOfRange",
}

func (k DiagnosticKind) String() string {
	if name, ok := diagnosticKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
}

// MarshalText renders the kind by name in JSON, YAML and CBOR output
func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is a non-fatal finding; Offset is the absolute frame offset it refers to
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind" yaml:"kind" cbor:"kind"`
	Message string         `json:"message" yaml:"message" cbor:"message"`
	Offset  int            `json:"offset" yaml:"offset" cbor:"offset"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %d: %s", d.Kind, d.Offset, d.Message)
}

func truncatedFrameError(what string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, buffer has %d", ErrTruncatedFrame, what, need, have)
}
