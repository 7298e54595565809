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

// Package render writes decoded frames as indented text, JSON lines, YAML documents or CBOR items
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/xcheck"
)

// Format selects the output encoding
type Format string

// supported output formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Entry is one rendered input record
type Entry struct {
	Index      int            `json:"index" yaml:"index" cbor:"index"`
	Timestamp  *time.Time     `json:"timestamp,omitempty" yaml:"timestamp,omitempty" cbor:"timestamp,omitempty"`
	Frame      *omcidec.Frame `json:"frame,omitempty" yaml:"frame,omitempty" cbor:"frame,omitempty"`
	CrossCheck *xcheck.Report `json:"cross_check,omitempty" yaml:"cross_check,omitempty" cbor:"cross_check,omitempty"`
	Error      string         `json:"error,omitempty" yaml:"error,omitempty" cbor:"error,omitempty"`
}

// Writer renders entries to an output stream
type Writer interface {
	Write(entry Entry) error
	// Close flushes pending output, the underlying stream is left open
	Close() error
}

// NewWriter returns the writer for format
func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case FormatText, "":
		return &textWriter{w: w}, nil
	case FormatJSON:
		return newJSONWriter(w), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	case FormatCBOR:
		return newCBORWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
