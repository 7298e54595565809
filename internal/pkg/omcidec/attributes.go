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
	"bytes"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
)

const maskBits = 16

// DecodedAttribute is one attribute selected by a mask, Offset is relative to the content region
type DecodedAttribute struct {
	Index     uint     `json:"index" yaml:"index" cbor:"index"`
	Name      string   `json:"name" yaml:"name" cbor:"name"`
	Raw       HexBytes `json:"raw" yaml:"raw" cbor:"raw"`
	Offset    uint     `json:"offset" yaml:"offset" cbor:"offset"`
	Length    uint     `json:"length" yaml:"length" cbor:"length"`
	Truncated bool     `json:"truncated,omitempty" yaml:"truncated,omitempty" cbor:"truncated,omitempty"`
}

// DecodeMaskedAttributes walks the schema in index order. Mask bit 15 selects attribute 1,
// bits beyond the schema are ignored. Each selected attribute takes its declared length
// from the running offset, which starts at baseOffset.
// Raw bytes never extend past the content region; an attribute that does not fit is
// emitted with the available bytes and marked truncated.
func DecodeMaskedAttributes(content []byte, schema omcidef.ManagedEntityClass, mask uint16, baseOffset uint) []DecodedAttribute {
	var out []DecodedAttribute
	offset := baseOffset
	for i, def := range schema.Attributes {
		if i >= maskBits {
			break
		}
		if mask&(0x8000>>uint(i)) == 0 {
			continue
		}
		out = append(out, sliceAttribute(content, uint(i+1), def, offset))
		offset += def.Length
	}
	return out
}

// DecodeCreateAttributes emits the set-by-create attributes in schema order with offsets
// accumulated from 0 over those attributes only
func DecodeCreateAttributes(content []byte, schema omcidef.ManagedEntityClass) []DecodedAttribute {
	var out []DecodedAttribute
	var offset uint
	for i, def := range schema.Attributes {
		if !def.SettableOnCreate {
			continue
		}
		out = append(out, sliceAttribute(content, uint(i+1), def, offset))
		offset += def.Length
	}
	return out
}

// MaskBeyondSchema returns the mask bits that select no attribute of the schema
func MaskBeyondSchema(schema omcidef.ManagedEntityClass, mask uint16) uint16 {
	n := schema.NumAttributes()
	if n >= maskBits {
		return 0
	}
	return mask & (0xffff >> uint(n))
}

func sliceAttribute(content []byte, index uint, def omcidef.AttributeDefinition, offset uint) DecodedAttribute {
	bound := uint(len(content))
	if bound > ContentLength {
		bound = ContentLength
	}
	attr := DecodedAttribute{
		Index:  index,
		Name:   def.Name,
		Offset: offset,
		Length: def.Length,
	}
	if offset >= bound {
		attr.Truncated = true
		return attr
	}
	end := offset + def.Length
	if end > bound {
		end = bound
		attr.Truncated = true
	}
	attr.Raw = HexBytes(content[offset:end])
	return attr
}

// attributeField builds the tree node of a decoded attribute
func attributeField(attr DecodedAttribute) *Field {
	f := newField(attr.Name, ContentOffset+int(attr.Offset), attr.Raw)
	switch {
	case attr.Truncated:
		f.Text = "truncated, exceeds message content"
	case attr.Length <= 8:
		f.Value = beUint(attr.Raw)
	default:
		if s, ok := printable(attr.Raw); ok {
			f.Text = s
		}
	}
	return f
}

// printable returns the span as a string when it is ASCII text padded with NULs
func printable(raw []byte) (string, bool) {
	trimmed := bytes.TrimRight(raw, "\x00")
	if len(trimmed) == 0 {
		return "", false
	}
	for _, b := range trimmed {
		if b < 0x20 || b > 0x7e {
			return "", false
		}
	}
	return string(trimmed), true
}
