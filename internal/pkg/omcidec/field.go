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
	"encoding/hex"
	"fmt"
)

// HexBytes is a raw byte span rendered as lower case hex in text based encodings
type HexBytes []byte

// MarshalText implements encoding.TextMarshaler
func (b HexBytes) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out, nil
}

// Field is one labeled node of the decode tree. Offset is absolute within the frame.
type Field struct {
	Name   string      `json:"name" yaml:"name" cbor:"name"`
	Offset int         `json:"offset" yaml:"offset" cbor:"offset"`
	Raw    HexBytes    `json:"raw,omitempty" yaml:"raw,omitempty" cbor:"raw,omitempty"`
	Value  interface{} `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
	Text   string      `json:"text,omitempty" yaml:"text,omitempty" cbor:"text,omitempty"`
	Fields []*Field    `json:"fields,omitempty" yaml:"fields,omitempty" cbor:"fields,omitempty"`
}

// Add appends a child and returns it
func (f *Field) Add(child *Field) *Field {
	f.Fields = append(f.Fields, child)
	return child
}

// Find returns the first direct child with the given name
func (f *Field) Find(name string) *Field {
	for _, c := range f.Fields {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Label is the one line representation used by the text renderer
func (f *Field) Label() string {
	switch {
	case f.Text != "":
		return fmt.Sprintf("%s: %s", f.Name, f.Text)
	case f.Value != nil:
		return fmt.Sprintf("%s: %v", f.Name, f.Value)
	case len(f.Raw) > 0 && len(f.Fields) == 0:
		return fmt.Sprintf("%s: 0x%s", f.Name, hex.EncodeToString(f.Raw))
	}
	return f.Name
}

func newField(name string, offset int, raw []byte) *Field {
	return &Field{Name: name, Offset: offset, Raw: HexBytes(raw)}
}

func uintField(name string, offset int, raw []byte) *Field {
	f := newField(name, offset, raw)
	f.Value = beUint(raw)
	return f
}

func textField(name string, offset int, raw []byte, text string) *Field {
	f := newField(name, offset, raw)
	f.Text = text
	return f
}

// beUint reads up to 8 bytes as a big endian unsigned integer
func beUint(raw []byte) uint64 {
	var v uint64
	for _, b := range raw {
		v = v<<8 | uint64(b)
	}
	return v
}
