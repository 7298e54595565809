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

// Package omcidef provides the static G.988 managed entity schema registry and the OMCI lookup tables
package omcidef

import (
	"fmt"
	"sort"
)

// AttributeDefinition describes one managed entity attribute as it is carried in the message content
type AttributeDefinition struct {
	Name             string
	Length           uint
	SettableOnCreate bool
}

// ManagedEntityClass is the schema of one ME class; the attribute order defines the attribute mask bit order
type ManagedEntityClass struct {
	ClassID    uint16
	Name       string
	Attributes []AttributeDefinition
	// Known is false for classes resolved by the range fallback
	Known bool
}

// NumAttributes returns the number of attributes addressable by the attribute mask
func (c ManagedEntityClass) NumAttributes() int {
	return len(c.Attributes)
}

// classRange maps the half-open id interval [from, to) to a fallback name.
// An empty name means "Unknown (<id>)".
type classRange struct {
	from uint32
	to   uint32
	name string
}

// the ranges partition [0, 65536) without gaps
var classFallbackRanges = []classRange{
	{from: 0, to: 172},
	{from: 172, to: 240, name: "Reserved for future B-PON entities"},
	{from: 240, to: 256, name: "Reserved vendor-specific (legacy)"},
	{from: 256, to: 350},
	{from: 350, to: 400, name: "Reserved vendor-specific"},
	{from: 400, to: 467},
	{from: 467, to: 65280, name: "Reserved for future standardization"},
	{from: 65280, to: 65536, name: "Reserved vendor-specific"},
}

// LookupClass returns the schema of the class; ids absent from the table resolve to an
// attribute-less placeholder named after their reserved range
func LookupClass(classID uint16) ManagedEntityClass {
	if meClass, ok := meClassTable[classID]; ok {
		return meClass
	}
	return ManagedEntityClass{
		ClassID: classID,
		Name:    fallbackClassName(classID),
	}
}

func fallbackClassName(classID uint16) string {
	id := uint32(classID)
	for _, r := range classFallbackRanges {
		if id >= r.from && id < r.to {
			if r.name != "" {
				return r.name
			}
			break
		}
	}
	return fmt.Sprintf("Unknown (%d)", classID)
}

// IsVendorSpecificClass reports whether the class id lies in one of the ranges G.988 reserves for vendors
func IsVendorSpecificClass(classID uint16) bool {
	return (classID >= 240 && classID < 256) || (classID >= 350 && classID < 400) || classID >= 65280
}

// IsKnownClass reports whether the class id has an entry in the static table
func IsKnownClass(classID uint16) bool {
	_, ok := meClassTable[classID]
	return ok
}

// ClassIDs returns the ids of all classes in the static table in ascending order
func ClassIDs() []uint16 {
	ids := make([]uint16, 0, len(meClassTable))
	for id := range meClassTable {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
