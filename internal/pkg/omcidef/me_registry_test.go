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

package omcidef

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupClassIsTotal(t *testing.T) {
	for id := 0; id <= 0xffff; id++ {
		meClass := LookupClass(uint16(id))
		require.Equal(t, uint16(id), meClass.ClassID)
		require.NotEmpty(t, meClass.Name)
		if !meClass.Known {
			require.Empty(t, meClass.Attributes, "placeholder class %d must not carry attributes", id)
		}
	}
}

func TestLookupClassFallbackNames(t *testing.T) {
	cases := []struct {
		id   uint16
		name string
	}{
		{172, "Reserved for future B-PON entities"},
		{239, "Reserved for future B-PON entities"},
		{240, "Reserved vendor-specific (legacy)"},
		{255, "Reserved vendor-specific (legacy)"},
		{350, "Reserved vendor-specific"},
		{399, "Reserved vendor-specific"},
		{467, "Reserved for future standardization"},
		{65279, "Reserved for future standardization"},
		{65280, "Reserved vendor-specific"},
		{65535, "Reserved vendor-specific"},
		{0, "Unknown (0)"},
		{1, "Unknown (1)"},
		{170, "Unknown (170)"},
		{400, "Unknown (400)"},
		{466, "Unknown (466)"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.id), func(t *testing.T) {
			require.False(t, IsKnownClass(tc.id))
			meClass := LookupClass(tc.id)
			assert.Equal(t, tc.name, meClass.Name)
			assert.False(t, meClass.Known)
			assert.Zero(t, meClass.NumAttributes())
		})
	}
}

func TestFallbackRangesPartitionDomain(t *testing.T) {
	require.NotEmpty(t, classFallbackRanges)
	assert.Equal(t, uint32(0), classFallbackRanges[0].from)
	for i := 1; i < len(classFallbackRanges); i++ {
		assert.Equal(t, classFallbackRanges[i-1].to, classFallbackRanges[i].from)
	}
	assert.Equal(t, uint32(65536), classFallbackRanges[len(classFallbackRanges)-1].to)
}

func TestKnownClasses(t *testing.T) {
	aniG := LookupClass(AniGClassID)
	assert.True(t, aniG.Known)
	assert.Equal(t, "ANI-G", aniG.Name)
	assert.Equal(t, 16, aniG.NumAttributes())
	assert.Equal(t, "Optical signal level", aniG.Attributes[9].Name)
	assert.Equal(t, uint(2), aniG.Attributes[9].Length)

	gemCtp := LookupClass(GemPortNetworkCtpClassID)
	assert.Equal(t, "GEM port network CTP", gemCtp.Name)
	assert.True(t, gemCtp.Attributes[0].SettableOnCreate)
	assert.False(t, gemCtp.Attributes[5].SettableOnCreate)

	esc := LookupClass(EnhancedSecurityControlClassID)
	assert.Equal(t, 12, esc.NumAttributes())
}

func TestClassTableSanity(t *testing.T) {
	ids := ClassIDs()
	require.NotEmpty(t, ids)
	for i, id := range ids {
		if i > 0 {
			assert.Less(t, ids[i-1], id)
		}
		meClass := LookupClass(id)
		assert.Equal(t, id, meClass.ClassID)
		assert.True(t, meClass.Known)
		// a 16 bit mask addresses at most 16 attributes
		assert.LessOrEqual(t, meClass.NumAttributes(), 16, "class %d", id)
		for _, a := range meClass.Attributes {
			assert.NotEmpty(t, a.Name)
			assert.NotZero(t, a.Length, "class %d attribute %s", id, a.Name)
		}
	}
}

func TestLookupMessageType(t *testing.T) {
	assert.Equal(t, "Create", LookupMessageType(4))
	assert.Equal(t, "MIB Upload Next", LookupMessageType(14))
	assert.Equal(t, "Set Table", LookupMessageType(29))
	for _, code := range []uint8{0, 1, 2, 3, 30, 31, 0xff} {
		assert.Equal(t, "Reserved", LookupMessageType(code))
	}
	assert.True(t, Get.IsKnown())
	assert.False(t, MessageType(3).IsKnown())
	assert.Equal(t, "Test Result", TestResult.String())
}

func TestLookupResultCode(t *testing.T) {
	assert.Equal(t, "Command processed successfully", LookupResultCode(0))
	assert.Equal(t, "Instance exists", LookupResultCode(7))
	assert.Equal(t, "Attribute(s) failed or unknown", LookupResultCode(9))
	assert.Equal(t, "Unknown", LookupResultCode(8))
	assert.Equal(t, "Unknown", LookupResultCode(10))
	assert.False(t, ResultCode(8).IsKnown())
}

func TestLookupTestID(t *testing.T) {
	for code := 0; code <= 6; code++ {
		cat, err := LookupTestID(code)
		require.NoError(t, err)
		assert.Equal(t, ReservedForFutureUse, cat)
	}
	cat, err := LookupTestID(7)
	require.NoError(t, err)
	assert.Equal(t, SelfTest, cat)
	for _, code := range []int{8, 100, 255} {
		cat, err = LookupTestID(code)
		require.NoError(t, err)
		assert.Equal(t, VendorSpecific, cat)
	}
	for _, code := range []int{-1, 256, 0xffff} {
		_, err = LookupTestID(code)
		assert.ErrorIs(t, err, ErrTestIDOutOfRange)
	}
}

func TestDeviceIdentName(t *testing.T) {
	assert.Equal(t, "Baseline message set", DeviceIdentName(0x0a))
	assert.Equal(t, "Extended message set", DeviceIdentName(0x0b))
	assert.Equal(t, "Unknown", DeviceIdentName(0))
}

func TestLookupAlarmName(t *testing.T) {
	name, ok := LookupAlarmName(AniGClassID, 0)
	assert.True(t, ok)
	assert.Equal(t, "Low received optical power", name)
	_, ok = LookupAlarmName(AniGClassID, 43)
	assert.False(t, ok)
	_, ok = LookupAlarmName(65000, 0)
	assert.False(t, ok)
}

func TestIsVendorSpecificClass(t *testing.T) {
	for _, id := range []uint16{240, 255, 350, 399, 65280, 65535} {
		assert.True(t, IsVendorSpecificClass(id), "class %d", id)
		assert.Contains(t, LookupClass(id).Name, "vendor-specific")
	}
	for _, id := range []uint16{239, 256, 349, 400, 65279} {
		assert.False(t, IsVendorSpecificClass(id), "class %d", id)
	}
}
