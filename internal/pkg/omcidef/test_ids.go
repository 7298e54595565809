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
	"errors"
	"fmt"
)

// TestCategory classifies the test selector of an OMCI Test request
type TestCategory uint8

const (
	// ReservedForFutureUse covers selectors 0..6
	ReservedForFutureUse TestCategory = iota
	// SelfTest is selector 7
	SelfTest
	// VendorSpecific covers selectors 8..255
	VendorSpecific
)

const (
	selfTestID        = 7
	maxTestID         = 255
	firstVendorTestID = 8
)

// ErrTestIDOutOfRange is returned for selectors outside 0..255
var ErrTestIDOutOfRange = errors.New("test-id-out-of-range")

func (tc TestCategory) String() string {
	switch tc {
	case ReservedForFutureUse:
		return "Reserved for future use"
	case SelfTest:
		return "Self test"
	case VendorSpecific:
		return "Vendor specific"
	}
	return "Unknown"
}

// LookupTestID classifies a test selector. Values outside the 0..255 domain are an error.
func LookupTestID(code int) (TestCategory, error) {
	switch {
	case code < 0 || code > maxTestID:
		return 0, fmt.Errorf("%w: %d", ErrTestIDOutOfRange, code)
	case code == selfTestID:
		return SelfTest, nil
	case code >= firstVendorTestID:
		return VendorSpecific, nil
	}
	return ReservedForFutureUse, nil
}

// device identifier values of the OMCI header
const (
	BaselineDeviceIdent uint8 = 0x0a
	ExtendedDeviceIdent uint8 = 0x0b
)

// DeviceIdentName names the OMCI device identifier byte
func DeviceIdentName(deviceIdent uint8) string {
	switch deviceIdent {
	case BaselineDeviceIdent:
		return "Baseline message set"
	case ExtendedDeviceIdent:
		return "Extended message set"
	}
	return "Unknown"
}
