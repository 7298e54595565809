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

// ResultCode is the first content byte of most OMCI responses
type ResultCode uint8

// G.988 table 11.2.2-2
const (
	Success              ResultCode = 0
	ProcessingError      ResultCode = 1
	NotSupported         ResultCode = 2
	ParameterError       ResultCode = 3
	UnknownEntity        ResultCode = 4
	UnknownInstance      ResultCode = 5
	DeviceBusy           ResultCode = 6
	InstanceExists       ResultCode = 7
	AttributeFailure     ResultCode = 9
	unknownResultCodeTag            = "Unknown"
)

var resultCodeNames = map[ResultCode]string{
	Success:          "Command processed successfully",
	ProcessingError:  "Command processing error",
	NotSupported:     "Command not supported",
	ParameterError:   "Parameter error",
	UnknownEntity:    "Unknown managed entity",
	UnknownInstance:  "Unknown managed entity instance",
	DeviceBusy:       "Device busy",
	InstanceExists:   "Instance exists",
	AttributeFailure: "Attribute(s) failed or unknown",
}

// LookupResultCode returns the name of the code; 8 and everything above 9 is "Unknown"
func LookupResultCode(code uint8) string {
	if name, ok := resultCodeNames[ResultCode(code)]; ok {
		return name
	}
	return unknownResultCodeTag
}

// IsKnown reports whether the result code is defined
func (rc ResultCode) IsKnown() bool {
	_, ok := resultCodeNames[rc]
	return ok
}

func (rc ResultCode) String() string {
	return LookupResultCode(uint8(rc))
}
