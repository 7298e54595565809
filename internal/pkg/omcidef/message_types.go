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

// MessageType is the 5 bit message type code of the OMCI message type byte
type MessageType uint8

// OMCI message types, G.988 table 11.2.2-1
const (
	Create                 MessageType = 4
	CreateCompleteConn     MessageType = 5
	Delete                 MessageType = 6
	DeleteCompleteConn     MessageType = 7
	Set                    MessageType = 8
	Get                    MessageType = 9
	GetCompleteConn        MessageType = 10
	GetAllAlarms           MessageType = 11
	GetAllAlarmsNext       MessageType = 12
	MibUpload              MessageType = 13
	MibUploadNext          MessageType = 14
	MibReset               MessageType = 15
	AlarmNotification      MessageType = 16
	AttributeValueChange   MessageType = 17
	Test                   MessageType = 18
	StartSoftwareDownload  MessageType = 19
	DownloadSection        MessageType = 20
	EndSoftwareDownload    MessageType = 21
	ActivateSoftware       MessageType = 22
	CommitSoftware         MessageType = 23
	SynchronizeTime        MessageType = 24
	Reboot                 MessageType = 25
	GetNext                MessageType = 26
	TestResult             MessageType = 27
	GetCurrentData         MessageType = 28
	SetTable               MessageType = 29
	MessageTypeMask        uint8       = 0x1f
	reservedMessageTypeTag             = "Reserved"
)

var messageTypeNames = map[MessageType]string{
	Create:                "Create",
	CreateCompleteConn:    "Create Complete Connection",
	Delete:                "Delete",
	DeleteCompleteConn:    "Delete Complete Connection",
	Set:                   "Set",
	Get:                   "Get",
	GetCompleteConn:       "Get Complete Connection",
	GetAllAlarms:          "Get All Alarms",
	GetAllAlarmsNext:      "Get All Alarms Next",
	MibUpload:             "MIB Upload",
	MibUploadNext:         "MIB Upload Next",
	MibReset:              "MIB Reset",
	AlarmNotification:     "Alarm",
	AttributeValueChange:  "Attribute Value Change",
	Test:                  "Test",
	StartSoftwareDownload: "Start Software Download",
	DownloadSection:       "Download Section",
	EndSoftwareDownload:   "End Software Download",
	ActivateSoftware:      "Activate Software",
	CommitSoftware:        "Commit Software",
	SynchronizeTime:       "Synchronize Time",
	Reboot:                "Reboot",
	GetNext:               "Get Next",
	TestResult:            "Test Result",
	GetCurrentData:        "Get Current Data",
	SetTable:              "Set Table",
}

// LookupMessageType returns the name of the code, or "Reserved" for codes outside 4..29
func LookupMessageType(code uint8) string {
	if name, ok := messageTypeNames[MessageType(code)]; ok {
		return name
	}
	return reservedMessageTypeTag
}

// IsKnown reports whether the code is one of the defined message types
func (mt MessageType) IsKnown() bool {
	_, ok := messageTypeNames[mt]
	return ok
}

func (mt MessageType) String() string {
	return LookupMessageType(uint8(mt))
}
