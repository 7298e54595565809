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

// AlarmBitmapLength is the size of the alarm bitmap in an alarm notification
const AlarmBitmapLength = 28

// alarm numbers per class, G.988 alarm tables
var alarmNames = map[uint16]map[int]string{
	OnuGClassID: {
		0:  "Equipment alarm",
		1:  "Powering alarm",
		2:  "Battery missing",
		3:  "Battery failure",
		4:  "Battery low",
		5:  "Physical intrusion",
		6:  "ONU self-test failure",
		7:  "Dying gasp",
		8:  "Temperature yellow",
		9:  "Temperature red",
		10: "Voltage yellow",
		11: "Voltage red",
		12: "ONU manual power off",
		13: "Inv image",
		14: "PSE overload yellow",
		15: "PSE overload red",
	},
	CircuitPackClassID: {
		0: "Equipment alarm",
		1: "Powering alarm",
		2: "Self-test failure",
		3: "Laser end of life",
		4: "Temperature yellow",
		5: "Temperature red",
	},
	PptpEthernetUniClassID: {
		0: "LAN-LOS",
	},
	AniGClassID: {
		0: "Low received optical power",
		1: "High received optical power",
		2: "Signal fail",
		3: "Signal degrade",
		4: "Low transmit optical power",
		5: "High transmit optical power",
		6: "Laser bias current",
	},
	TContClassID: {
		0: "Deprecated",
	},
}

// LookupAlarmName names alarm number n of the class; ok is false when the number is not defined
func LookupAlarmName(classID uint16, n int) (string, bool) {
	name, ok := alarmNames[classID][n]
	return name, ok
}
