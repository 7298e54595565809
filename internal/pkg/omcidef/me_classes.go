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

import "fmt"

// frequently referenced ME classes
const (
	OnuDataClassID                 uint16 = 2
	CircuitPackClassID             uint16 = 6
	SoftwareImageClassID           uint16 = 7
	PptpEthernetUniClassID         uint16 = 11
	MacBridgeServiceProfileClassID uint16 = 45
	ExtendedVlanTaggingClassID     uint16 = 171
	OnuGClassID                    uint16 = 256
	Onu2GClassID                   uint16 = 257
	TContClassID                   uint16 = 262
	AniGClassID                    uint16 = 263
	GemPortNetworkCtpClassID       uint16 = 268
	TrafficDescriptorClassID       uint16 = 280
	EnhancedSecurityControlClassID uint16 = 332
)

// attr declares an attribute that is not part of a create request
func attr(name string, length uint) AttributeDefinition {
	return AttributeDefinition{Name: name, Length: length}
}

// sbc declares a set-by-create attribute
func sbc(name string, length uint) AttributeDefinition {
	return AttributeDefinition{Name: name, Length: length, SettableOnCreate: true}
}

func me(classID uint16, name string, attributes ...AttributeDefinition) ManagedEntityClass {
	return ManagedEntityClass{ClassID: classID, Name: name, Attributes: attributes, Known: true}
}

// numbered repeats an attribute pattern, e.g. "Threshold value %d"
func numbered(format string, first, last int, length uint, setByCreate bool) []AttributeDefinition {
	out := make([]AttributeDefinition, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, AttributeDefinition{Name: fmt.Sprintf(format, i), Length: length, SettableOnCreate: setByCreate})
	}
	return out
}

func join(parts ...[]AttributeDefinition) []AttributeDefinition {
	var out []AttributeDefinition
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// pmHeader is the common prefix of the PM history data MEs
func pmHeader() []AttributeDefinition {
	return []AttributeDefinition{
		attr("Interval end time", 1),
		sbc("Threshold data 1/2 id", 2),
	}
}

func counters(length uint, names ...string) []AttributeDefinition {
	out := make([]AttributeDefinition, 0, len(names))
	for _, n := range names {
		out = append(out, attr(n, length))
	}
	return out
}

func frameSizeCounters(length uint) []AttributeDefinition {
	return counters(length,
		"Packets 64 octets",
		"Packets 65 to 127 octets",
		"Packets 128 to 255 octets",
		"Packets 256 to 511 octets",
		"Packets 512 to 1023 octets",
		"Packets 1024 to 1518 octets")
}

func ethernetFramePM(classID uint16, name string) ManagedEntityClass {
	return me(classID, name, join(pmHeader(),
		counters(4, "Drop events", "Octets", "Packets", "Broadcast packets", "Multicast packets",
			"CRC errored packets", "Undersize packets", "Oversize packets"),
		frameSizeCounters(4))...)
}

func extendedFramePM(classID uint16, name string, width uint) ManagedEntityClass {
	return me(classID, name, join(
		[]AttributeDefinition{attr("Interval end time", 1), sbc("Control block", 16)},
		counters(width, "Drop events", "Octets", "Frames", "Broadcast frames", "Multicast frames",
			"CRC errored frames", "Undersize frames", "Oversize frames"),
		frameSizeCounters(width))...)
}

func buildClassTable(classes ...ManagedEntityClass) map[uint16]ManagedEntityClass {
	table := make(map[uint16]ManagedEntityClass, len(classes))
	for _, c := range classes {
		if _, exists := table[c.ClassID]; exists {
			panic(fmt.Sprintf("duplicate me class definition %d", c.ClassID))
		}
		table[c.ClassID] = c
	}
	return table
}

var meClassTable = buildClassTable(
	me(OnuDataClassID, "ONU data",
		attr("MIB data sync", 1)),
	me(5, "Cardholder",
		attr("Actual plug-in unit type", 1),
		attr("Expected plug-in unit type", 1),
		attr("Expected port count", 1),
		attr("Expected equipment id", 20),
		attr("Actual equipment id", 20),
		attr("Protection profile pointer", 1),
		attr("Invoke protection switch", 1),
		attr("ARC", 1),
		attr("ARC interval", 1)),
	me(CircuitPackClassID, "Circuit pack",
		sbc("Type", 1),
		attr("Number of ports", 1),
		attr("Serial number", 8),
		attr("Version", 14),
		attr("Vendor id", 4),
		sbc("Administrative state", 1),
		attr("Operational state", 1),
		attr("Bridged or IP ind", 1),
		attr("Equipment id", 20),
		sbc("Card configuration", 1),
		attr("Total T-CONT buffer number", 1),
		attr("Total priority queue number", 1),
		attr("Total traffic scheduler number", 1),
		attr("Power shed override", 4)),
	me(SoftwareImageClassID, "Software image",
		attr("Version", 14),
		attr("Is committed", 1),
		attr("Is active", 1),
		attr("Is valid", 1),
		attr("Product code", 25),
		attr("Image hash", 16)),
	me(PptpEthernetUniClassID, "Physical path termination point Ethernet UNI",
		attr("Expected type", 1),
		attr("Sensed type", 1),
		attr("Auto detection configuration", 1),
		attr("Ethernet loopback configuration", 1),
		attr("Administrative state", 1),
		attr("Operational state", 1),
		attr("Configuration ind", 1),
		attr("Max frame size", 2),
		attr("DTE or DCE ind", 1),
		attr("Pause time", 2),
		attr("Bridged or IP ind", 1),
		attr("ARC", 1),
		attr("ARC interval", 1),
		attr("PPPoE filter", 1),
		attr("Power control", 1)),
	me(24, "Ethernet performance monitoring history data", join(pmHeader(),
		counters(4, "FCS errors", "Excessive collision counter", "Late collision counter", "Frames too long",
			"Buffer overflows on receive", "Buffer overflows on transmit", "Single collision frame counter",
			"Multiple collisions frame counter", "SQE counter", "Deferred transmission counter",
			"Internal MAC transmit error counter", "Carrier sense error counter", "Alignment error counter",
			"Internal MAC receive error counter"))...),
	me(MacBridgeServiceProfileClassID, "MAC bridge service profile",
		sbc("Spanning tree ind", 1),
		sbc("Learning ind", 1),
		sbc("Port bridging ind", 1),
		sbc("Priority", 2),
		sbc("Max age", 2),
		sbc("Hello time", 2),
		sbc("Forward delay", 2),
		sbc("Unknown MAC address discard", 1),
		sbc("MAC learning depth", 1),
		sbc("Dynamic filtering ageing time", 4)),
	me(46, "MAC bridge configuration data",
		attr("Bridge MAC address", 6),
		attr("Bridge priority", 2),
		attr("Designated root", 8),
		attr("Root path cost", 4),
		attr("Bridge port count", 1),
		attr("Root port num", 2),
		attr("Hello time", 2),
		attr("Forward delay", 2)),
	me(47, "MAC bridge port configuration data",
		sbc("Bridge id pointer", 2),
		sbc("Port num", 1),
		sbc("TP type", 1),
		sbc("TP pointer", 2),
		sbc("Port priority", 2),
		sbc("Port path cost", 2),
		sbc("Port spanning tree ind", 1),
		sbc("Deprecated 1", 1),
		sbc("Deprecated 2", 1),
		attr("Port MAC address", 6),
		attr("Outbound TD pointer", 2),
		attr("Inbound TD pointer", 2),
		sbc("MAC learning depth", 1)),
	me(48, "MAC bridge port designation data",
		attr("Designated bridge root cost port", 24),
		attr("Port state", 1)),
	me(49, "MAC bridge port filter table data",
		attr("MAC filter table", 8)),
	me(50, "MAC bridge port bridge table data",
		attr("Bridge table", 8)),
	me(51, "MAC bridge performance monitoring history data", join(pmHeader(),
		counters(4, "Bridge learning entry discard count"))...),
	me(52, "MAC bridge port performance monitoring history data", join(pmHeader(),
		counters(4, "Forwarded frame counter", "Delay exceeded discard counter", "MTU exceeded discard counter",
			"Received frame counter", "Received and discarded counter"))...),
	me(53, "Physical path termination point POTS UNI",
		attr("Administrative state", 1),
		attr("Deprecated", 2),
		attr("ARC", 1),
		attr("ARC interval", 1),
		attr("Impedance", 1),
		attr("Transmission path", 1),
		attr("Rx gain", 1),
		attr("Tx gain", 1),
		attr("Operational state", 1),
		attr("Hook state", 1),
		attr("POTS holdover time", 2),
		attr("Nominal feed voltage", 1),
		attr("Loss of softswitch", 1)),
	me(58, "Voice service profile",
		sbc("Announcement type", 1),
		sbc("Jitter target", 2),
		sbc("Jitter buffer max", 2),
		sbc("Echo cancel ind", 1),
		sbc("PSTN protocol variant", 2),
		sbc("DTMF digit levels", 2),
		sbc("DTMF digit duration", 2),
		sbc("Hook flash minimum time", 2),
		sbc("Hook flash maximum time", 2),
		attr("Tone pattern table", 20),
		attr("Tone event table", 7),
		attr("Ringing pattern table", 5),
		attr("Ringing event table", 7),
		sbc("Network specific extensions pointer", 2)),
	me(78, "VLAN tagging operation configuration data",
		sbc("Upstream VLAN tagging operation mode", 1),
		sbc("Upstream VLAN tag TCI value", 2),
		sbc("Downstream VLAN tagging operation mode", 1),
		sbc("Association type", 1),
		sbc("Associated ME pointer", 2)),
	me(79, "MAC bridge port filter preassign table",
		attr("IPv4 multicast filtering", 1),
		attr("IPv6 multicast filtering", 1),
		attr("IPv4 broadcast filtering", 1),
		attr("RARP filtering", 1),
		attr("IPX filtering", 1),
		attr("NetBEUI filtering", 1),
		attr("AppleTalk filtering", 1),
		attr("Bridge management information filtering", 1),
		attr("ARP filtering", 1),
		attr("PPPoE broadcast filtering", 1)),
	me(84, "VLAN tagging filter data",
		sbc("VLAN filter list", 24),
		sbc("Forward operation", 1),
		sbc("Number of entries", 1)),
	me(89, "Ethernet performance monitoring history data 2", join(pmHeader(),
		counters(4, "PPPoE filtered frame counter"))...),
	me(130, "802.1p mapper service profile", join(
		[]AttributeDefinition{sbc("TP pointer", 2)},
		numbered("Interwork TP pointer for P-bit priority %d", 0, 7, 2, true),
		[]AttributeDefinition{
			sbc("Unmarked frame option", 1),
			sbc("DSCP to P-bit mapping", 24),
			sbc("Default P-bit assumption", 1),
			sbc("TP type", 1),
		})...),
	me(131, "OLT-G",
		attr("OLT vendor id", 4),
		attr("Equipment id", 20),
		attr("Version", 14),
		attr("Time of day information", 14)),
	me(133, "ONU power shedding",
		attr("Restore power timer reset interval", 2),
		attr("Data class shedding interval", 2),
		attr("Voice class shedding interval", 2),
		attr("Video overlay class shedding interval", 2),
		attr("Video return class shedding interval", 2),
		attr("DSL class shedding interval", 2),
		attr("ATM class shedding interval", 2),
		attr("CES class shedding interval", 2),
		attr("Frame class shedding interval", 2),
		attr("SDH-SONET class shedding interval", 2),
		attr("Shedding status", 2)),
	me(134, "IP host config data",
		attr("IP options", 1),
		attr("MAC address", 6),
		attr("ONU identifier", 25),
		attr("IP address", 4),
		attr("Mask", 4),
		attr("Gateway", 4),
		attr("Primary DNS", 4),
		attr("Secondary DNS", 4),
		attr("Current address", 4),
		attr("Current mask", 4),
		attr("Current gateway", 4),
		attr("Current primary DNS", 4),
		attr("Current secondary DNS", 4),
		attr("Domain name", 25),
		attr("Host name", 25),
		attr("Relay agent options", 2)),
	me(136, "TCP/UDP config data",
		sbc("Port ID", 2),
		sbc("Protocol", 1),
		sbc("TOS/diffserv field", 1),
		sbc("IP host pointer", 2)),
	me(137, "Network address",
		sbc("Security pointer", 2),
		sbc("Address pointer", 2)),
	me(138, "VoIP config data",
		attr("Available signalling protocols", 1),
		attr("Signalling protocol used", 1),
		attr("Available VoIP configuration methods", 4),
		attr("VoIP configuration method used", 1),
		attr("VoIP configuration address pointer", 2),
		attr("VoIP configuration state", 1),
		attr("Retrieve profile", 1),
		attr("Profile version", 25)),
	me(139, "VoIP voice CTP",
		sbc("User protocol pointer", 2),
		sbc("PPTP pointer", 2),
		sbc("VoIP media profile pointer", 2),
		sbc("Signalling code", 1)),
	me(141, "VoIP line status",
		attr("Voip codec used", 2),
		attr("Voip voice server status", 1),
		attr("Voip port session type", 1),
		attr("Voip call 1 packet period", 2),
		attr("Voip call 2 packet period", 2),
		attr("Voip call 1 dest addr", 25),
		attr("Voip call 2 dest addr", 25),
		attr("Voip line state", 1),
		attr("Emergency call status", 1)),
	me(142, "VoIP media profile",
		sbc("Fax mode", 1),
		sbc("Voice service profile pointer", 2),
		sbc("Codec selection (1st order)", 1),
		sbc("Packet period selection (1st order)", 1),
		sbc("Silence suppression (1st order)", 1),
		sbc("Codec selection (2nd order)", 1),
		sbc("Packet period selection (2nd order)", 1),
		sbc("Silence suppression (2nd order)", 1),
		sbc("Codec selection (3rd order)", 1),
		sbc("Packet period selection (3rd order)", 1),
		sbc("Silence suppression (3rd order)", 1),
		sbc("Codec selection (4th order)", 1),
		sbc("Packet period selection (4th order)", 1),
		sbc("Silence suppression (4th order)", 1),
		sbc("OOB DTMF", 1),
		sbc("RTP profile pointer", 2)),
	me(143, "RTP profile data",
		sbc("Local port min", 2),
		sbc("Local port max", 2),
		sbc("DSCP mark", 1),
		sbc("Piggyback events", 1),
		sbc("Tone events", 1),
		sbc("DTMF events", 1),
		sbc("CAS events", 1),
		sbc("IP host config pointer", 2)),
	me(145, "Network dial plan table",
		attr("Dial plan number", 2),
		sbc("Dial plan table max size", 2),
		sbc("Critical dial timeout", 2),
		sbc("Partial dial timeout", 2),
		sbc("Dial plan format", 1),
		attr("Dial plan table", 30)),
	me(146, "VoIP application service profile",
		sbc("CID features", 1),
		sbc("Call waiting features", 1),
		sbc("Call progress or transfer features", 2),
		sbc("Call presentation features", 2),
		sbc("Direct connect feature", 1),
		sbc("Direct connect URI pointer", 2),
		sbc("Bridged line agent URI pointer", 2),
		sbc("Conference factory URI pointer", 2),
		attr("Dial tone feature delay/Warmline timer", 2)),
	me(148, "Authentication security method",
		attr("Validation scheme", 1),
		attr("Username 1", 25),
		attr("Password", 25),
		attr("Realm", 25),
		attr("Username 2", 25)),
	me(150, "SIP agent config data",
		sbc("Proxy server address pointer", 2),
		sbc("Outbound proxy address pointer", 2),
		sbc("Primary SIP DNS", 4),
		sbc("Secondary SIP DNS", 4),
		attr("TCP/UDP pointer", 2),
		attr("SIP reg exp time", 4),
		attr("SIP rereg head start time", 4),
		sbc("Host part URI", 2),
		attr("SIP status", 1),
		sbc("SIP registrar", 2),
		sbc("Softswitch", 4),
		attr("SIP response table", 5),
		sbc("SIP option transmit control", 1),
		sbc("SIP URI format", 1),
		sbc("Redundant SIP agent pointer", 2)),
	me(153, "SIP user data",
		sbc("SIP agent pointer", 2),
		sbc("User part AOR", 2),
		attr("SIP display name", 25),
		sbc("Username/password", 2),
		sbc("Voicemail server SIP URI", 2),
		sbc("Voicemail subscription expiration time", 4),
		sbc("Network dial plan pointer", 2),
		sbc("Application services profile pointer", 2),
		sbc("Feature code pointer", 2),
		sbc("PPTP pointer", 2),
		attr("Release timer", 1),
		attr("ROH timer", 1)),
	me(157, "Large string", join(
		[]AttributeDefinition{attr("Number of parts", 1)},
		numbered("Part %d", 1, 15, 25, false))...),
	me(158, "ONU remote debug",
		attr("Command format", 1),
		attr("Command", 25),
		attr("Reply table", 32)),
	me(159, "Equipment protection profile", join(
		[]AttributeDefinition{sbc("Protect slot 1", 1), sbc("Protect slot 2", 1)},
		numbered("Working slot %d", 1, 8, 1, true),
		[]AttributeDefinition{
			attr("Protect status 1", 1),
			attr("Protect status 2", 1),
			sbc("Revertive ind", 1),
			sbc("Wait to restore", 1),
		})...),
	me(160, "Equipment extension package",
		attr("Environmental sense", 2),
		attr("Contact closure output", 2)),
	me(ExtendedVlanTaggingClassID, "Extended VLAN tagging operation configuration data",
		sbc("Association type", 1),
		attr("Received frame VLAN tagging operation table max size", 2),
		attr("Input TPID", 2),
		attr("Output TPID", 2),
		attr("Downstream mode", 1),
		attr("Received frame VLAN tagging operation table", 16),
		sbc("Associated ME pointer", 2),
		attr("DSCP to P-bit mapping", 24)),
	me(OnuGClassID, "ONU-G",
		attr("Vendor id", 4),
		attr("Version", 14),
		attr("Serial number", 8),
		attr("Traffic management option", 1),
		attr("Deprecated", 1),
		attr("Battery backup", 1),
		attr("Administrative state", 1),
		attr("Operational state", 1),
		attr("ONU survival time", 1),
		attr("Logical ONU ID", 24),
		attr("Logical password", 12),
		attr("Credentials status", 1),
		attr("Extended TC-layer options", 2)),
	me(Onu2GClassID, "ONU2-G",
		attr("Equipment id", 20),
		attr("OMCC version", 1),
		attr("Vendor product code", 2),
		attr("Security capability", 1),
		attr("Security mode", 1),
		attr("Total priority queue number", 2),
		attr("Total traffic scheduler number", 1),
		attr("Deprecated", 1),
		attr("Total GEM port-ID number", 2),
		attr("SysUpTime", 4),
		attr("Connectivity capability", 2),
		attr("Current connectivity mode", 1),
		attr("QoS configuration flexibility", 2),
		attr("Priority queue scale factor", 2)),
	me(TContClassID, "T-CONT",
		attr("Alloc-ID", 2),
		attr("Deprecated", 1),
		attr("Policy", 1)),
	me(AniGClassID, "ANI-G",
		attr("SR indication", 1),
		attr("Total T-CONT number", 2),
		attr("GEM block length", 2),
		attr("Piggyback DBA reporting", 1),
		attr("Deprecated", 1),
		attr("SF threshold", 1),
		attr("SD threshold", 1),
		attr("ARC", 1),
		attr("ARC interval", 1),
		attr("Optical signal level", 2),
		attr("Lower optical threshold", 1),
		attr("Upper optical threshold", 1),
		attr("ONU response time", 2),
		attr("Transmit optical level", 2),
		attr("Lower transmit power threshold", 1),
		attr("Upper transmit power threshold", 1)),
	me(264, "UNI-G",
		attr("Deprecated", 2),
		attr("Administrative state", 1),
		attr("Management capability", 1),
		attr("Non-OMCI management identifier", 2),
		attr("Relay agent options", 2)),
	me(266, "GEM interworking termination point",
		sbc("GEM port network CTP connectivity pointer", 2),
		sbc("Interworking option", 1),
		sbc("Service profile pointer", 2),
		sbc("Interworking termination point pointer", 2),
		attr("PPTP counter", 1),
		attr("Operational state", 1),
		sbc("GAL profile pointer", 2),
		sbc("GAL loopback configuration", 1)),
	me(267, "GEM port performance monitoring history data", join(pmHeader(),
		[]AttributeDefinition{
			attr("Lost packets", 4),
			attr("Misinserted packets", 4),
			attr("Received packets", 5),
			attr("Received blocks", 5),
			attr("Transmitted blocks", 5),
			attr("Impaired blocks", 4),
			attr("Transmitted packets", 5),
		})...),
	me(GemPortNetworkCtpClassID, "GEM port network CTP",
		sbc("Port-ID", 2),
		sbc("T-CONT pointer", 2),
		sbc("Direction", 1),
		sbc("Traffic management pointer for upstream", 2),
		sbc("Traffic descriptor profile pointer for upstream", 2),
		attr("UNI counter", 1),
		sbc("Priority queue pointer for downstream", 2),
		attr("Encryption state", 1),
		sbc("Traffic descriptor profile pointer for downstream", 2),
		sbc("Encryption key ring", 1)),
	me(271, "GAL TDM profile",
		sbc("GEM frame loss integration period", 2)),
	me(272, "GAL Ethernet profile",
		sbc("Maximum GEM payload size", 2)),
	me(273, "Threshold data 1", numbered("Threshold value %d", 1, 7, 4, true)...),
	me(274, "Threshold data 2", numbered("Threshold value %d", 8, 14, 4, true)...),
	me(275, "GAL TDM performance monitoring history data", join(pmHeader(),
		counters(4, "GEM frame loss", "Buffer underflows", "Buffer overflows"))...),
	me(276, "GAL Ethernet performance monitoring history data", join(pmHeader(),
		counters(4, "Discarded frames"))...),
	me(277, "Priority queue",
		attr("Queue configuration option", 1),
		attr("Maximum queue size", 2),
		attr("Allocated queue size", 2),
		attr("Discard-block counter reset interval", 2),
		attr("Threshold value for discarded blocks due to buffer overflow", 2),
		attr("Related port", 4),
		attr("Traffic scheduler pointer", 2),
		attr("Weight", 1),
		attr("Back pressure operation", 2),
		attr("Back pressure time", 4),
		attr("Back pressure occur queue threshold", 2),
		attr("Back pressure clear queue threshold", 2),
		attr("Packet drop queue thresholds", 8),
		attr("Packet drop max_p", 2),
		attr("Queue drop w_q", 1),
		attr("Drop precedence colour marking", 1)),
	me(278, "Traffic scheduler",
		attr("T-CONT pointer", 2),
		attr("Traffic scheduler pointer", 2),
		attr("Policy", 1),
		attr("Priority/weight", 1)),
	me(279, "Protection data",
		attr("Working ANI-G pointer", 2),
		attr("Protection ANI-G pointer", 2),
		attr("Protection type", 1),
		attr("Revertive ind", 1),
		attr("Wait to restore time", 1),
		attr("Switching guard time", 2)),
	me(TrafficDescriptorClassID, "Traffic descriptor",
		sbc("CIR", 4),
		sbc("PIR", 4),
		sbc("CBS", 4),
		sbc("PBS", 4),
		sbc("Colour mode", 1),
		sbc("Ingress colour marking", 1),
		sbc("Egress colour marking", 1),
		sbc("Meter type", 1)),
	me(281, "Multicast GEM interworking termination point",
		sbc("GEM port network CTP connectivity pointer", 2),
		sbc("Interworking option", 1),
		sbc("Service profile pointer", 2),
		sbc("Not used 1", 2),
		attr("PPTP counter", 1),
		attr("Operational state", 1),
		sbc("GAL profile pointer", 2),
		sbc("Not used 2", 1),
		attr("IPv4 multicast address table", 12),
		attr("IPv6 multicast address table", 24)),
	me(287, "OMCI",
		attr("ME type table", 2),
		attr("Message type table", 1)),
	me(288, "Managed entity",
		attr("Name", 25),
		attr("Attributes table", 2),
		attr("Access", 1),
		attr("Alarms table", 1),
		attr("AVCs table", 2),
		attr("Actions", 4),
		attr("Instances table", 2),
		attr("Support", 1)),
	me(289, "Attribute",
		attr("Name", 25),
		attr("Size", 2),
		attr("Access", 1),
		attr("Format", 1),
		attr("Lower limit", 4),
		attr("Upper limit", 4),
		attr("Bit field", 4),
		attr("Code points table", 2),
		attr("Support", 1)),
	me(290, "Dot1X port extension package",
		attr("Dot1x enable", 1),
		attr("Action register", 1),
		attr("Authenticator PAE state", 1),
		attr("Backend authentication state", 1),
		attr("Admin controlled directions", 1),
		attr("Operational controlled directions", 1),
		attr("Authenticator controlled port status", 1),
		attr("Quiet period", 2),
		attr("Server timeout period", 2),
		attr("Re-authentication period", 2),
		attr("Re-authentication enabled", 1),
		attr("Key transmission enabled", 1)),
	me(291, "Dot1X configuration profile",
		attr("Circuit ID prefix", 2),
		attr("Fallback policy", 1),
		attr("Auth server 1", 2),
		attr("Shared secret auth1", 25),
		attr("Auth server 2", 2),
		attr("Shared secret auth2", 25),
		attr("Auth server 3", 2),
		attr("Shared secret auth3", 25),
		attr("OLT proxy address", 4),
		attr("Calling station id format", 1)),
	me(296, "Ethernet performance monitoring history data 3", join(pmHeader(),
		counters(4, "Drop events", "Octets", "Packets", "Broadcast packets", "Multicast packets",
			"Undersize packets", "Fragments", "Jabbers"),
		frameSizeCounters(4))...),
	me(297, "Port mapping package", join(
		[]AttributeDefinition{attr("Max ports", 1)},
		numbered("Port list %d", 1, 8, 16, false))...),
	me(298, "Dot1 rate limiter",
		sbc("Parent ME pointer", 2),
		sbc("TP type", 1),
		sbc("Upstream unicast flooding rate pointer", 2),
		sbc("Upstream broadcast rate pointer", 2),
		sbc("Upstream multicast payload rate pointer", 2)),
	me(299, "Dot1ag maintenance domain",
		sbc("MD level", 1),
		sbc("MD name format", 1),
		sbc("MD name 1", 25),
		sbc("MD name 2", 23),
		sbc("MHF creation", 1),
		sbc("Sender ID permission", 1)),
	me(300, "Dot1ag maintenance association",
		sbc("MD pointer", 2),
		sbc("Short MA name format", 1),
		sbc("Short MA name 1", 25),
		sbc("Short MA name 2", 23),
		sbc("Continuity check message interval", 1),
		sbc("Associated VLANs", 24),
		sbc("MHF creation", 1),
		sbc("Sender ID permission", 1)),
	me(301, "Dot1ag default MD level",
		attr("Layer 2 type", 1),
		attr("Catchall level", 1),
		attr("Catchall MHF creation", 1),
		attr("Catchall sender ID permission", 1),
		attr("Default MD level table", 29)),
	me(302, "Dot1ag MEP",
		sbc("Layer 2 entity pointer", 2),
		sbc("Layer 2 type", 1),
		sbc("MA pointer", 2),
		sbc("MEP ID", 2),
		sbc("MEP control", 1),
		sbc("Primary VLAN", 2),
		sbc("Administrative state", 1),
		sbc("CCM and LTM priority", 1),
		sbc("Egress identifier", 8),
		sbc("Peer MEP IDs", 24),
		sbc("ETH AIS control", 1),
		sbc("Fault alarm threshold", 1),
		attr("Alarm declaration soak time", 2),
		attr("Alarm clear soak time", 2)),
	me(307, "Octet string", join(
		[]AttributeDefinition{attr("Length", 2)},
		numbered("Part %d", 1, 15, 25, false))...),
	me(308, "General purpose buffer",
		sbc("Maximum size", 4),
		attr("Buffer table", 25)),
	me(309, "Multicast operations profile",
		sbc("IGMP version", 1),
		sbc("IGMP function", 1),
		sbc("Immediate leave", 1),
		sbc("Upstream IGMP TCI", 2),
		sbc("Upstream IGMP tag control", 1),
		sbc("Upstream IGMP rate", 4),
		attr("Dynamic access control list table", 24),
		attr("Static access control list table", 24),
		attr("Lost groups list table", 10),
		sbc("Robustness", 1),
		sbc("Querier IP address", 4),
		sbc("Query interval", 4),
		sbc("Query max response time", 4),
		attr("Last member query interval", 4),
		sbc("Unauthorized join request behaviour", 1),
		sbc("Downstream IGMP and multicast TCI", 3)),
	me(310, "Multicast subscriber config info",
		sbc("ME type", 1),
		sbc("Multicast operations profile pointer", 2),
		sbc("Max simultaneous groups", 2),
		sbc("Max multicast bandwidth", 4),
		sbc("Bandwidth enforcement", 1),
		attr("Multicast service package table", 20),
		attr("Allowed preview groups table", 22)),
	me(311, "Multicast subscriber monitor",
		sbc("ME type", 1),
		attr("Current multicast bandwidth", 4),
		attr("Join messages counter", 4),
		attr("Bandwidth exceeded counter", 4),
		attr("IPv4 active group list table", 24),
		attr("IPv6 active group list table", 58)),
	me(312, "FEC performance monitoring history data", join(pmHeader(),
		[]AttributeDefinition{
			attr("Corrected bytes", 4),
			attr("Corrected code words", 4),
			attr("Uncorrectable code words", 4),
			attr("Total code words", 4),
			attr("FEC seconds", 2),
		})...),
	ethernetFramePM(321, "Ethernet frame performance monitoring history data downstream"),
	ethernetFramePM(322, "Ethernet frame performance monitoring history data upstream"),
	me(329, "Virtual Ethernet interface point",
		attr("Administrative state", 1),
		attr("Operational state", 1),
		attr("Interdomain name", 25),
		attr("TCP/UDP pointer", 2),
		attr("IANA assigned port", 2)),
	me(330, "Generic status portal",
		attr("Status document table", 25),
		attr("Configuration document table", 25),
		attr("AVC report rate", 1)),
	me(EnhancedSecurityControlClassID, "Enhanced security control",
		attr("OLT crypto capabilities", 16),
		attr("OLT random challenge table", 17),
		attr("OLT challenge status", 1),
		attr("ONU selected crypto capabilities", 1),
		attr("ONU random challenge table", 16),
		attr("ONU authentication result table", 16),
		attr("OLT authentication result table", 17),
		attr("OLT result status", 1),
		attr("ONU authentication status", 1),
		attr("Master session key name", 16),
		attr("Broadcast key table", 18),
		attr("Effective key length", 2)),
	extendedFramePM(334, "Ethernet frame extended PM", 4),
	me(336, "ONU dynamic power management control",
		attr("Power reduction management capability", 1),
		attr("Power reduction management mode", 1),
		attr("Itransinit", 2),
		attr("Itxinit", 2),
		attr("Maximum sleep interval", 4),
		attr("Maximum receiver-off interval", 4),
		attr("Minimum aware interval", 4),
		attr("Minimum active held interval", 2),
		attr("Maximum sleep interval extension", 8),
		attr("Ethernet passive optical network capability extension", 1),
		attr("Ethernet passive optical network setup extension", 1),
		attr("Missing consecutive bursts threshold", 4)),
	me(340, "BBF TR-069 management server",
		sbc("Administrative state", 1),
		sbc("ACS network address", 2),
		sbc("Associated tag", 2)),
	me(341, "GEM port network CTP performance monitoring history data", join(pmHeader(),
		[]AttributeDefinition{
			attr("Transmitted GEM frames", 4),
			attr("Received GEM frames", 4),
			attr("Received payload bytes", 8),
			attr("Transmitted payload bytes", 8),
			attr("Encryption key errors", 4),
		})...),
	me(344, "XG-PON TC performance monitoring history data", join(pmHeader(),
		counters(4, "PSBd HEC error count", "XGTC HEC error count", "Unknown profile count",
			"Transmitted XGEM frames", "Fragment XGEM frames", "XGEM HEC lost words count",
			"XGEM key errors", "XGEM HEC error count"))...),
	me(345, "XG-PON downstream management performance monitoring history data", join(pmHeader(),
		counters(4, "PLOAM MIC error count", "Downstream PLOAMs message count", "Profile messages received",
			"Ranging_Time messages received", "Deactivate_ONU-ID messages received",
			"Disable_Serial_Number messages received", "Request_Registration messages received",
			"Assign_Alloc-ID messages received", "Key_Control messages received",
			"Sleep_Allow messages received", "Baseline OMCI messages received count",
			"Extended OMCI messages received count", "Assign_ONU-ID messages received",
			"OMCI MIC error count"))...),
	me(346, "XG-PON upstream management performance monitoring history data", join(pmHeader(),
		counters(4, "Upstream PLOAM message count", "Serial_Number_ONU message count",
			"Registration message count", "Key_Report message count", "Acknowledge message count",
			"Sleep_Request message count"))...),
	me(349, "PoE control",
		attr("POE capabilities", 2),
		attr("Power pair pinout control", 1),
		attr("Operational state", 1),
		attr("Power detection status", 1),
		attr("Power classification status", 1),
		attr("Power priority", 1),
		attr("Invalid signature counter", 2),
		attr("Power denied counter", 2),
		attr("Overload counter", 2),
		attr("Short counter", 2),
		attr("MPS absent counter", 2),
		attr("PSE class control", 1)),
	extendedFramePM(425, "Ethernet frame extended PM 64-bit", 8),
	me(426, "Threshold data 64-bit", numbered("Threshold value %d", 1, 7, 8, true)...),
)
