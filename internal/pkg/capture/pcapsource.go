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

package capture

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

// OmciEtherType is the ethertype OMCI frames are carried with in Ethernet captures
const OmciEtherType layers.EthernetType = 0x88b5

// LinkTypeOmci is the user DLT Wireshark exports raw OMCI frames with
const LinkTypeOmci layers.LinkType = 147

var pcapngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}

// ErrUnsupportedLinkType is returned for captures that are neither Ethernet nor raw OMCI
var ErrUnsupportedLinkType = errors.New("unsupported-link-type")

type packetReader interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
}

// PcapSource reads OMCI frames from a pcap or pcapng file
type PcapSource struct {
	name      string
	closer    io.Closer
	reader    packetReader
	linkType  layers.LinkType
	etherType layers.EthernetType
	packetNo  int
	index     int
}

// OpenPcap opens a capture file, the format is detected from the file magic
func OpenPcap(path string, etherType layers.EthernetType) (*PcapSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	src, err := NewPcapSource(path, f, etherType)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	src.closer = f
	return src, nil
}

// NewPcapSource reads a pcap or pcapng stream from r
func NewPcapSource(name string, r io.Reader, etherType layers.EthernetType) (*PcapSource, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(pcapngMagic))
	if err != nil {
		return nil, fmt.Errorf("reading capture magic of %s: %w", name, err)
	}
	src := &PcapSource{name: name, etherType: etherType}
	if etherType == 0 {
		src.etherType = OmciEtherType
	}
	if bytes.Equal(magic, pcapngMagic) {
		ng, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, fmt.Errorf("opening pcapng %s: %w", name, err)
		}
		src.reader, src.linkType = ng, ng.LinkType()
	} else {
		rd, err := pcapgo.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening pcap %s: %w", name, err)
		}
		src.reader, src.linkType = rd, rd.LinkType()
	}
	if src.linkType != layers.LinkTypeEthernet && src.linkType != LinkTypeOmci {
		return nil, fmt.Errorf("%w: %s has link type %s", ErrUnsupportedLinkType, name, src.linkType)
	}
	return src, nil
}

// Next returns the next OMCI frame; packets of other protocols are skipped
func (s *PcapSource) Next(ctx context.Context) (Record, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		data, ci, err := s.reader.ReadPacketData()
		if err != nil {
			return Record{}, err
		}
		s.packetNo++
		payload, ok := s.omciPayload(ctx, data)
		if !ok {
			continue
		}
		s.index++
		return Record{Index: s.index, Timestamp: ci.Timestamp, Data: payload, FrameLen: len(payload)}, nil
	}
}

func (s *PcapSource) omciPayload(ctx context.Context, data []byte) ([]byte, bool) {
	if s.linkType == LinkTypeOmci {
		return data, true
	}
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.NoCopy)
	ethLayer := packet.Layer(layers.LayerTypeEthernet)
	if ethLayer == nil {
		logger.Debugw(ctx, "not-an-ethernet-frame", log.Fields{"source": s.name, "packet": s.packetNo})
		return nil, false
	}
	eth, _ := ethLayer.(*layers.Ethernet)
	if eth.EthernetType != s.etherType {
		return nil, false
	}
	return eth.Payload, true
}

// LinkType returns the link type of the capture
func (s *PcapSource) LinkType() layers.LinkType {
	return s.linkType
}

// Close closes the capture file
func (s *PcapSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
