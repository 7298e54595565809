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

package hexdump

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/looplab/fsm"
	"github.com/opencord/omci-dissector-go/internal/pkg/common"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

const bytesPerLine = 16

const (
	// the offset restarts at 0 whenever a text line separates two packets
	hexdumpStIdle   = "hexdumpStIdle"
	hexdumpStPacket = "hexdumpStPacket"

	hexdumpEvHexLine  = "hexdumpEvHexLine"
	hexdumpEvTextLine = "hexdumpEvTextLine"
)

// maximum input line length
const maxLineLength = 1 << 20

// Formatter writes the listing of the chunks it is fed. It is not safe for concurrent use.
type Formatter struct {
	ctx    context.Context
	w      io.Writer
	offset uint32
	pFsm   *common.DissectorFsm
}

// NewFormatter writes to w; name identifies the input in the logs
func NewFormatter(ctx context.Context, name string, w io.Writer) *Formatter {
	f := &Formatter{ctx: ctx, w: w}
	f.pFsm = common.NewDissectorFsm("hexdump", name)
	f.pFsm.PFsm = fsm.NewFSM(
		hexdumpStIdle,
		fsm.Events{
			{Name: hexdumpEvHexLine, Src: []string{hexdumpStIdle, hexdumpStPacket}, Dst: hexdumpStPacket},
			{Name: hexdumpEvTextLine, Src: []string{hexdumpStIdle, hexdumpStPacket}, Dst: hexdumpStIdle},
		},
		fsm.Callbacks{
			"enter_state":            func(e *fsm.Event) { f.pFsm.LogFsmStateChange(ctx, e) },
			"enter_" + hexdumpStIdle: func(e *fsm.Event) { f.offset = 0 },
		},
	)
	return f
}

// Offset is the listing offset the next hex line starts at
func (f *Formatter) Offset() uint32 {
	return f.offset
}

func (f *Formatter) trigger(event string) error {
	err := f.pFsm.PFsm.Event(event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		logger.Errorw(f.ctx, "hexdump-fsm-event-failed", log.Fields{"event": event, "error": err})
		return err
	}
	return nil
}

// WriteLine handles one line of a multi packet input; empty lines are ignored
func (f *Formatter) WriteLine(line string) error {
	if line == "" {
		return nil
	}
	return f.WriteString(line)
}

// WriteString formats one chunk. A chunk not starting like "xx xx" is a text line: it
// produces no output and the next packet starts at offset 0.
func (f *Formatter) WriteString(s string) error {
	if !isHexLine(s) {
		return f.trigger(hexdumpEvTextLine)
	}
	if err := f.trigger(hexdumpEvHexLine); err != nil {
		return err
	}
	return f.format(s)
}

func (f *Formatter) format(s string) error {
	line := f.linePrefix()
	lastSpace := len(line) - 1
	numHex := 0
	for i := 0; i < len(s); i++ {
		c := toLower(s[i])
		if !isHexDigit(c) {
			continue
		}
		line = append(line, c)
		if len(line)-lastSpace > 2 {
			numHex++
			if numHex == bytesPerLine/2 {
				line = append(line, ' ')
			}
			if numHex != bytesPerLine {
				lastSpace = len(line)
				line = append(line, ' ')
			}
		}
		if numHex == bytesPerLine {
			if err := f.emit(line); err != nil {
				return err
			}
			f.offset += bytesPerLine
			numHex = 0
			line = f.linePrefix()
			lastSpace = len(line) - 1
		}
	}
	if numHex > 0 || len(line)-lastSpace > 1 {
		return f.emit(line)
	}
	return nil
}

func (f *Formatter) linePrefix() []byte {
	return []byte(fmt.Sprintf("%06x ", f.offset))
}

func (f *Formatter) emit(line []byte) error {
	_, err := f.w.Write(append(line, '\n'))
	return err
}

// isHexLine looks at the first five characters after leading CRs only
func isHexLine(s string) bool {
	s = strings.TrimLeft(s, "\r")
	if len(s) < 5 {
		return false
	}
	return isHexDigit(s[0]) && isHexDigit(s[1]) && (s[2] == ' ' || s[2] == '\t') &&
		isHexDigit(s[3]) && isHexDigit(s[4])
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ProcessFile treats every line of r as a packet
func ProcessFile(ctx context.Context, name string, r io.Reader, w io.Writer) error {
	f := NewFormatter(ctx, name, w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if err := f.WriteLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ProcessSingle treats the whole of r as one packet
func ProcessSingle(ctx context.Context, name string, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s := string(data)
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return NewFormatter(ctx, name, w).WriteString(s)
}

// ProcessHexString formats a single hex string
func ProcessHexString(ctx context.Context, s string, w io.Writer) error {
	return NewFormatter(ctx, "hex-string", w).WriteString(s)
}
