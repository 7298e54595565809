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
	"context"
	"io"
	"strings"

	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

// HexLineSource reads one frame per line; blank lines and lines starting with '#' are skipped
type HexLineSource struct {
	name    string
	closer  io.Closer
	scanner *bufio.Scanner
	lineNo  int
	index   int
}

// NewHexLineSource reads from r; if r is an io.Closer it is closed by Close
func NewHexLineSource(name string, r io.Reader) *HexLineSource {
	src := &HexLineSource{name: name, scanner: bufio.NewScanner(r)}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}
	return src
}

// Next returns the next frame, io.EOF at the end of input
func (s *HexLineSource) Next(ctx context.Context) (Record, error) {
	for s.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		s.lineNo++
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		data, err := ParseHex(line)
		if err != nil {
			logger.Warnw(ctx, "skipping-invalid-hex-line", log.Fields{"source": s.name, "line": s.lineNo, "error": err})
			continue
		}
		s.index++
		return Record{Index: s.index, Data: data, FrameLen: len(data)}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

// Close closes the underlying reader
func (s *HexLineSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
