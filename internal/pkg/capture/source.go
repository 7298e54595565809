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
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Record is one frame as delivered by a source
type Record struct {
	// Index counts records of the source starting at 1
	Index     int
	Timestamp time.Time
	Data      []byte
	// FrameLen is the on-wire OMCI length that decides about the trailer
	FrameLen int
}

// Source delivers records until it returns io.EOF
type Source interface {
	Next(ctx context.Context) (Record, error)
	Close() error
}

// ParseHex decodes a frame written as hex digits. Whitespace, ':' and '-' separators and a
// leading "0x" are accepted.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ':', '-', '\r', '\n':
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return nil, fmt.Errorf("no hex digits in %q", s)
	}
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex frame: %w", err)
	}
	return data, nil
}
