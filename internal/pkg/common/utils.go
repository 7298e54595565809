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

package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/looplab/fsm"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

// TwosComplementToSignedInt16 convert 2s complement to signed int16
func TwosComplementToSignedInt16(val uint16) int16 {
	var uint16MsbMask uint16 = 0x8000
	if val&uint16MsbMask == uint16MsbMask {
		return int16(^val+1) * -1
	}

	return int16(val)
}

// AsByteSlice transforms a string of manually set bits to a byte array
func AsByteSlice(bitString string) ([]byte, error) {
	var out []byte
	var str string

	for i := len(bitString); i > 0; i -= 8 {
		if i-8 < 0 {
			str = bitString[0:i]
		} else {
			str = bitString[i-8 : i]
		}
		v, err := strconv.ParseUint(str, 2, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid bit string %q: %w", bitString, err)
		}
		out = append([]byte{byte(v)}, out...)
	}
	return out, nil
}

// MaskBitString renders an attribute mask MSB first in groups of four bits, e.g. "1000 0000 0000 0001"
func MaskBitString(mask uint16) string {
	var sb strings.Builder
	for i := 15; i >= 0; i-- {
		if mask&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////////////

// DissectorFsm couples a looplab FSM with the name of its owner for state change logging
type DissectorFsm struct {
	fsmName  string
	sourceID string
	PFsm     *fsm.FSM
}

// NewDissectorFsm - FSM details including name and the input source it works on
func NewDissectorFsm(aName string, aSourceID string) *DissectorFsm {
	aFsm := &DissectorFsm{
		fsmName:  aName,
		sourceID: aSourceID,
	}
	return aFsm
}

// LogFsmStateChange logs FSM state changes
func (oo *DissectorFsm) LogFsmStateChange(ctx context.Context, e *fsm.Event) {
	logger.Debugw(ctx, "FSM state change", log.Fields{"source": oo.sourceID, "FSM name": oo.fsmName,
		"event name": e.Event, "src state": e.Src, "dst state": e.Dst})
}

// Name returns the FSM name
func (oo *DissectorFsm) Name() string {
	return oo.fsmName
}
