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

package xcheck

import (
	"context"
	"testing"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcienc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFrame(t *testing.T, raw []byte) *omcidec.Frame {
	t.Helper()
	frame, err := omcidec.DecodeFrame(context.Background(), raw, 0, omcidec.Options{})
	require.NoError(t, err)
	return frame
}

func TestNormalize(t *testing.T) {
	raw := omcienc.NewBuilder().Header(5, omcidef.Get, true, false, omcidef.OnuGClassID, 0).Bytes()
	msg := normalize(raw)
	require.Len(t, msg, 48)
	assert.Equal(t, raw, msg[:40])
	assert.Equal(t, []byte{0x00, 0x28}, msg[42:44])

	long := make([]byte, 60)
	assert.Len(t, normalize(long), 48)
}

func TestCompareAgrees(t *testing.T) {
	frames := [][]byte{
		omcienc.NewBuilder().Header(0x0102, omcidef.MibUploadNext, false, true, omcidef.OnuDataClassID, 0).
			Uint16(0, omcidef.TContClassID).Uint16(2, 0x8001).
			MaskedAttributes(4, 6, omcidef.TContClassID, 0xe000).Trailer().Bytes(),
		omcienc.NewBuilder().Header(0, omcidef.AlarmNotification, false, false, omcidef.AniGClassID, 0x8001).
			Content(0, 0x80).Content(31, 3).Bytes(),
		omcienc.NewBuilder().Header(0x0103, omcidef.Get, true, false, omcidef.OnuGClassID, 0).
			Mask(0, 0x8000).Bytes(),
	}
	for _, raw := range frames {
		report := Compare(context.Background(), decodeFrame(t, raw), raw)
		assert.Empty(t, report.Mismatches, report.String())
	}
}

func TestCompareDetectsMismatch(t *testing.T) {
	ours := omcienc.NewBuilder().Header(1, omcidef.Get, true, false, omcidef.OnuGClassID, 0).Bytes()
	other := omcienc.NewBuilder().Header(2, omcidef.Set, true, false, omcidef.OnuGClassID, 0).Bytes()
	report := Compare(context.Background(), decodeFrame(t, ours), other)
	require.False(t, report.OK())
	var fields []string
	for _, m := range report.Mismatches {
		fields = append(fields, m.Field)
	}
	assert.Contains(t, fields, "transaction id")
	assert.Contains(t, fields, "message type")
	assert.Contains(t, report.String(), "transaction id: ours 1, reference 2")
}

func TestCompareSkipsExtendedMessageSet(t *testing.T) {
	raw := omcienc.NewBuilder().Header(1, omcidef.Get, true, false, omcidef.OnuGClassID, 0).DeviceIdent(0x0b).Bytes()
	report := Compare(context.Background(), decodeFrame(t, raw), raw)
	assert.False(t, report.OK())
	assert.Empty(t, report.Mismatches)
	assert.NotEmpty(t, report.Failure)
}
