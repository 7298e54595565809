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

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcienc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertAndQuery(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "frames.db")
	s, err := Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	require.NotEmpty(t, s.RunID())

	raws := [][]byte{
		omcienc.NewBuilder().Header(1, omcidef.Get, true, false, omcidef.AniGClassID, 0x8001).Mask(0, 0x0040).Bytes(),
		omcienc.NewBuilder().Header(2, omcidef.Get, true, false, omcidef.OnuGClassID, 0).Mask(0, 0x8000).Bytes(),
		omcienc.NewBuilder().Header(3, omcidef.Get, false, true, 400, 0).Bytes(),
	}
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, raw := range raws {
		frame, err := omcidec.DecodeFrame(ctx, raw, 0, omcidec.Options{})
		require.NoError(t, err)
		id, err := s.Insert(ctx, i+1, ts, raw, frame)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	aniG, err := s.QueryByClass(ctx, omcidef.AniGClassID)
	require.NoError(t, err)
	require.Len(t, aniG, 1)
	assert.Equal(t, uint16(1), aniG[0].TID)
	assert.True(t, aniG[0].AR)
	assert.False(t, aniG[0].AK)
	assert.Equal(t, uint8(omcidef.Get), aniG[0].MessageType)
	assert.True(t, ts.Equal(aniG[0].CapturedAt))
	assert.Equal(t, "OLT> Get                            - ANI-G", aniG[0].Summary)
	assert.Contains(t, aniG[0].TreeJSON, "Optical signal level")
	assert.Empty(t, aniG[0].Diagnostics)

	unknown, err := s.QueryByClass(ctx, 400)
	require.NoError(t, err)
	require.Len(t, unknown, 1)
	assert.Contains(t, unknown[0].Diagnostics, "UnknownClass")

	run, err := s.QueryRun(ctx, s.RunID())
	require.NoError(t, err)
	assert.Len(t, run, 3)
	assert.Equal(t, 3, run[2].FrameNo)
}

func TestStoreSeparatesRuns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "frames.db")
	raw := omcienc.NewBuilder().Header(1, omcidef.MibReset, true, false, omcidef.OnuDataClassID, 0).Bytes()
	frame, err := omcidec.DecodeFrame(ctx, raw, 0, omcidec.Options{})
	require.NoError(t, err)

	first, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = first.Insert(ctx, 1, time.Time{}, raw, frame)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()
	assert.NotEqual(t, first.RunID(), second.RunID())
	rows, err := second.QueryRun(ctx, second.RunID())
	require.NoError(t, err)
	assert.Empty(t, rows)
	rows, err = second.QueryByClass(ctx, omcidef.OnuDataClassID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
