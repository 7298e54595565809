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

package stats

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcienc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(t *testing.T, mt omcidef.MessageType, ar, ak bool, classID uint16) *omcidec.Frame {
	t.Helper()
	raw := omcienc.NewBuilder().Header(1, mt, ar, ak, classID, 0).Bytes()
	f, err := omcidec.DecodeFrame(context.Background(), raw, 0, omcidec.Options{})
	require.NoError(t, err)
	return f
}

func TestTallyFirstSeenOrder(t *testing.T) {
	tally := NewTally()
	tally.Add(frame(t, omcidef.MibUpload, true, false, omcidef.OnuDataClassID))
	tally.Add(frame(t, omcidef.Get, true, false, omcidef.AniGClassID))
	tally.Add(frame(t, omcidef.MibUpload, true, false, omcidef.OnuDataClassID))
	tally.Add(frame(t, omcidef.Get, true, false, 400))
	tally.AddFailure()

	summaries := tally.Summaries()
	require.Len(t, summaries, 3)
	assert.Equal(t, Count{Key: "OLT> MIB Upload                     - ONU data", Count: 2}, summaries[0])
	assert.Equal(t, 1, summaries[1].Count)

	classes := tally.Classes()
	require.Len(t, classes, 3)
	assert.Equal(t, "2 ONU data", classes[0].Key)
	assert.Equal(t, "263 ANI-G", classes[1].Key)
	assert.Equal(t, "400 Unknown (400)", classes[2].Key)

	frames, failures, diags := tally.Totals()
	assert.Equal(t, 4, frames)
	assert.Equal(t, 1, failures)
	assert.Positive(t, diags)

	var buf bytes.Buffer
	n, err := tally.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "frames: 4  failed: 1")
	assert.Contains(t, buf.String(), "       2  2 ONU data\n")
}

func TestTallyConcurrentAdd(t *testing.T) {
	tally := NewTally()
	f := frame(t, omcidef.Get, true, false, omcidef.OnuGClassID)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tally.Add(f)
			}
		}()
	}
	wg.Wait()
	summaries := tally.Summaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, 800, summaries[0].Count)
}
